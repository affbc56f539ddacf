package usecase

import (
	"context"
	"time"
)

// Content is one editable block of page copy, e.g. the hero tagline or
// an about-section paragraph.
type Content struct {
	ID         uint
	Section    string
	Title      string
	Subtitle   string
	Body       string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListContents returns all content blocks grouped by section, each
// section ordered by order_index.
func (u Usecase) ListContents(ctx context.Context) (map[string][]Content, error) {
	list, err := u.repo.ListContents(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Content)
	for _, c := range list {
		grouped[c.Section] = append(grouped[c.Section], c)
	}
	return grouped, nil
}

func (u Usecase) ListContentsBySection(ctx context.Context, section string) ([]Content, error) {
	return u.repo.ListContentsBySection(ctx, section)
}

func (u Usecase) UpdateContent(ctx context.Context, content Content) (Content, error) {
	existing, err := u.repo.GetContentByID(ctx, content.ID)
	if err != nil {
		return Content{}, err
	}
	content.Section = existing.Section
	return u.repo.UpdateContent(ctx, content)
}
