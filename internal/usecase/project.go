package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cenkalti/dominantcolor"
	"github.com/skip2/go-qrcode"
)

type Project struct {
	ID          uint
	Title       string
	Description string
	Thumbnail   string
	Images      []string
	Tags        []string
	URL         string
	GithubURL   string
	Featured    bool
	OrderIndex  int
	Colors      []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProject carries the parsed multipart payload of a project
// creation. Featured and OrderIndex stay raw form strings; the
// normalization rules live here, not in the handler.
type CreateProject struct {
	Title       string
	Description string
	Tags        []string
	URL         string
	GithubURL   string
	Featured    string
	OrderIndex  string
	Thumbnail   *Upload
	Images      []Upload
}

// UpdateProject uses pointers for fields that preserve the stored
// value when absent from the form. A new thumbnail or image set always
// wins; there is no way to clear assets, only replace them.
type UpdateProject struct {
	Title       *string
	Description *string
	Tags        *[]string
	URL         *string
	GithubURL   *string
	Featured    *string
	OrderIndex  *string
	Thumbnail   *Upload
	Images      []Upload
}

func (u Usecase) ListProjects(ctx context.Context) ([]Project, error) {
	return u.repo.ListProjects(ctx)
}

func (u Usecase) ListFeaturedProjects(ctx context.Context) ([]Project, error) {
	return u.repo.ListFeaturedProjects(ctx, 4)
}

func (u Usecase) GetProjectByID(ctx context.Context, id uint) (Project, error) {
	return u.repo.GetProjectByID(ctx, id)
}

func (u Usecase) CreateProject(ctx context.Context, cmd CreateProject) (Project, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return Project{}, ErrValidation{Field: "title", Message: "title is required"}
	}

	p := Project{
		Title:       cmd.Title,
		Description: cmd.Description,
		Tags:        cmd.Tags,
		URL:         cmd.URL,
		GithubURL:   cmd.GithubURL,
		Featured:    normalizeFeatured(cmd.Featured),
		OrderIndex:  normalizeOrderIndex(cmd.OrderIndex),
		Images:      []string{},
	}

	// Stage every upload through the asset store before the row
	// insert, so the row never references a file that was not written.
	var staged []string
	if cmd.Thumbnail != nil {
		ref, err := u.fileStorageProvider.Store(ctx, *cmd.Thumbnail)
		if err != nil {
			return Project{}, ErrAssetWrite{Name: cmd.Thumbnail.Name, Err: err}
		}
		staged = append(staged, ref)
		p.Thumbnail = ref
		p.Colors = extractThumbnailColors(cmd.Thumbnail.Content)
	}
	for _, img := range cmd.Images {
		ref, err := u.fileStorageProvider.Store(ctx, img)
		if err != nil {
			u.deleteAssets(ctx, staged)
			return Project{}, ErrAssetWrite{Name: img.Name, Err: err}
		}
		staged = append(staged, ref)
		p.Images = append(p.Images, ref)
	}

	created, err := u.repo.CreateProject(ctx, p)
	if err != nil {
		// Compensating cleanup: the insert failed, so the staged
		// assets must not be left orphaned on the store.
		u.deleteAssets(ctx, staged)
		return Project{}, err
	}
	return created, nil
}

func (u Usecase) UpdateProject(ctx context.Context, id uint, cmd UpdateProject) (Project, error) {
	existing, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		return Project{}, err
	}

	merged := existing
	if cmd.Title != nil {
		if strings.TrimSpace(*cmd.Title) == "" {
			return Project{}, ErrValidation{Field: "title", Message: "title is required"}
		}
		merged.Title = *cmd.Title
	}
	if cmd.Description != nil {
		merged.Description = *cmd.Description
	}
	if cmd.Tags != nil {
		merged.Tags = *cmd.Tags
	}
	if cmd.URL != nil {
		merged.URL = *cmd.URL
	}
	if cmd.GithubURL != nil {
		merged.GithubURL = *cmd.GithubURL
	}
	if cmd.Featured != nil {
		merged.Featured = normalizeFeatured(*cmd.Featured)
	}
	if cmd.OrderIndex != nil {
		merged.OrderIndex = normalizeOrderIndex(*cmd.OrderIndex)
	}

	var staged, replaced []string
	if cmd.Thumbnail != nil {
		ref, err := u.fileStorageProvider.Store(ctx, *cmd.Thumbnail)
		if err != nil {
			return Project{}, ErrAssetWrite{Name: cmd.Thumbnail.Name, Err: err}
		}
		staged = append(staged, ref)
		if isStoreRelative(existing.Thumbnail) {
			replaced = append(replaced, existing.Thumbnail)
		}
		merged.Thumbnail = ref
		merged.Colors = extractThumbnailColors(cmd.Thumbnail.Content)
	}
	if len(cmd.Images) > 0 {
		// Whole-list replacement: new uploads discard the old list,
		// there is no merge.
		images := make([]string, 0, len(cmd.Images))
		for _, img := range cmd.Images {
			ref, err := u.fileStorageProvider.Store(ctx, img)
			if err != nil {
				u.deleteAssets(ctx, staged)
				return Project{}, ErrAssetWrite{Name: img.Name, Err: err}
			}
			staged = append(staged, ref)
			images = append(images, ref)
		}
		for _, old := range existing.Images {
			if isStoreRelative(old) {
				replaced = append(replaced, old)
			}
		}
		merged.Images = images
	}

	updated, err := u.repo.UpdateProject(ctx, merged)
	if err != nil {
		u.deleteAssets(ctx, staged)
		return Project{}, err
	}

	// The row now points at the new references; the replaced ones are
	// unreachable and can be reclaimed. Failures here are logged, not
	// surfaced: the update itself succeeded.
	u.deleteAssets(ctx, replaced)

	return updated, nil
}

func (u Usecase) DeleteProject(ctx context.Context, id uint) error {
	existing, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteProject(ctx, id); err != nil {
		return err
	}

	// Reclaim the project's assets so deletes don't orphan files on
	// the store. External URLs are left alone.
	var refs []string
	if isStoreRelative(existing.Thumbnail) {
		refs = append(refs, existing.Thumbnail)
	}
	for _, img := range existing.Images {
		if isStoreRelative(img) {
			refs = append(refs, img)
		}
	}
	u.deleteAssets(ctx, refs)

	return nil
}

// GetProjectQR renders a QR code pointing at the project's live URL.
func (u Usecase) GetProjectQR(ctx context.Context, id uint) ([]byte, error) {
	p, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.URL == "" {
		return nil, ErrValidation{Field: "url", Message: "project has no live URL"}
	}
	return qrcode.Encode(p.URL, qrcode.Medium, 256)
}

func (u Usecase) deleteAssets(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := u.fileStorageProvider.Delete(ctx, ref); err != nil {
			slog.WarnContext(ctx, "failed to delete asset",
				slog.String("ref", ref),
				slog.String("err", err.Error()),
			)
		}
	}
}

// normalizeFeatured treats the form string "true" (or any value
// strconv.ParseBool accepts as true) as truthy; everything else,
// including an absent field, is false.
func normalizeFeatured(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}

// normalizeOrderIndex defaults to 0 on an absent or unparseable value.
func normalizeOrderIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// extractThumbnailColors decodes an uploaded thumbnail and pulls its
// four dominant colors for client-side placeholder palettes. Returns
// nil when the content is not a decodable image.
func extractThumbnailColors(content []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil
	}

	colors := make(map[int][4]uint8)
	for i, c := range dominantcolor.FindN(img, 4) {
		colors[i] = [4]uint8{c.R, c.G, c.B, c.A}
	}

	b, err := json.Marshal(colors)
	if err != nil {
		return nil
	}
	return b
}
