package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Content struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Section    string    `gorm:"column:section;type:varchar(100);not null;index"`
	Title      string    `gorm:"column:title;type:varchar(255)"`
	Subtitle   string    `gorm:"column:subtitle;type:varchar(255)"`
	Body       string    `gorm:"column:content;type:text"`
	OrderIndex int       `gorm:"column:order_index;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Content) TableName() string {
	return "content"
}

func (s *service) ListContents(ctx context.Context) ([]usecase.Content, error) {
	var contents []Content

	err := s.db.
		WithContext(ctx).
		Order("section ASC, order_index ASC").
		Find(&contents).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Content, 0, len(contents))
	for _, c := range contents {
		list = append(list, c.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) ListContentsBySection(ctx context.Context, section string) ([]usecase.Content, error) {
	var contents []Content

	err := s.db.
		WithContext(ctx).
		Where("section = ?", section).
		Order("order_index ASC").
		Find(&contents).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Content, 0, len(contents))
	for _, c := range contents {
		list = append(list, c.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetContentByID(ctx context.Context, id uint) (usecase.Content, error) {
	var c Content

	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Content{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "content_not_found",
				Message: fmt.Sprintf("content %d not found", id),
			}
		}
		return usecase.Content{}, err
	}

	return c.ConvertToUsecase(), nil
}

func (s *service) UpdateContent(ctx context.Context, content usecase.Content) (usecase.Content, error) {
	c := Content{
		ID:         content.ID,
		Section:    content.Section,
		Title:      content.Title,
		Subtitle:   content.Subtitle,
		Body:       content.Body,
		OrderIndex: content.OrderIndex,
		CreatedAt:  content.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return usecase.Content{}, err
	}
	return c.ConvertToUsecase(), nil
}

// Convert core model to Usecase
func (c Content) ConvertToUsecase() usecase.Content {
	return usecase.Content{
		ID:         c.ID,
		Section:    c.Section,
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		Body:       c.Body,
		OrderIndex: c.OrderIndex,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
