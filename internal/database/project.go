package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Project struct {
	ID          uint           `gorm:"column:id;primaryKey"`
	Title       string         `gorm:"column:title;type:varchar(255);not null"`
	Description string         `gorm:"column:description;type:text"`
	Thumbnail   string         `gorm:"column:thumbnail;type:varchar(512)"`
	Images      datatypes.JSON `gorm:"column:images"`
	Tags        datatypes.JSON `gorm:"column:tags"`
	URL         string         `gorm:"column:url;type:varchar(512)"`
	GithubURL   string         `gorm:"column:github_url;type:varchar(512)"`
	Featured    bool           `gorm:"column:featured;default:false"`
	OrderIndex  int            `gorm:"column:order_index;default:0;index"`
	Colors      datatypes.JSON `gorm:"column:colors"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (s *service) ListProjects(ctx context.Context) ([]usecase.Project, error) {
	var projects []Project

	err := s.db.
		WithContext(ctx).
		Order("order_index ASC, id ASC").
		Find(&projects).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, p.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) ListFeaturedProjects(ctx context.Context, limit int) ([]usecase.Project, error) {
	var projects []Project

	err := s.db.
		WithContext(ctx).
		Where("featured = ?", true).
		Order("order_index ASC, id ASC").
		Limit(limit).
		Find(&projects).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, p.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetProjectByID(ctx context.Context, id uint) (usecase.Project, error) {
	var p Project

	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Project{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "project_not_found",
				Message: fmt.Sprintf("project %d not found", id),
			}
		}
		return usecase.Project{}, err
	}

	return p.ConvertToUsecase(), nil
}

func (s *service) CreateProject(ctx context.Context, project usecase.Project) (usecase.Project, error) {
	p := convertProject(project)

	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return usecase.Project{}, err
	}
	return p.ConvertToUsecase(), nil
}

// UpdateProject writes the full row, zero values included; the usecase
// has already merged the submitted fields over the stored ones.
func (s *service) UpdateProject(ctx context.Context, project usecase.Project) (usecase.Project, error) {
	p := convertProject(project)
	p.ID = project.ID
	p.CreatedAt = project.CreatedAt

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return usecase.Project{}, err
	}
	return p.ConvertToUsecase(), nil
}

func (s *service) DeleteProject(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound{
			ID:      id,
			Code:    "project_not_found",
			Message: fmt.Sprintf("project %d not found", id),
		}
	}
	return nil
}

func convertProject(project usecase.Project) Project {
	return Project{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Thumbnail:   project.Thumbnail,
		Images:      marshalStrings(project.Images),
		Tags:        marshalStrings(project.Tags),
		URL:         project.URL,
		GithubURL:   project.GithubURL,
		Featured:    project.Featured,
		OrderIndex:  project.OrderIndex,
		Colors:      datatypes.JSON(project.Colors),
	}
}

// Convert core model to Usecase
func (p Project) ConvertToUsecase() usecase.Project {
	return usecase.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      unmarshalStrings(p.Images),
		Tags:        unmarshalStrings(p.Tags),
		URL:         p.URL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		OrderIndex:  p.OrderIndex,
		Colors:      []byte(p.Colors),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func marshalStrings(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return datatypes.JSON(b)
}

func unmarshalStrings(raw datatypes.JSON) []string {
	list := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &list)
	}
	return list
}
