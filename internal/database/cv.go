package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type CV struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	Title         string    `gorm:"column:title;type:varchar(255);not null"`
	Description   string    `gorm:"column:description;type:text"`
	FilePath      string    `gorm:"column:file_path;type:varchar(512);not null"`
	FileName      string    `gorm:"column:file_name;type:varchar(255)"`
	FileSize      int64     `gorm:"column:file_size"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	DownloadCount int       `gorm:"column:download_count;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (CV) TableName() string {
	return "cvs"
}

func (s *service) ListCVs(ctx context.Context) ([]usecase.CV, error) {
	var cvs []CV

	err := s.db.
		WithContext(ctx).
		Order("created_at DESC").
		Find(&cvs).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.CV, 0, len(cvs))
	for _, cv := range cvs {
		list = append(list, cv.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetCVByID(ctx context.Context, id uint) (usecase.CV, error) {
	var cv CV

	err := s.db.WithContext(ctx).First(&cv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.CV{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "cv_not_found",
				Message: fmt.Sprintf("CV %d not found", id),
			}
		}
		return usecase.CV{}, err
	}

	return cv.ConvertToUsecase(), nil
}

func (s *service) CreateCV(ctx context.Context, cv usecase.CV) (usecase.CV, error) {
	m := CV{
		Title:       cv.Title,
		Description: cv.Description,
		FilePath:    cv.FilePath,
		FileName:    cv.FileName,
		FileSize:    cv.FileSize,
		IsActive:    cv.IsActive,
	}

	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return usecase.CV{}, err
	}
	return m.ConvertToUsecase(), nil
}

func (s *service) UpdateCV(ctx context.Context, cv usecase.CV) (usecase.CV, error) {
	m := CV{
		ID:            cv.ID,
		Title:         cv.Title,
		Description:   cv.Description,
		FilePath:      cv.FilePath,
		FileName:      cv.FileName,
		FileSize:      cv.FileSize,
		IsActive:      cv.IsActive,
		DownloadCount: cv.DownloadCount,
		CreatedAt:     cv.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return usecase.CV{}, err
	}
	return m.ConvertToUsecase(), nil
}

func (s *service) DeleteCV(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&CV{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound{
			ID:      id,
			Code:    "cv_not_found",
			Message: fmt.Sprintf("CV %d not found", id),
		}
	}
	return nil
}

func (s *service) IncrementCVDownloadCount(ctx context.Context, id uint) error {
	return s.db.
		WithContext(ctx).
		Model(&CV{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).
		Error
}

func (s *service) ToggleCVActive(ctx context.Context, id uint) error {
	res := s.db.
		WithContext(ctx).
		Model(&CV{}).
		Where("id = ?", id).
		UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound{
			ID:      id,
			Code:    "cv_not_found",
			Message: fmt.Sprintf("CV %d not found", id),
		}
	}
	return nil
}

// Convert core model to Usecase
func (cv CV) ConvertToUsecase() usecase.CV {
	return usecase.CV{
		ID:            cv.ID,
		Title:         cv.Title,
		Description:   cv.Description,
		FilePath:      cv.FilePath,
		FileName:      cv.FileName,
		FileSize:      cv.FileSize,
		IsActive:      cv.IsActive,
		DownloadCount: cv.DownloadCount,
		CreatedAt:     cv.CreatedAt,
		UpdatedAt:     cv.UpdatedAt,
	}
}
