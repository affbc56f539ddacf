package usecase

import (
	"context"
	"io"
	"strings"
	"time"
)

type CV struct {
	ID            uint
	Title         string
	Description   string
	FilePath      string
	FileName      string
	FileSize      int64
	IsActive      bool
	DownloadCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UploadCV struct {
	Title       string
	Description string
	File        *Upload
}

type UpdateCV struct {
	Title       string
	Description string
}

func (u Usecase) ListCVs(ctx context.Context) ([]CV, error) {
	return u.repo.ListCVs(ctx)
}

func (u Usecase) GetCVByID(ctx context.Context, id uint) (CV, error) {
	return u.repo.GetCVByID(ctx, id)
}

func (u Usecase) UploadCV(ctx context.Context, cmd UploadCV) (CV, error) {
	if cmd.File == nil {
		return CV{}, ErrValidation{Field: "cv_file", Message: "no file uploaded"}
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return CV{}, ErrValidation{Field: "title", Message: "title is required"}
	}
	if cmd.File.ContentType != "application/pdf" {
		return CV{}, ErrValidation{Field: "cv_file", Message: "only PDF files are allowed for CV"}
	}

	ref, err := u.fileStorageProvider.Store(ctx, *cmd.File)
	if err != nil {
		return CV{}, ErrAssetWrite{Name: cmd.File.Name, Err: err}
	}

	cv := CV{
		Title:       cmd.Title,
		Description: cmd.Description,
		FilePath:    ref,
		FileName:    cmd.File.Name,
		FileSize:    int64(len(cmd.File.Content)),
		IsActive:    true,
	}

	created, err := u.repo.CreateCV(ctx, cv)
	if err != nil {
		u.deleteAssets(ctx, []string{ref})
		return CV{}, err
	}
	return created, nil
}

func (u Usecase) UpdateCV(ctx context.Context, id uint, cmd UpdateCV) (CV, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return CV{}, ErrValidation{Field: "title", Message: "title is required"}
	}

	cv, err := u.repo.GetCVByID(ctx, id)
	if err != nil {
		return CV{}, err
	}
	cv.Title = cmd.Title
	cv.Description = cmd.Description

	return u.repo.UpdateCV(ctx, cv)
}

func (u Usecase) DeleteCV(ctx context.Context, id uint) error {
	cv, err := u.repo.GetCVByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteCV(ctx, id); err != nil {
		return err
	}
	u.deleteAssets(ctx, []string{cv.FilePath})
	return nil
}

// DownloadCV opens an active CV's file and bumps its download counter.
func (u Usecase) DownloadCV(ctx context.Context, id uint) (CV, io.ReadCloser, error) {
	cv, err := u.repo.GetCVByID(ctx, id)
	if err != nil {
		return CV{}, nil, err
	}
	if !cv.IsActive {
		return CV{}, nil, ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found or inactive"}
	}

	rc, err := u.fileStorageProvider.Open(ctx, cv.FilePath)
	if err != nil {
		return CV{}, nil, ErrNotFound{ID: id, Code: "cv_file_not_found", Message: "CV file not found on server"}
	}

	if err := u.repo.IncrementCVDownloadCount(ctx, id); err != nil {
		rc.Close()
		return CV{}, nil, err
	}

	return cv, rc, nil
}

// ViewCV opens an active CV for inline preview without counting it as
// a download.
func (u Usecase) ViewCV(ctx context.Context, id uint) (CV, io.ReadCloser, error) {
	cv, err := u.repo.GetCVByID(ctx, id)
	if err != nil {
		return CV{}, nil, err
	}
	if !cv.IsActive {
		return CV{}, nil, ErrNotFound{ID: id, Code: "cv_not_found", Message: "CV not found or inactive"}
	}

	rc, err := u.fileStorageProvider.Open(ctx, cv.FilePath)
	if err != nil {
		return CV{}, nil, ErrNotFound{ID: id, Code: "cv_file_not_found", Message: "CV file not found on server"}
	}
	return cv, rc, nil
}

func (u Usecase) ToggleCVActive(ctx context.Context, id uint) error {
	if _, err := u.repo.GetCVByID(ctx, id); err != nil {
		return err
	}
	return u.repo.ToggleCVActive(ctx, id)
}
