package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type CV struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	FilePath      string `json:"file_path"`
	FileName      string `json:"file_name"`
	FileSize      int64  `json:"file_size"`
	IsActive      bool   `json:"is_active"`
	DownloadCount int    `json:"download_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func (s *Server) ListCVs(ctx echo.Context) error {
	cvs, err := s.server.ListCVs(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]CV, 0, len(cvs))
	for _, cv := range cvs {
		list = append(list, convertCV(cv))
	}

	return ctx.JSON(200, Res{Data: list})
}

type GetCVByIDRequest struct {
	ID uint `param:"id"`
}

func (s *Server) GetCVByID(ctx echo.Context) error {
	var req GetCVByIDRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	cv, err := s.server.GetCVByID(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Data: convertCV(cv)})
}

type UploadCVRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
}

func (s *Server) UploadCV(ctx echo.Context) error {
	var req UploadCVRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	file, err := s.formUpload(ctx, "cv_file")
	if err != nil {
		return s.respondBind(ctx, err)
	}

	cv, err := s.server.UploadCV(ctx.Request().Context(), usecase.UploadCV{
		Title:       req.Title,
		Description: req.Description,
		File:        file,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(201, Res{
		Data:    convertCV(cv),
		Message: "CV uploaded successfully",
	})
}

type UpdateCVRequest struct {
	ID          uint   `param:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (s *Server) UpdateCV(ctx echo.Context) error {
	var req UpdateCVRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	cv, err := s.server.UpdateCV(ctx.Request().Context(), req.ID, usecase.UpdateCV{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{
		Data:    convertCV(cv),
		Message: "CV updated successfully",
	})
}

type DeleteCVRequest struct {
	ID uint `param:"id"`
}

func (s *Server) DeleteCV(ctx echo.Context) error {
	var req DeleteCVRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	if err := s.server.DeleteCV(ctx.Request().Context(), req.ID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "CV deleted successfully"})
}

type DownloadCVRequest struct {
	ID uint `param:"id"`
}

// DownloadCV streams the PDF as an attachment and counts the download.
func (s *Server) DownloadCV(ctx echo.Context) error {
	var req DownloadCVRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	cv, rc, err := s.server.DownloadCV(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	defer rc.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", cv.FileName))

	return ctx.Stream(200, "application/pdf", rc)
}

type ViewCVRequest struct {
	ID uint `param:"id"`
}

// ViewCV streams the PDF inline for in-browser preview. Views are not
// counted as downloads.
func (s *Server) ViewCV(ctx echo.Context) error {
	var req ViewCVRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	cv, rc, err := s.server.ViewCV(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	defer rc.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", cv.FileName))

	return ctx.Stream(200, "application/pdf", rc)
}

type ToggleCVActiveRequest struct {
	ID uint `param:"id"`
}

func (s *Server) ToggleCVActive(ctx echo.Context) error {
	var req ToggleCVActiveRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	if err := s.server.ToggleCVActive(ctx.Request().Context(), req.ID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "CV status updated successfully"})
}

func convertCV(cv usecase.CV) CV {
	return CV{
		ID:            cv.ID,
		Title:         cv.Title,
		Description:   cv.Description,
		FilePath:      cv.FilePath,
		FileName:      cv.FileName,
		FileSize:      cv.FileSize,
		IsActive:      cv.IsActive,
		DownloadCount: cv.DownloadCount,
		CreatedAt:     cv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     cv.UpdatedAt.Format(time.RFC3339),
	}
}
