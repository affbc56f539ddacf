package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/config"
	"github.com/anaphygon/portfolio/internal/usecase"
)

type Project struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail,omitempty"`
	Images      []string         `json:"images"`
	Tags        []string         `json:"tags"`
	URL         string           `json:"url,omitempty"`
	GithubURL   string           `json:"github_url,omitempty"`
	Featured    bool             `json:"featured"`
	OrderIndex  int              `json:"order_index"`
	Colors      map[int][4]uint8 `json:"colors,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

func (s *Server) ListProjects(ctx echo.Context) error {
	projects, err := s.server.ListProjects(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, convertProject(p))
	}

	return ctx.JSON(200, Res{Data: list})
}

func (s *Server) ListFeaturedProjects(ctx echo.Context) error {
	projects, err := s.server.ListFeaturedProjects(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, convertProject(p))
	}

	return ctx.JSON(200, Res{Data: list})
}

type GetProjectByIDRequest struct {
	ID uint `param:"id"`
}

func (s *Server) GetProjectByID(ctx echo.Context) error {
	var req GetProjectByIDRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	p, err := s.server.GetProjectByID(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Data: convertProject(p)})
}

type CreateProjectRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Tags        string `form:"tags"`
	URL         string `form:"url" validate:"omitempty,url"`
	GithubURL   string `form:"github_url" validate:"omitempty,url"`
	Featured    string `form:"featured"`
	OrderIndex  string `form:"order_index"`
}

type CreateProjectResponse struct {
	ID uint `json:"id"`
}

func (s *Server) CreateProject(ctx echo.Context) error {
	var req CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	thumbnail, err := s.formUpload(ctx, "thumbnail")
	if err != nil {
		return s.respondBind(ctx, err)
	}
	images, err := s.formUploads(ctx, "images")
	if err != nil {
		return s.respondError(ctx, err)
	}

	p, err := s.server.CreateProject(ctx.Request().Context(), usecase.CreateProject{
		Title:       req.Title,
		Description: req.Description,
		Tags:        parseTags(req.Tags),
		URL:         req.URL,
		GithubURL:   req.GithubURL,
		Featured:    req.Featured,
		OrderIndex:  req.OrderIndex,
		Thumbnail:   thumbnail,
		Images:      images,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(201, Res{
		Data:    CreateProjectResponse{ID: p.ID},
		Message: "Project created successfully",
	})
}

type UpdateProjectRequest struct {
	ID uint `param:"id"`
}

func (s *Server) UpdateProject(ctx echo.Context) error {
	var req UpdateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	// Absent form fields keep their stored values, so presence has to
	// be read off the form itself rather than a bound struct.
	form, err := ctx.FormParams()
	if err != nil {
		return s.respondBind(ctx, err)
	}

	var cmd usecase.UpdateProject
	if v, ok := formValue(form, "title"); ok {
		cmd.Title = &v
	}
	if v, ok := formValue(form, "description"); ok {
		cmd.Description = &v
	}
	if v, ok := formValue(form, "tags"); ok {
		tags := parseTags(v)
		cmd.Tags = &tags
	}
	if v, ok := formValue(form, "url"); ok {
		cmd.URL = &v
	}
	if v, ok := formValue(form, "github_url"); ok {
		cmd.GithubURL = &v
	}
	if v, ok := formValue(form, "featured"); ok {
		cmd.Featured = &v
	}
	if v, ok := formValue(form, "order_index"); ok {
		cmd.OrderIndex = &v
	}

	cmd.Thumbnail, err = s.formUpload(ctx, "thumbnail")
	if err != nil {
		return s.respondBind(ctx, err)
	}
	cmd.Images, err = s.formUploads(ctx, "images")
	if err != nil {
		return s.respondError(ctx, err)
	}

	p, err := s.server.UpdateProject(ctx.Request().Context(), req.ID, cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{
		Data:    convertProject(p),
		Message: "Project updated successfully",
	})
}

type DeleteProjectRequest struct {
	ID uint `param:"id"`
}

func (s *Server) DeleteProject(ctx echo.Context) error {
	var req DeleteProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	if err := s.server.DeleteProject(ctx.Request().Context(), req.ID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "Project deleted successfully"})
}

type GetProjectQRRequest struct {
	ID uint `param:"id"`
}

func (s *Server) GetProjectQR(ctx echo.Context) error {
	var req GetProjectQRRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	png, err := s.server.GetProjectQR(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.Blob(200, "image/png", png)
}

// formUpload reads a single optional file field into memory. A missing
// field is not an error.
func (s *Server) formUpload(ctx echo.Context, field string) (*usecase.Upload, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	up, err := readUpload(fh)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

// formUploads reads a repeated file field, bounded by the per-project
// image cap.
func (s *Server) formUploads(ctx echo.Context, field string) ([]usecase.Upload, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, usecase.ErrValidation{Field: field, Message: err.Error()}
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	if len(headers) > config.MAX_PROJECT_FILES {
		return nil, usecase.ErrValidation{
			Field:   field,
			Message: fmt.Sprintf("a maximum of %d images is allowed", config.MAX_PROJECT_FILES),
		}
	}

	uploads := make([]usecase.Upload, 0, len(headers))
	for _, fh := range headers {
		up, err := readUpload(fh)
		if err != nil {
			return nil, usecase.ErrValidation{Field: field, Message: err.Error()}
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func readUpload(fh *multipart.FileHeader) (usecase.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.Upload{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return usecase.Upload{}, err
	}

	return usecase.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func formValue(form map[string][]string, key string) (string, bool) {
	vals, ok := form[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// parseTags splits a comma-separated form field into a clean list.
func parseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func convertProject(p usecase.Project) Project {
	res := Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      p.Images,
		Tags:        p.Tags,
		URL:         p.URL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		OrderIndex:  p.OrderIndex,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if len(p.Colors) > 0 {
		var colors map[int][4]uint8
		if err := json.Unmarshal(p.Colors, &colors); err == nil {
			res.Colors = colors
		}
	}
	return res
}
