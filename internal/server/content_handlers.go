package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Content struct {
	ID         uint   `json:"id"`
	Section    string `json:"section"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ListContents returns every content block, grouped by section.
func (s *Server) ListContents(ctx echo.Context) error {
	grouped, err := s.server.ListContents(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	res := make(map[string][]Content, len(grouped))
	for section, list := range grouped {
		converted := make([]Content, 0, len(list))
		for _, c := range list {
			converted = append(converted, convertContent(c))
		}
		res[section] = converted
	}

	return ctx.JSON(200, Res{Data: res})
}

type ListContentsBySectionRequest struct {
	Section string `param:"section" validate:"required"`
}

func (s *Server) ListContentsBySection(ctx echo.Context) error {
	var req ListContentsBySectionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	contents, err := s.server.ListContentsBySection(ctx.Request().Context(), req.Section)
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]Content, 0, len(contents))
	for _, c := range contents {
		list = append(list, convertContent(c))
	}

	return ctx.JSON(200, Res{Data: list})
}

type UpdateContentRequest struct {
	ID         uint   `param:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// UpdateContent edits a block's copy. The section a block belongs to
// is fixed at seed time and cannot be changed over the API.
func (s *Server) UpdateContent(ctx echo.Context) error {
	var req UpdateContentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	c, err := s.server.UpdateContent(ctx.Request().Context(), usecase.Content{
		ID:         req.ID,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Body:       req.Content,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{
		Data:    convertContent(c),
		Message: "Content updated successfully",
	})
}

func convertContent(c usecase.Content) Content {
	return Content{
		ID:         c.ID,
		Section:    c.Section,
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		Content:    c.Body,
		OrderIndex: c.OrderIndex,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}
