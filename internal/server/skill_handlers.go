package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Skill struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon,omitempty"`
	OrderIndex  int    `json:"order_index"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (s *Server) ListSkills(ctx echo.Context) error {
	skills, err := s.server.ListSkills(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]Skill, 0, len(skills))
	for _, sk := range skills {
		list = append(list, convertSkill(sk))
	}

	return ctx.JSON(200, Res{Data: list})
}

type ListSkillsByCategoryRequest struct {
	Category string `param:"category" validate:"required"`
}

func (s *Server) ListSkillsByCategory(ctx echo.Context) error {
	var req ListSkillsByCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	skills, err := s.server.ListSkillsByCategory(ctx.Request().Context(), req.Category)
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]Skill, 0, len(skills))
	for _, sk := range skills {
		list = append(list, convertSkill(sk))
	}

	return ctx.JSON(200, Res{Data: list})
}

type GetSkillByIDRequest struct {
	ID uint `param:"id"`
}

func (s *Server) GetSkillByID(ctx echo.Context) error {
	var req GetSkillByIDRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	sk, err := s.server.GetSkillByID(ctx.Request().Context(), req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Data: convertSkill(sk)})
}

type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
}

func (s *Server) CreateSkill(ctx echo.Context) error {
	var req CreateSkillRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	sk, err := s.server.CreateSkill(ctx.Request().Context(), usecase.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(201, Res{
		Data:    convertSkill(sk),
		Message: "Skill created successfully",
	})
}

type UpdateSkillRequest struct {
	ID          uint   `param:"id"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
}

func (s *Server) UpdateSkill(ctx echo.Context) error {
	var req UpdateSkillRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	sk, err := s.server.UpdateSkill(ctx.Request().Context(), usecase.Skill{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{
		Data:    convertSkill(sk),
		Message: "Skill updated successfully",
	})
}

type DeleteSkillRequest struct {
	ID uint `param:"id"`
}

func (s *Server) DeleteSkill(ctx echo.Context) error {
	var req DeleteSkillRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}

	if err := s.server.DeleteSkill(ctx.Request().Context(), req.ID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "Skill deleted successfully"})
}

func convertSkill(sk usecase.Skill) Skill {
	return Skill{
		ID:          sk.ID,
		Name:        sk.Name,
		Category:    sk.Category,
		Proficiency: sk.Proficiency,
		Icon:        sk.Icon,
		OrderIndex:  sk.OrderIndex,
		CreatedAt:   sk.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sk.UpdatedAt.Format(time.RFC3339),
	}
}
