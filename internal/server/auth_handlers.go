package server

import (
	"time"

	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	user, token, err := s.server.Login(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Data: LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}})
}

type User struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// GetMe returns the admin identified by the bearer token.
func (s *Server) GetMe(ctx echo.Context) error {
	user, err := s.server.GetMe(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{Data: User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}})
}
