package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type SendContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (s *Server) SendContactMessage(ctx echo.Context) error {
	var req SendContactRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondBind(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return s.respondBind(ctx, err)
	}

	_, err := s.server.SubmitContactMessage(ctx.Request().Context(), usecase.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(200, Res{
		Message: "Message sent successfully! I will get back to you soon.",
	})
}

type ContactMessage struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) ListContactMessages(ctx echo.Context) error {
	messages, err := s.server.ListContactMessages(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	list := make([]ContactMessage, 0, len(messages))
	for _, m := range messages {
		list = append(list, ContactMessage{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(200, Res{Data: list})
}
