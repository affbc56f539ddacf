package server

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type Meta struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type ErrRes struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Res struct {
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrRes     `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// respondError maps application errors to a single wire shape so
// clients can switch on error.kind instead of parsing messages.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var (
		notFound     usecase.ErrNotFound
		validation   usecase.ErrValidation
		unauthorized usecase.ErrUnauthorized
		assetWrite   usecase.ErrAssetWrite
	)

	switch {
	case errors.As(err, &validation):
		return ctx.JSON(400, Res{Error: &ErrRes{
			Kind:    "validation",
			Message: validation.Message,
		}})
	case errors.As(err, &unauthorized):
		return ctx.JSON(401, Res{Error: &ErrRes{
			Kind:    "unauthorized",
			Message: unauthorized.Message,
		}})
	case errors.As(err, &notFound):
		return ctx.JSON(404, Res{Error: &ErrRes{
			Kind:    "not_found",
			Message: notFound.Message,
		}})
	case errors.As(err, &assetWrite):
		s.logger.ErrorContext(ctx.Request().Context(), "asset write failed",
			"name", assetWrite.Name,
			"err", assetWrite.Err.Error(),
		)
		return ctx.JSON(500, Res{Error: &ErrRes{
			Kind:    "asset_write",
			Message: s.internalMessage(err),
		}})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "internal error",
			"err", err.Error(),
		)
		return ctx.JSON(500, Res{Error: &ErrRes{
			Kind:    "internal",
			Message: s.internalMessage(err),
		}})
	}
}

// respondBind is for malformed input caught before the usecase layer.
func (s *Server) respondBind(ctx echo.Context, err error) error {
	return ctx.JSON(400, Res{Error: &ErrRes{
		Kind:    "validation",
		Message: err.Error(),
	}})
}

func (s *Server) internalMessage(err error) string {
	if s.appEnv == "local" || s.appEnv == "dev" {
		return err.Error()
	}
	return "something went wrong"
}
