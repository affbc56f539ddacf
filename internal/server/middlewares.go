package server

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anaphygon/portfolio/internal/config"
)

// AuthMiddleware checks the authorization header and verifies the
// bearer token using the injected server.VerifyToken method, then
// transforms the request to carry the user id in downstream context.
func (s *Server) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		auth := c.Request().Header.Get(config.HEADER_KEY_AUTHORIZATION)

		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return c.JSON(401, Res{Error: &ErrRes{
				Kind:    "unauthorized",
				Message: "authorization header is required",
			}})
		}

		ctx := c.Request().Context()

		userID, err := s.server.VerifyToken(ctx, strings.TrimPrefix(auth, prefix))
		if err != nil {
			return s.respondError(c, err)
		}

		nc := context.WithValue(ctx, config.CTX_KEY_USER_ID, userID)
		c.SetRequest(c.Request().WithContext(nc))

		return next(c)
	}
}
