package server

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) healthHandler(ctx echo.Context) error {
	return ctx.JSON(200, s.server.Health())
}

type ConfigResponse struct {
	AssetBaseURL string `json:"asset_base_url"`
}

// GetConfig exposes the public base URL clients prefix to
// store-relative asset references.
func (s *Server) GetConfig(ctx echo.Context) error {
	base, err := s.server.GetAssetBaseURL(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(200, Res{Data: ConfigResponse{AssetBaseURL: base}})
}
