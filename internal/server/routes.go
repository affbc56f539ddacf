package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/anaphygon/portfolio/internal/config"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(NewEchoLogger(s.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(config.MAX_UPLOAD_SIZE))

	allowOrigins := []string{"https://*", "http://*"}
	if origins := os.Getenv(config.ENV_KEY_ALLOWED_ORIGINS); origins != "" {
		allowOrigins = strings.Split(origins, ",")
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Locally stored assets are served straight from disk. The other
	// storage providers serve from their own public endpoints.
	uploadDir := os.Getenv(config.ENV_KEY_UPLOAD_DIR)
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	e.Static("/uploads", uploadDir)

	e.GET("/api/health", s.healthHandler)
	e.GET("/api/config", s.GetConfig)

	var authGroup = e.Group("/api/auth")
	authGroup.POST("/login", s.Login)
	authGroup.GET("/me", s.GetMe, s.AuthMiddleware)

	var projectGroup = e.Group("/api/projects")
	projectGroup.GET("", s.ListProjects)
	projectGroup.GET("/featured", s.ListFeaturedProjects)
	projectGroup.GET("/:id", s.GetProjectByID)
	projectGroup.GET("/:id/qr", s.GetProjectQR)
	projectGroup.POST("", s.CreateProject, s.AuthMiddleware)
	projectGroup.PUT("/:id", s.UpdateProject, s.AuthMiddleware)
	projectGroup.DELETE("/:id", s.DeleteProject, s.AuthMiddleware)

	var skillGroup = e.Group("/api/skills")
	skillGroup.GET("", s.ListSkills)
	skillGroup.GET("/category/:category", s.ListSkillsByCategory)
	skillGroup.GET("/:id", s.GetSkillByID)
	skillGroup.POST("", s.CreateSkill, s.AuthMiddleware)
	skillGroup.PUT("/:id", s.UpdateSkill, s.AuthMiddleware)
	skillGroup.DELETE("/:id", s.DeleteSkill, s.AuthMiddleware)

	var contentGroup = e.Group("/api/content")
	contentGroup.GET("", s.ListContents)
	contentGroup.GET("/:section", s.ListContentsBySection)
	contentGroup.PUT("/:id", s.UpdateContent, s.AuthMiddleware)

	var cvGroup = e.Group("/api/cv")
	cvGroup.GET("", s.ListCVs)
	cvGroup.GET("/download/:id", s.DownloadCV)
	cvGroup.GET("/view/:id", s.ViewCV)
	cvGroup.GET("/:id", s.GetCVByID)
	cvGroup.POST("", s.UploadCV, s.AuthMiddleware)
	cvGroup.PUT("/:id/toggle-active", s.ToggleCVActive, s.AuthMiddleware)
	cvGroup.PUT("/:id", s.UpdateCV, s.AuthMiddleware)
	cvGroup.DELETE("/:id", s.DeleteCV, s.AuthMiddleware)

	var contactGroup = e.Group("/api/contact")
	contactGroup.POST("/send", s.SendContactMessage)
	contactGroup.GET("", s.ListContactMessages, s.AuthMiddleware)

	return e
}
