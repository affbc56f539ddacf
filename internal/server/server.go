package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/config"
	"github.com/anaphygon/portfolio/internal/database"
	"github.com/anaphygon/portfolio/internal/filestorage"
	"github.com/anaphygon/portfolio/internal/queue"
	"github.com/anaphygon/portfolio/internal/token"
	"github.com/anaphygon/portfolio/internal/usecase"
)

// Service is everything the HTTP surface needs from the application
// layer. The usecase package is the only implementation.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection and the queue client.
	Close() error

	// VerifyToken resolves a bearer credential to the subject user id.
	VerifyToken(context.Context, string) (uint, error)

	GetAssetBaseURL(context.Context) (string, error)

	ListProjects(context.Context) ([]usecase.Project, error)
	ListFeaturedProjects(context.Context) ([]usecase.Project, error)
	GetProjectByID(context.Context, uint) (usecase.Project, error)
	CreateProject(context.Context, usecase.CreateProject) (usecase.Project, error)
	UpdateProject(context.Context, uint, usecase.UpdateProject) (usecase.Project, error)
	DeleteProject(context.Context, uint) error
	GetProjectQR(context.Context, uint) ([]byte, error)

	ListSkills(context.Context) ([]usecase.Skill, error)
	ListSkillsByCategory(context.Context, string) ([]usecase.Skill, error)
	GetSkillByID(context.Context, uint) (usecase.Skill, error)
	CreateSkill(context.Context, usecase.Skill) (usecase.Skill, error)
	UpdateSkill(context.Context, usecase.Skill) (usecase.Skill, error)
	DeleteSkill(context.Context, uint) error

	ListContents(context.Context) (map[string][]usecase.Content, error)
	ListContentsBySection(context.Context, string) ([]usecase.Content, error)
	UpdateContent(context.Context, usecase.Content) (usecase.Content, error)

	ListCVs(context.Context) ([]usecase.CV, error)
	GetCVByID(context.Context, uint) (usecase.CV, error)
	UploadCV(context.Context, usecase.UploadCV) (usecase.CV, error)
	UpdateCV(context.Context, uint, usecase.UpdateCV) (usecase.CV, error)
	DeleteCV(context.Context, uint) error
	DownloadCV(context.Context, uint) (usecase.CV, io.ReadCloser, error)
	ViewCV(context.Context, uint) (usecase.CV, io.ReadCloser, error)
	ToggleCVActive(context.Context, uint) error

	Login(ctx context.Context, username, password string) (usecase.User, string, error)
	GetMe(context.Context) (usecase.User, error)

	SubmitContactMessage(context.Context, usecase.ContactMessage) (usecase.ContactMessage, error)
	ListContactMessages(context.Context) ([]usecase.ContactMessage, error)
}

type Server struct {
	server    Service
	validator *validator.Validate
	logger    *slog.Logger
	appEnv    string
}

// App owns the HTTP server and the service it serves.
type App struct {
	httpServer *http.Server
	svc        Service
}

func NewApp(logger *slog.Logger) (*App, error) {
	var (
		dbname = os.Getenv(config.ENV_KEY_DB_DATABASE)
		dbpass = os.Getenv(config.ENV_KEY_DB_PASSWORD)
		dbuser = os.Getenv(config.ENV_KEY_DB_USER)
		dbport = os.Getenv(config.ENV_KEY_DB_PORT)
		dbhost = os.Getenv(config.ENV_KEY_DB_HOST)
	)

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbuser, dbpass, dbhost, dbport, dbname)
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	maxOpenConnections := 10
	if m, err := strconv.Atoi(os.Getenv(config.ENV_KEY_DB_MAX_OPEN_CONNECTIONS)); err == nil && m > 0 {
		maxOpenConnections = m
	}
	sqlDB.SetMaxOpenConns(maxOpenConnections)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: database.NewSlogGormLogger(logger),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm database connection: %w", err)
	}

	repo, err := database.New(gormDB)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	fsp := filestorage.NewFromEnv()
	tokens := token.New(os.Getenv(config.ENV_KEY_JWT_SECRET))

	redisAddr := fmt.Sprintf("%s:%s",
		os.Getenv(config.ENV_KEY_REDIS_HOST),
		os.Getenv(config.ENV_KEY_REDIS_PORT),
	)
	qc := queue.NewClient(redisAddr, os.Getenv(config.ENV_KEY_REDIS_PASSWORD))

	// The API never sends mail itself; the worker does.
	sv := usecase.New(repo, fsp, nil, tokens, qc)

	srv := &Server{
		server:    sv,
		validator: validator.New(),
		logger:    logger,
		appEnv:    os.Getenv(config.ENV_KEY_APP_ENV),
	}

	port := 5000
	if p, err := strconv.Atoi(os.Getenv(config.ENV_KEY_PORT)); err == nil && p > 0 {
		port = p
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &App{
		httpServer: httpServer,
		svc:        sv,
	}, nil
}

func (a *App) Addr() string {
	return a.httpServer.Addr
}

func (a *App) ListenAndServe() error {
	return a.httpServer.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return a.svc.Close()
}
