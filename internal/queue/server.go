package queue

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/config"
	"github.com/anaphygon/portfolio/internal/database"
	"github.com/anaphygon/portfolio/internal/email"
	"github.com/anaphygon/portfolio/internal/filestorage"
	"github.com/anaphygon/portfolio/internal/queue/handlers"
	"github.com/anaphygon/portfolio/internal/usecase"
)

// Server wraps asynq.Server for processing tasks
type Server struct {
	asynqServer *asynq.Server
	mux         *asynq.ServeMux
	sqlDB       *sql.DB
}

// Worker represents a worker application with all its dependencies
type Worker struct {
	server *Server
}

// NewWorker creates a fully configured worker with all dependencies
func NewWorker(logger *slog.Logger) (*Worker, error) {
	logger.Info("Initializing worker dependencies...")

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
	mp := email.NewEmailProvider(
		os.Getenv(config.ENV_KEY_SMTP_HOST),
		os.Getenv(config.ENV_KEY_SMTP_USERNAME),
		os.Getenv(config.ENV_KEY_SMTP_PASSWORD),
		os.Getenv(config.ENV_KEY_SMTP_PORT),
	)

	// Workers only consume, so no token provider and no queue client.
	uc := usecase.New(repo, fsp, mp, nil, nil)

	redisAddr := fmt.Sprintf("%s:%s",
		os.Getenv(config.ENV_KEY_REDIS_HOST),
		os.Getenv(config.ENV_KEY_REDIS_PORT),
	)
	redisPassword := os.Getenv(config.ENV_KEY_REDIS_PASSWORD)

	workerConcurrency := 10
	if wc := os.Getenv(config.ENV_KEY_WORKER_CONCURRENCY); wc != "" {
		if n, err := strconv.Atoi(wc); err == nil && n > 0 {
			workerConcurrency = n
		}
	}

	asynqServer := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
		},
		asynq.Config{
			Concurrency: workerConcurrency,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	mux := asynq.NewServeMux()

	ownerEmail := os.Getenv(config.ENV_KEY_CONTACT_EMAIL)
	if ownerEmail == "" {
		ownerEmail = os.Getenv(config.ENV_KEY_SMTP_USERNAME)
	}

	h := handlers.NewHandlers(uc, ownerEmail)

	// Register task handlers - one line per task type
	mux.HandleFunc(TaskNotifyContact, h.HandleContactNotification)

	logger.Info("Worker registered handlers:", slog.String("task", TaskNotifyContact))

	server := &Server{
		asynqServer: asynqServer,
		mux:         mux,
		sqlDB:       sqlDB,
	}

	return &Worker{
		server: server,
	}, nil
}

// Start starts the worker server
func (w *Worker) Start() error {
	slog.Info("Worker started successfully")
	return w.server.asynqServer.Start(w.server.mux)
}

// Stop stops the worker server gracefully
func (w *Worker) Stop() {
	slog.Info("Stopping worker...")
	w.server.asynqServer.Shutdown()

	if w.server.sqlDB != nil {
		if err := w.server.sqlDB.Close(); err != nil {
			slog.Error("Error closing database", slog.String("err", err.Error()))
		}
	}
}
