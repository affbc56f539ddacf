package config

// Header constants.
const (
	HEADER_KEY_AUTHORIZATION = "Authorization"
)

// Environment variable keys.
const (
	ENV_KEY_APP_ENV   = "APP_ENV"
	ENV_KEY_PORT      = "PORT"
	ENV_KEY_LOG_LEVEL = "LOG_LEVEL"

	ENV_KEY_DB_DATABASE             = "DB_DATABASE"
	ENV_KEY_DB_PASSWORD             = "DB_PASSWORD"
	ENV_KEY_DB_USER                 = "DB_USER"
	ENV_KEY_DB_PORT                 = "DB_PORT"
	ENV_KEY_DB_HOST                 = "DB_HOST"
	ENV_KEY_DB_MAX_OPEN_CONNECTIONS = "DB_MAX_OPEN_CONNECTIONS"

	ENV_KEY_JWT_SECRET      = "JWT_SECRET"
	ENV_KEY_ALLOWED_ORIGINS = "ALLOWED_ORIGINS"

	ENV_KEY_FILE_STORAGE_PROVIDER = "FILE_STORAGE_PROVIDER"
	ENV_KEY_UPLOAD_DIR            = "UPLOAD_DIR"
	ENV_KEY_PUBLIC_URL            = "PUBLIC_URL"

	ENV_KEY_MINIO_BUCKET      = "MINIO_BUCKET"
	ENV_KEY_MINIO_PUBLIC_PATH = "MINIO_PUBLIC_PATH"
	ENV_KEY_MINIO_ENDPOINT    = "MINIO_ENDPOINT"
	ENV_KEY_MINIO_ACCESS_KEY  = "MINIO_ACCESS_KEY"
	ENV_KEY_MINIO_SECRET_KEY  = "MINIO_SECRET_KEY"

	ENV_KEY_S3_BUCKET      = "S3_BUCKET"
	ENV_KEY_S3_PUBLIC_PATH = "S3_PUBLIC_PATH"

	ENV_KEY_SMTP_HOST     = "SMTP_HOST"
	ENV_KEY_SMTP_PORT     = "SMTP_PORT"
	ENV_KEY_SMTP_USERNAME = "SMTP_USERNAME"
	ENV_KEY_SMTP_PASSWORD = "SMTP_PASSWORD"
	ENV_KEY_CONTACT_EMAIL = "CONTACT_EMAIL"

	ENV_KEY_REDIS_HOST         = "REDIS_HOST"
	ENV_KEY_REDIS_PORT         = "REDIS_PORT"
	ENV_KEY_REDIS_PASSWORD     = "REDIS_PASSWORD"
	ENV_KEY_WORKER_CONCURRENCY = "WORKER_CONCURRENCY"
)

// Upload limits. The HTTP surface rejects request bodies above
// MAX_UPLOAD_SIZE before any file reaches the asset store.
const (
	MAX_UPLOAD_SIZE   = "10M"
	MAX_PROJECT_FILES = 5
)

// TOKEN_VALIDITY_HOURS is the lifetime of a minted credential.
const TOKEN_VALIDITY_HOURS = 24

type ContextKey uint

const (
	_ ContextKey = iota
	CTX_KEY_USER_ID
)
