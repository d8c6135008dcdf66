package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Database DatabaseConfig
	Blob     BlobConfig
	Server   ServerConfig
	Upload   UploadConfig
	Auth     AuthConfig
	NATS     NATSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// BlobConfig selects where file bytes live. Driver is "local" (a
// directory on disk) or "minio".
type BlobConfig struct {
	Driver    string
	UploadDir string
	MinIO     MinIOConfig
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type ServerConfig struct {
	Port       string
	CORSOrigin string
}

type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
}

// AuthConfig configures token verification. When IssuerURL is set the
// OIDC verifier is used; otherwise JWTSecret selects the HMAC verifier
// for local development.
type AuthConfig struct {
	IssuerURL string
	JWTSecret string
}

// NATSConfig configures the upload notification channel. An empty URL
// disables notifications.
type NATSConfig struct {
	URL     string
	Subject string
}

const defaultMaxFileSize = 50 << 20 // 50 MiB

var defaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "fileuser"),
			Password: getEnv("DB_PASSWORD", "filepassword"),
			DBName:   getEnv("DB_NAME", "filemanager"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Blob: BlobConfig{
			Driver:    getEnv("BLOB_DRIVER", "local"),
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
			MinIO: MinIOConfig{
				Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
				BucketName: getEnv("MINIO_BUCKET", "files"),
				UseSSL:     getEnv("MINIO_USE_SSL", "false") == "true",
			},
		},
		Server: ServerConfig{
			Port:       getEnv("SERVER_PORT", "8080"),
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
		Upload: UploadConfig{
			MaxFileSize:  getEnvInt64("MAX_FILE_SIZE", defaultMaxFileSize),
			AllowedTypes: getEnvList("ALLOWED_FILE_TYPES", defaultAllowedTypes),
		},
		Auth: AuthConfig{
			IssuerURL: getEnv("OIDC_ISSUER_URL", ""),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", ""),
			Subject: getEnv("NATS_SUBJECT", "files.uploaded"),
		},
	}
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
