package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mjal-at/file-service/internal/api"
	"github.com/mjal-at/file-service/internal/api/handlers"
	"github.com/mjal-at/file-service/internal/api/middleware"
	"github.com/mjal-at/file-service/internal/blob"
	"github.com/mjal-at/file-service/internal/configuration"
	"github.com/mjal-at/file-service/internal/services"
	"github.com/mjal-at/file-service/internal/storage"
	"github.com/mjal-at/file-service/internal/validation"
)

func main() {
	cfg := configuration.Load()
	ctx := context.Background()

	meta, err := storage.ConnectPostgres(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	notifier, natsConn := newNotifier(cfg)
	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	validator := validation.New(cfg.Upload.MaxFileSize, cfg.Upload.AllowedTypes)
	fileService := services.NewFileService(validator, blobs, meta, notifier)
	h := handlers.New(fileService, meta)

	setupGracefulShutdown(meta, natsConn)

	r := api.NewRouter(h, verifier, cfg.Server.CORSOrigin)
	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newBlobStore(ctx context.Context, cfg *configuration.Config) (blob.Store, error) {
	if cfg.Blob.Driver == "minio" {
		m := cfg.Blob.MinIO
		return blob.NewMinioStore(ctx, m.Endpoint, m.AccessKey, m.SecretKey, m.BucketName, m.UseSSL)
	}
	return blob.NewDiskStore(cfg.Blob.UploadDir)
}

func newNotifier(cfg *configuration.Config) (services.Notifier, *services.NATSNotifier) {
	if cfg.NATS.URL == "" {
		return services.NoopNotifier{}, nil
	}
	n, err := services.ConnectNATS(cfg.NATS.URL, cfg.NATS.Subject)
	if err != nil {
		// notifications are best effort; the service runs without them
		log.Printf("Warning: NATS unavailable, upload notifications disabled: %v", err)
		return services.NoopNotifier{}, nil
	}
	log.Println("Connected to NATS at", cfg.NATS.URL)
	return n, n
}

func newVerifier(ctx context.Context, cfg *configuration.Config) (middleware.Verifier, error) {
	if cfg.Auth.IssuerURL != "" {
		return middleware.NewOIDCVerifier(ctx, cfg.Auth.IssuerURL)
	}
	if cfg.Auth.JWTSecret != "" {
		log.Println("Warning: using HMAC token verification (development mode)")
		return middleware.NewHMACVerifier(cfg.Auth.JWTSecret), nil
	}
	log.Fatal("No token verifier configured: set OIDC_ISSUER_URL or JWT_SECRET")
	return nil, nil
}

func setupGracefulShutdown(meta *storage.PostgresStore, natsConn *services.NATSNotifier) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down gracefully...")
		if natsConn != nil {
			natsConn.Close()
		}
		if err := meta.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		os.Exit(0)
	}()
}
