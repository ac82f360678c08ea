package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"genaizone/internal/completion"
	"genaizone/internal/completion/openai"
	"genaizone/internal/config"
	"genaizone/internal/handler"
	"genaizone/internal/parser"
	"genaizone/internal/port"
	"genaizone/internal/router"
	"genaizone/internal/service"
	"genaizone/internal/session"
	localstorage "genaizone/internal/storage/local"
	s3storage "genaizone/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	storage, err := newStorage(cfg)
	if err != nil {
		return err
	}

	// Initialize completion client
	completer, err := openai.NewClient(&cfg.OpenAI)
	if err != nil {
		return fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	// Initialize services
	sessions := session.NewStore(cfg.Session.TTL)
	normalizer := parser.NewNormalizer(parser.NewDefaultRegistry())
	fanOut := completion.NewFanOut(completer, cfg.Completion.Concurrency)

	uploadSvc := service.NewUploadService(sessions, storage, &cfg.Upload)
	comparisonSvc := service.NewComparisonService(sessions, storage, normalizer, fanOut)

	// Initialize handlers
	uploadH := handler.NewUploadHandler(uploadSvc)
	promptH := handler.NewPromptHandler(comparisonSvc)
	modelH := handler.NewModelHandler()
	healthH := handler.NewHealthHandler(&cfg.Server)

	// Setup router
	r := router.Setup(cfg, uploadH, promptH, modelH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the session janitor
	var wg sync.WaitGroup
	janitor := service.NewSessionJanitor(uploadSvc, cfg.Session.SweepInterval)
	wg.Add(1)
	go func() {
		defer wg.Done()
		janitor.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (base path %q, deployment %s)",
			cfg.Server.Port, cfg.Server.BasePath, cfg.Server.DeploymentLabel())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		stop()
		wg.Wait()
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	wg.Wait()
	return nil
}

func newStorage(cfg *config.Config) (port.ObjectStorage, error) {
	switch cfg.Storage.Provider {
	case "", "local":
		storage, err := localstorage.NewLocalStorage(cfg.Upload.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		log.Printf("Storage: local (%s)", cfg.Upload.Dir)
		return storage, nil
	case "s3":
		// S3 objects are staged under the upload dir while they are parsed.
		tempDir := filepath.Join(cfg.Upload.Dir, "staging")
		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create staging dir: %w", err)
		}
		storage, err := s3storage.NewS3Client(&cfg.Storage.S3, tempDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		log.Printf("Storage: s3 (bucket %s)", cfg.Storage.S3.Bucket)
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q; use local or s3", cfg.Storage.Provider)
	}
}
