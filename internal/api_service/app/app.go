package app

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/kamaal111/forex-api/deploy/config"
	"github.com/kamaal111/forex-api/internal/api_service/adapter/storage/firestore"
	"github.com/kamaal111/forex-api/internal/api_service/adapter/storage/postgres"
	"github.com/kamaal111/forex-api/internal/api_service/ports/http/public"
	"github.com/kamaal111/forex-api/internal/api_service/service"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Start(ctx context.Context) <-chan struct{} {
	a.initLogger()
	slog.Info("Logger initialized")

	storage, closer := a.initStorage(ctx)
	slog.Info("Storage initialized", "backend", a.cfg.Storage.Backend)

	apiService := a.initService(storage)
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, apiService, a.cfg)
	slog.Info("server started", "port", a.cfg.HTTPServer.Port)

	done := make(chan struct{})

	go func() {
		<-serverDone

		if err := closer.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}

		close(done)
	}()

	return done
}

func (a *App) initLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (a *App) initStorage(ctx context.Context) (service.Storage, io.Closer) {
	switch a.cfg.Storage.Backend {
	case "postgres":
		pgStorage, err := postgres.New(ctx, a.cfg)
		if err != nil {
			log.Fatalln("Failed to initialize PostgresSQL storage", "error", err)
		}

		return pgStorage, pgStorage
	case "firestore":
		if a.cfg.Firestore.ProjectID == "" {
			log.Fatalln("GCP_PROJECT_ID not defined in environment")
		}

		fsStorage, err := firestore.New(ctx, a.cfg)
		if err != nil {
			log.Fatalln("Failed to initialize Firestore storage", "error", err)
		}

		return fsStorage, fsStorage
	default:
		log.Fatalln("Unknown storage backend", "backend", a.cfg.Storage.Backend)
		return nil, nil
	}
}

func (a *App) initService(storage service.Storage) *service.Service {
	return service.NewService(storage, a.cfg)
}
