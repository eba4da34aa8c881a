// Package app wires configuration, storage, services and the HTTP router.
// It is shared by cmd/api and cmd/packlist so both binaries open the same
// store the same way. No business logic belongs here.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/adventure-checklist/internal/config"
	"github.com/pkordes/adventure-checklist/internal/handler"
	"github.com/pkordes/adventure-checklist/internal/kv"
	"github.com/pkordes/adventure-checklist/internal/middleware"
	"github.com/pkordes/adventure-checklist/internal/photo"
	"github.com/pkordes/adventure-checklist/internal/repo"
	"github.com/pkordes/adventure-checklist/internal/service"
	"github.com/pkordes/adventure-checklist/migrations"
)

// Store is an opened blob store and the function that releases it.
type Store struct {
	kv.Store
	Close func() error
}

// OpenStore opens the backend selected by cfg.StoreDriver and verifies it is
// reachable. SQL backends are migrated before the store is returned.
func OpenStore(ctx context.Context, cfg config.Config, log *slog.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on exit")
		return Store{Store: kv.NewMemoryStore(), Close: func() error { return nil }}, nil

	case config.DriverSQLite, "":
		s, err := kv.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return Store{}, fmt.Errorf("app.OpenStore: %w", err)
		}
		log.Info("sqlite store ready", "path", cfg.SQLitePath)
		return Store{Store: s, Close: s.Close}, nil

	case config.DriverPostgres:
		// pgxpool.New does not open connections immediately; Ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return Store{}, fmt.Errorf("app.OpenStore: create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return Store{}, fmt.Errorf("app.OpenStore: connect to database: %w", err)
		}
		// goose needs database/sql; borrow a connection from the pool.
		sqlDB := stdlib.OpenDBFromPool(pool)
		err = migrations.Up(ctx, sqlDB, goose.DialectPostgres)
		sqlDB.Close()
		if err != nil {
			pool.Close()
			return Store{}, fmt.Errorf("app.OpenStore: %w", err)
		}
		log.Info("database connection established")
		return Store{Store: kv.NewPostgresStore(pool), Close: func() error { pool.Close(); return nil }}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return Store{}, fmt.Errorf("app.OpenStore: connect to redis: %w", err)
		}
		log.Info("redis store ready", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return Store{Store: kv.NewRedisStore(client, cfg.RedisPrefix), Close: client.Close}, nil
	}
	return Store{}, errors.New("app.OpenStore: unsupported store driver " + cfg.StoreDriver)
}

// Services bundles the application services built over one store.
type Services struct {
	Adventures *service.AdventureService
	Templates  *service.TemplateService
	Checklists *service.ChecklistService
	Export     *service.ExportService
}

// NewServices builds the repositories and services over store. The two
// record collections share the store under their own keys.
func NewServices(store kv.Store, log *slog.Logger) Services {
	adventures := repo.NewAdventureRepo(store, log)
	templates := repo.NewTemplateRepo(store, log)
	return Services{
		Adventures: service.NewAdventureService(adventures, templates, log),
		Templates:  service.NewTemplateService(templates, log),
		Checklists: service.NewChecklistService(adventures, templates),
		Export:     service.NewExportService(adventures),
	}
}

// NewPhotoService builds the destination photo lookup from cfg.
func NewPhotoService(cfg config.Config, log *slog.Logger) *photo.Service {
	return photo.New(photo.Config{
		BaseURL:   cfg.UnsplashBaseURL,
		AccessKey: cfg.UnsplashAccessKey,
	}, log)
}

// NewRouter returns the complete HTTP handler.
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
// RequestID generates a unique trace ID per request.
// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
// SlogLogger writes one structured JSON log line per request.
// Recoverer catches panics and returns HTTP 500 instead of crashing.
func NewRouter(cfg config.Config, svc Services, photos handler.PhotoServicer, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(svc.Adventures, svc.Templates, svc.Checklists, svc.Export, photos)
	r.Mount("/", srv.Routes())
	return r
}
