package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopbot/backend/config"
	httpDelivery "github.com/shopbot/backend/internal/delivery/http"
	"github.com/shopbot/backend/internal/domain"
	"github.com/shopbot/backend/internal/infrastructure/cache"
	"github.com/shopbot/backend/internal/infrastructure/sqlite"
	"github.com/shopbot/backend/internal/platform/logger"
	"github.com/shopbot/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Search.DebugLogging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting shopbot backend",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Type,
		"db_path", cfg.Catalog.DBPath)

	// Catalog store
	store, err := sqlite.Open(cfg.Catalog.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Catalog.SeedIfEmpty {
		seeded, err := store.SeedIfEmpty(ctx, sqlite.SampleProducts())
		if err != nil {
			return err
		}
		if seeded > 0 {
			log.Info("seeded empty catalog", "products", seeded)
		}
	}

	vocabulary := usecase.DefaultVocabulary()
	if cfg.Search.VocabularyFile != "" {
		vocabulary, err = usecase.LoadVocabulary(cfg.Search.VocabularyFile)
		if err != nil {
			return err
		}
		brands, categories, stopWords := vocabulary.Sizes()
		log.Info("vocabulary loaded",
			"file", cfg.Search.VocabularyFile,
			"brands", brands,
			"categories", categories,
			"stop_words", stopWords)
	}

	resultCache, closeCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer closeCache()

	catalogService := usecase.NewCatalogService(store, resultCache, log, usecase.CatalogServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		DefaultLimit:       cfg.Search.DefaultLimit,
		MaxLimit:           cfg.Search.MaxLimit,
		Vocabulary:         vocabulary,
		EnableDebugLogging: cfg.Search.DebugLogging,
	})
	if err := catalogService.Reload(ctx); err != nil {
		return err
	}

	handler := httpDelivery.NewHandler(catalogService, cfg.Message.MaxLength, log)
	router, err := httpDelivery.SetupRouter(cfg, handler, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache builds the configured search result cache
func newCache(ctx context.Context, cfg config.CacheConfig) (domain.CacheRepository, func(), error) {
	switch cfg.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisCache, func() { _ = redisCache.Close() }, nil
	default:
		memoryCache := cache.NewMemoryCache()
		return memoryCache, func() { _ = memoryCache.Close() }, nil
	}
}
