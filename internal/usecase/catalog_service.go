package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopbot/backend/internal/domain"
	"github.com/shopbot/backend/internal/platform/logger"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	DefaultLimit       int
	MaxLimit           int
	Vocabulary         *Vocabulary
	EnableDebugLogging bool
}

// catalogSnapshot is an immutable view of the catalog. Reloads swap in a new one.
type catalogSnapshot struct {
	products []domain.Product
	version  uint64
}

// CatalogService answers product searches against the in-memory catalog
type CatalogService struct {
	repo            domain.CatalogRepository
	cache           domain.CacheRepository
	matchingService *MatchingService
	snapshot        atomic.Pointer[catalogSnapshot]
	loadMu          sync.Mutex // orders version assignment with the snapshot swap
	version         uint64
	cacheTTL        time.Duration
	defaultLimit    int
	maxLimit        int
	log             *logger.Logger
}

// NewCatalogService creates a new catalog service with dependencies.
// cache may be nil, in which case results are never cached.
func NewCatalogService(
	repo domain.CatalogRepository,
	cache domain.CacheRepository,
	log *logger.Logger,
	config CatalogServiceConfig,
) *CatalogService {
	if log == nil {
		log = logger.Nop()
	}

	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	defaultLimit := config.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = DefaultResultLimit
	}

	maxLimit := config.MaxLimit
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}

	s := &CatalogService{
		repo:  repo,
		cache: cache,
		matchingService: NewMatchingService(MatchConfig{
			Vocabulary:         config.Vocabulary,
			EnableDebugLogging: config.EnableDebugLogging,
			Logger:             log,
		}),
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log.With("component", "catalog"),
	}
	s.snapshot.Store(&catalogSnapshot{})
	return s
}

// Reload replaces the in-memory catalog with the repository's current contents
func (s *CatalogService) Reload(ctx context.Context) error {
	if s.repo == nil {
		return fmt.Errorf("%w: no catalog repository configured", domain.ErrCatalogUnavailable)
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	version := s.Load(products)
	s.log.Info("catalog loaded", "products", len(products), "version", version)
	return nil
}

// Load installs products as the current catalog and returns the new version.
// The slice is copied; in-flight searches keep the snapshot they started with.
func (s *CatalogService) Load(products []domain.Product) uint64 {
	owned := make([]domain.Product, len(products))
	copy(owned, products)

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.version++
	s.snapshot.Store(&catalogSnapshot{products: owned, version: s.version})
	return s.version
}

// Products returns the current catalog snapshot. Callers must not modify it.
func (s *CatalogService) Products() []domain.Product {
	return s.snapshot.Load().products
}

// DefaultLimit is the result count used when a caller does not specify one
func (s *CatalogService) DefaultLimit() int {
	return s.defaultLimit
}

// MaxLimit is the largest result count a caller may request
func (s *CatalogService) MaxLimit() int {
	return s.maxLimit
}

// Search returns up to limit products relevant to query, best first.
// Limits above MaxLimit are clamped; a limit of zero returns nothing.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidRequest)
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := s.snapshot.Load()
	cacheKey := generateCacheKey(snap.version, limit, query)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached, nil
	}

	start := time.Now()
	products := s.matchingService.Search(query, snap.products, limit)

	s.log.Info("search completed",
		"query", query,
		"results", len(products),
		"catalog_version", snap.version,
		"duration_ms", time.Since(start).Milliseconds())

	if err := s.setInCache(ctx, cacheKey, products); err != nil {
		// Caching is best effort
		s.log.Warn("failed to cache search result", "key", cacheKey, "error", err)
	}

	return products, nil
}

// Stats reports the number of stored products alongside the size and version of
// the loaded snapshot. Without a repository the snapshot size is reported.
func (s *CatalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.snapshot.Load()

	total := len(snap.products)
	if s.repo != nil {
		count, err := s.repo.CountProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		total = count
	}

	return &domain.CatalogStats{
		TotalProducts:  total,
		LoadedProducts: len(snap.products),
		Version:        snap.version,
		Status:         "ok",
	}, nil
}

// Ping checks that the catalog repository is reachable
func (s *CatalogService) Ping(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

// generateCacheKey creates a cache key for a search.
// Format: "search:v{catalog_version}:{limit}:{normalized_query}"
func generateCacheKey(version uint64, limit int, query string) string {
	normalized := strings.Join(strings.Fields(normalizeText(query)), " ")
	return fmt.Sprintf("search:v%d:%d:%s", version, limit, normalized)
}

// getFromCache retrieves a previously computed search result
func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.Product, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return products, nil
}

// setInCache stores a search result
func (s *CatalogService) setInCache(ctx context.Context, key string, products []domain.Product) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
