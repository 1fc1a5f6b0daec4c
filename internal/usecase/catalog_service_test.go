package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopbot/backend/internal/domain"
)

// mockCatalogRepository is a mock implementation of domain.CatalogRepository
type mockCatalogRepository struct {
	products []domain.Product
	listErr  error
	countErr error
	pingErr  error
	calls    int
}

func (m *mockCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.calls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func (m *mockCatalogRepository) CountProducts(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.products), nil
}

func (m *mockCatalogRepository) Ping(ctx context.Context) error {
	return m.pingErr
}

// mockCacheRepository is a mock implementation of domain.CacheRepository
type mockCacheRepository struct {
	data   map[string][]byte
	hits   int
	setErr error
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string][]byte)}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if value, ok := m.data[key]; ok {
		m.hits++
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func TestNewCatalogService(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		if svc.DefaultLimit() != DefaultResultLimit {
			t.Errorf("DefaultLimit = %d, want %d", svc.DefaultLimit(), DefaultResultLimit)
		}
		if svc.MaxLimit() != DefaultResultLimit {
			t.Errorf("MaxLimit = %d, want %d", svc.MaxLimit(), DefaultResultLimit)
		}
		if svc.cacheTTL != 10*time.Minute {
			t.Errorf("cacheTTL = %v, want 10m", svc.cacheTTL)
		}
		if len(svc.Products()) != 0 {
			t.Error("expected empty catalog before load")
		}
	})

	t.Run("keeps configured limits", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{DefaultLimit: 3, MaxLimit: 10})
		if svc.DefaultLimit() != 3 || svc.MaxLimit() != 10 {
			t.Errorf("limits = %d/%d, want 3/10", svc.DefaultLimit(), svc.MaxLimit())
		}
	})
}

func TestCatalogServiceReload(t *testing.T) {
	ctx := context.Background()

	t.Run("loads products from repository", func(t *testing.T) {
		repo := &mockCatalogRepository{products: testCatalog}
		svc := NewCatalogService(repo, nil, nil, CatalogServiceConfig{})

		if err := svc.Reload(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats, err := svc.Stats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalProducts != len(testCatalog) {
			t.Errorf("TotalProducts = %d, want %d", stats.TotalProducts, len(testCatalog))
		}
		if stats.Version != 1 {
			t.Errorf("Version = %d, want 1", stats.Version)
		}
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := &mockCatalogRepository{listErr: errors.New("disk gone")}
		svc := NewCatalogService(repo, nil, nil, CatalogServiceConfig{})

		err := svc.Reload(ctx)
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})

	t.Run("fails without repository", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		if err := svc.Reload(ctx); !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})

	t.Run("load copies the slice", func(t *testing.T) {
		products := []domain.Product{{ID: 1, Name: "گوشی سامسونگ"}}
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		svc.Load(products)

		products[0].Name = "changed"
		if svc.Products()[0].Name != "گوشی سامسونگ" {
			t.Error("catalog snapshot was mutated through the caller's slice")
		}
	})
}

func TestCatalogServiceLoad_Concurrent(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})

	const loaders = 50
	var wg sync.WaitGroup
	for i := 1; i <= loaders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			svc.Load(make([]domain.Product, n))
		}(i)
	}
	wg.Wait()

	// The snapshot installed last must carry the highest version handed out
	if got := svc.snapshot.Load().version; got != loaders {
		t.Errorf("snapshot version = %d, want %d", got, loaders)
	}
	if next := svc.Load(nil); next != loaders+1 {
		t.Errorf("next version = %d, want %d", next, loaders+1)
	}
}

func TestCatalogServiceStats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts stored products through the repository", func(t *testing.T) {
		repo := &mockCatalogRepository{products: testCatalog}
		svc := NewCatalogService(repo, nil, nil, CatalogServiceConfig{})
		svc.Load(testCatalog[:2])

		stats, err := svc.Stats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalProducts != len(testCatalog) {
			t.Errorf("TotalProducts = %d, want %d", stats.TotalProducts, len(testCatalog))
		}
		if stats.LoadedProducts != 2 {
			t.Errorf("LoadedProducts = %d, want 2", stats.LoadedProducts)
		}
	})

	t.Run("without repository reports the snapshot", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		svc.Load(testCatalog[:3])

		stats, err := svc.Stats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalProducts != 3 || stats.LoadedProducts != 3 {
			t.Errorf("stats = %+v, want 3 total and 3 loaded", stats)
		}
	})

	t.Run("wraps count errors", func(t *testing.T) {
		repo := &mockCatalogRepository{countErr: errors.New("database is locked")}
		svc := NewCatalogService(repo, nil, nil, CatalogServiceConfig{})

		if _, err := svc.Stats(ctx); !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})
}

func TestCatalogServiceSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("searches the loaded catalog", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		products, err := svc.Search(ctx, "گوشی سامسونگ", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 || products[0].ID != 1 {
			t.Errorf("ids = %v, want [1]", productIDs(products))
		}
	})

	t.Run("serves repeated queries from cache", func(t *testing.T) {
		cache := newMockCacheRepository()
		svc := NewCatalogService(nil, cache, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		first, err := svc.Search(ctx, "گوشی", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.Search(ctx, "  گوشی ", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("cache hits = %d, want 1", cache.hits)
		}
		if len(first) != len(second) {
			t.Errorf("cached result differs: %v vs %v", productIDs(first), productIDs(second))
		}
	})

	t.Run("reload invalidates cached results", func(t *testing.T) {
		cache := newMockCacheRepository()
		svc := NewCatalogService(nil, cache, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		if _, err := svc.Search(ctx, "گوشی", 5); err != nil {
			t.Fatal(err)
		}
		svc.Load(testCatalog[:1])

		products, err := svc.Search(ctx, "گوشی", 5)
		if err != nil {
			t.Fatal(err)
		}
		if cache.hits != 0 {
			t.Errorf("cache hits = %d, want 0 after reload", cache.hits)
		}
		if len(products) != 1 {
			t.Errorf("got %d products, want 1", len(products))
		}
	})

	t.Run("cache write failures do not fail the search", func(t *testing.T) {
		cache := newMockCacheRepository()
		cache.setErr = domain.ErrCacheUnavailable
		svc := NewCatalogService(nil, cache, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		products, err := svc.Search(ctx, "گوشی", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) == 0 {
			t.Error("expected results")
		}
	})

	t.Run("clamps limit to maximum", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{DefaultLimit: 2, MaxLimit: 3})
		svc.Load(testCatalog)

		products, err := svc.Search(ctx, "گوشی", 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 3 {
			t.Errorf("got %d products, want 3", len(products))
		}
	})

	t.Run("zero limit returns nothing", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		products, err := svc.Search(ctx, "گوشی", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 0 {
			t.Errorf("got %d products, want 0", len(products))
		}
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		_, err := svc.Search(ctx, "گوشی", -1)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := NewCatalogService(nil, nil, nil, CatalogServiceConfig{})
		svc.Load(testCatalog)

		_, err := svc.Search(ctx, "گوشی", 5)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestCatalogServicePing(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy repository", func(t *testing.T) {
		svc := NewCatalogService(&mockCatalogRepository{}, nil, nil, CatalogServiceConfig{})
		if err := svc.Ping(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unreachable repository", func(t *testing.T) {
		svc := NewCatalogService(&mockCatalogRepository{pingErr: errors.New("closed")}, nil, nil, CatalogServiceConfig{})
		if err := svc.Ping(ctx); !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})
}

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name    string
		version uint64
		limit   int
		query   string
		want    string
	}{
		{"basic", 1, 5, "گوشی", "search:v1:5:گوشی"},
		{"collapses whitespace and case", 2, 3, "  Galaxy   S23 ", "search:v2:3:galaxy s23"},
		{"empty query", 1, 5, "", "search:v1:5:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateCacheKey(tt.version, tt.limit, tt.query); got != tt.want {
				t.Errorf("generateCacheKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
