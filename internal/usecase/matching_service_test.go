package usecase

import (
	"reflect"
	"sync"
	"testing"

	"github.com/shopbot/backend/internal/domain"
)

// testCatalog is a small slice of the electronics catalog
var testCatalog = []domain.Product{
	{ID: 1, Name: "گوشی سامسونگ Galaxy S23", Description: "گوشی پرچمدار سامسونگ با پردازنده Snapdragon 8 Gen 2", Price: 35000000},
	{ID: 2, Name: "گوشی اپل iPhone 14 Pro", Description: "آیفون پرچمدار با تراشه A16 Bionic", Price: 55000000},
	{ID: 3, Name: "گوشی شیائومی Redmi Note 12", Description: "گوشی میان‌رده با پردازنده Snapdragon 685", Price: 8500000},
	{ID: 4, Name: "لپ‌تاپ MacBook Air M2", Description: "لپ‌تاپ اپل با تراشه M2", Price: 52000000},
	{ID: 5, Name: "تبلت Samsung Galaxy Tab S9", Description: "تبلت اندروید پرچمدار با صفحه نمایش 11 اینچ AMOLED", Price: 32000000},
	{ID: 6, Name: "شارژر Samsung 45W Super Fast", Description: "شارژر سریع سامسونگ با کابل USB-C", Price: 1200000},
	{ID: 7, Name: "قاب محافظ Spigen Ultra Hybrid", Description: "قاب شفاف محافظ برای گوشی‌های مختلف", Price: 450000},
	{ID: 8, Name: "کابل USB-C Anker", Description: "کابل شارژ مناسب برای گوشی و تبلت", Price: 650000},
	{ID: 9, Name: "لپ‌تاپ Dell XPS 13", Description: "لپ‌تاپ نازک و سبک با پردازنده Intel Core i7", Price: 45000000},
}

func productIDs(products []domain.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestNewMatchingService(t *testing.T) {
	t.Run("uses built-in vocabulary by default", func(t *testing.T) {
		svc := NewMatchingService(MatchConfig{})
		if svc.classifier.vocabulary != DefaultVocabulary() {
			t.Error("expected default vocabulary")
		}
		if svc.log == nil {
			t.Error("expected a non-nil logger")
		}
	})

	t.Run("keeps custom vocabulary", func(t *testing.T) {
		v, err := NewVocabulary(map[string][]string{"nokia": {"nokia"}}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		svc := NewMatchingService(MatchConfig{Vocabulary: v, EnableDebugLogging: true})
		if svc.classifier.vocabulary != v {
			t.Error("expected custom vocabulary")
		}
		if !svc.enableDebugLogging {
			t.Error("expected debug logging enabled")
		}
	})
}

func TestSearch(t *testing.T) {
	svc := NewMatchingService(MatchConfig{})

	t.Run("brand in name", func(t *testing.T) {
		catalog := []domain.Product{testCatalog[0]}
		ranked := svc.Rank("سامسونگ", catalog, 5)
		if len(ranked) != 1 {
			t.Fatalf("got %d results, want 1", len(ranked))
		}
		if ranked[0].Score != 50 || ranked[0].BrandHits != 1 {
			t.Errorf("score = %d, brand hits = %d, want 50 and 1", ranked[0].Score, ranked[0].BrandHits)
		}
	})

	t.Run("brand query is a hard filter", func(t *testing.T) {
		got := productIDs(svc.Search("سامسونگ", testCatalog, 10))
		// The charger hits both spellings (50 + 20 + 2*10); S23 and the tablet hit one each
		want := []int64{6, 1, 5}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ids = %v, want %v", got, want)
		}
	})

	t.Run("stop word is ignored and category ranks by weight", func(t *testing.T) {
		got := productIDs(svc.Search("قیمت گوشی", testCatalog, 5))
		// Phones match in the name (5), the cable only in its description (2).
		// The case says "گوشی‌های", a different word.
		want := []int64{1, 2, 3, 8}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ids = %v, want %v", got, want)
		}
	})

	t.Run("brand and category must both match", func(t *testing.T) {
		ranked := svc.Rank("گوشی سامسونگ", testCatalog, 5)
		if len(ranked) != 1 || ranked[0].Product.ID != 1 {
			t.Fatalf("ids = %v, want [1]", ranked)
		}
		// 50 brand + 5 category + 2*10 multi-keyword + 30 brand/category
		if ranked[0].Score != 105 {
			t.Errorf("score = %d, want 105", ranked[0].Score)
		}
	})

	t.Run("two brand groups", func(t *testing.T) {
		catalog := []domain.Product{
			{ID: 10, Name: "گوشی iPhone 13"},
			{ID: 11, Name: "لپ‌تاپ MacBook Air"},
			{ID: 12, Name: "باندل iPhone و MacBook"},
		}
		ranked := svc.Rank("آیفون مک", catalog, 5)
		if len(ranked) != 3 {
			t.Fatalf("got %d results, want 3", len(ranked))
		}
		if ranked[0].Product.ID != 12 || ranked[0].Score != 120 {
			t.Errorf("top = %d (score %d), want 12 (score 120)", ranked[0].Product.ID, ranked[0].Score)
		}
		for _, r := range ranked[1:] {
			if r.Score != 50 {
				t.Errorf("product %d score = %d, want 50 without bonus", r.Product.ID, r.Score)
			}
		}
		if ranked[1].Product.ID != 10 || ranked[2].Product.ID != 11 {
			t.Error("equal scores should keep catalog order")
		}
	})

	t.Run("no substring match inside compounds", func(t *testing.T) {
		catalog := []domain.Product{
			{ID: 20, Name: "می‌خواهم گوشی جدید"},
			{ID: 21, Name: "گوشی شیائومی Mi 13 Pro"},
		}
		if got := svc.Search("می", catalog, 5); len(got) != 0 {
			t.Errorf("ids = %v, want none", productIDs(got))
		}
	})

	t.Run("name match counts once at name weight", func(t *testing.T) {
		catalog := []domain.Product{
			{ID: 30, Name: "pro stand", Description: "pro stand for pro users"},
		}
		ranked := svc.Rank("pro", catalog, 5)
		if len(ranked) != 1 || ranked[0].Score != 15 || ranked[0].OtherHits != 1 {
			t.Errorf("ranked = %+v, want a single hit worth 15", ranked)
		}
	})

	t.Run("multi keyword bonus", func(t *testing.T) {
		ranked := svc.Rank("iphone pro", testCatalog, 5)
		if len(ranked) != 1 || ranked[0].Product.ID != 2 {
			t.Fatalf("ranked = %+v, want product 2", ranked)
		}
		// iphone in name 50, آیفون in description 20, pro in name 15, 3 hits * 10
		if ranked[0].Score != 115 {
			t.Errorf("score = %d, want 115", ranked[0].Score)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		got := svc.Search("گوشی", testCatalog, 2)
		if !reflect.DeepEqual(productIDs(got), []int64{1, 2}) {
			t.Errorf("ids = %v, want [1 2]", productIDs(got))
		}
	})

	t.Run("unknown words return nothing", func(t *testing.T) {
		if got := svc.Search("یخچال", testCatalog, 5); len(got) != 0 {
			t.Errorf("ids = %v, want none", productIDs(got))
		}
	})
}

func TestSearchEmptyResults(t *testing.T) {
	svc := NewMatchingService(MatchConfig{})

	tests := []struct {
		name    string
		query   string
		catalog []domain.Product
		limit   int
	}{
		{"empty query", "", testCatalog, 5},
		{"stop words only", "قیمت چقدره برای", testCatalog, 5},
		{"single characters only", "a b و", testCatalog, 5},
		{"empty catalog", "گوشی", nil, 5},
		{"zero limit", "گوشی", testCatalog, 0},
		{"negative limit", "گوشی", testCatalog, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.query, tt.catalog, tt.limit)
			if got == nil {
				t.Fatal("Search returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("got %d results, want 0", len(got))
			}
		})
	}
}

func TestSearchProperties(t *testing.T) {
	svc := NewMatchingService(MatchConfig{})
	queries := []string{
		"گوشی", "سامسونگ", "گوشی سامسونگ", "apple", "لپ‌تاپ اپل", "iphone pro",
		"snapdragon", "تبلت samsung", "usb-c", "قیمت گوشی شیائومی",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			for _, limit := range []int{1, 3, 20} {
				results := svc.Search(query, testCatalog, limit)
				if len(results) > limit {
					t.Errorf("limit %d: got %d results", limit, len(results))
				}

				classified := svc.Classify(query)
				prev := -1
				for _, p := range results {
					scored, ok := svc.Score(query, p)
					if !ok || scored.Score <= 0 {
						t.Errorf("product %d returned but not a candidate (score %d)", p.ID, scored.Score)
					}
					if prev >= 0 && scored.Score > prev {
						t.Errorf("results not sorted: %d after %d", scored.Score, prev)
					}
					prev = scored.Score
					if classified.HasBrand() && scored.BrandHits == 0 {
						t.Errorf("product %d has no brand hit", p.ID)
					}
					if classified.HasBrand() && classified.HasCategory() && scored.CategoryHits == 0 {
						t.Errorf("product %d has no category hit", p.ID)
					}
				}

				again := svc.Search(query, testCatalog, limit)
				if !reflect.DeepEqual(results, again) {
					t.Errorf("limit %d: search is not idempotent", limit)
				}
			}
		})
	}
}

func TestSearchConcurrent(t *testing.T) {
	svc := NewMatchingService(MatchConfig{})
	want := productIDs(svc.Search("گوشی", testCatalog, 5))

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := productIDs(svc.Search("گوشی", testCatalog, 5))
			if !reflect.DeepEqual(got, want) {
				errs <- "concurrent search returned a different ranking"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
