package usecase

import (
	"slices"

	"github.com/shopbot/backend/internal/domain"
	"github.com/shopbot/backend/internal/platform/logger"
)

// fieldWeights is the score a keyword earns for a whole-word hit in a product's
// name or, failing that, its description
type fieldWeights struct {
	name        int
	description int
}

// Token weights per class. A name hit always outweighs a description hit.
var (
	brandWeights    = fieldWeights{name: 50, description: 20}
	otherWeights    = fieldWeights{name: 15, description: 5}
	categoryWeights = fieldWeights{name: 5, description: 2}
)

// Scoring bonuses
const (
	multiKeywordBonus  = 10 // Per matched keyword, once more than one keyword matched
	brandCategoryBonus = 30 // Product matched both a brand and a category keyword
)

// DefaultResultLimit is the number of products returned when the caller does not ask
// for a specific count
const DefaultResultLimit = 5

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	Vocabulary         *Vocabulary
	EnableDebugLogging bool
	Logger             *logger.Logger
}

// MatchingService ranks catalog products against free-text queries.
// It holds no mutable state and may be shared between goroutines.
type MatchingService struct {
	classifier         *QueryClassifier
	enableDebugLogging bool
	log                *logger.Logger
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	log := config.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &MatchingService{
		classifier:         NewQueryClassifier(config.Vocabulary),
		enableDebugLogging: config.EnableDebugLogging,
		log:                log.With("component", "matcher"),
	}
}

// Classify exposes the token classification of a query
func (s *MatchingService) Classify(query string) ClassifiedQuery {
	return s.classifier.Classify(query)
}

// Search returns at most limit catalog products relevant to query, best first.
// It never fails: an empty query, an all-stop-word query, an empty catalog or a
// non-positive limit all yield an empty result.
func (s *MatchingService) Search(query string, catalog []domain.Product, limit int) []domain.Product {
	ranked := s.Rank(query, catalog, limit)
	if len(ranked) == 0 {
		return []domain.Product{}
	}

	products := make([]domain.Product, len(ranked))
	for i, scored := range ranked {
		products[i] = scored.Product
	}
	return products
}

// Rank is Search with the scores and per-class hit counts kept
func (s *MatchingService) Rank(query string, catalog []domain.Product, limit int) []domain.ScoredProduct {
	if limit <= 0 || len(catalog) == 0 {
		return nil
	}

	classified := s.classifier.Classify(query)
	if classified.IsEmpty() {
		if s.enableDebugLogging {
			s.log.Debug("query has no searchable tokens", "query", query)
		}
		return nil
	}

	compiled := compileQuery(classified)

	if s.enableDebugLogging {
		s.log.Debug("classified query",
			"query", query,
			"brand", classified.BrandTokens,
			"category", classified.CategoryTokens,
			"other", classified.OtherTokens)
	}

	candidates := make([]domain.ScoredProduct, 0, len(catalog))
	for _, product := range catalog {
		scored, ok := compiled.score(product)
		if !ok {
			continue
		}
		if s.enableDebugLogging {
			s.log.Debug("candidate",
				"id", product.ID,
				"name", product.Name,
				"score", scored.Score,
				"brand_hits", scored.BrandHits,
				"other_hits", scored.OtherHits,
				"category_hits", scored.CategoryHits)
		}
		candidates = append(candidates, scored)
	}

	// Stable so equal scores keep catalog order
	slices.SortStableFunc(candidates, func(a, b domain.ScoredProduct) int {
		return b.Score - a.Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Score computes the relevance of a single product for query. The second result is
// false when an exclusion rule removes the product from the candidate pool.
func (s *MatchingService) Score(query string, product domain.Product) (domain.ScoredProduct, bool) {
	classified := s.classifier.Classify(query)
	if classified.IsEmpty() {
		return domain.ScoredProduct{Product: product}, false
	}
	return compileQuery(classified).score(product)
}

// compiledQuery holds the word patterns of one classified query
type compiledQuery struct {
	brands     []wordPattern
	others     []wordPattern
	categories []wordPattern
}

func compileQuery(q ClassifiedQuery) compiledQuery {
	return compiledQuery{
		brands:     compilePatterns(q.BrandTokens),
		others:     compilePatterns(q.OtherTokens),
		categories: compilePatterns(q.CategoryTokens),
	}
}

func compilePatterns(tokens []string) []wordPattern {
	patterns := make([]wordPattern, len(tokens))
	for i, token := range tokens {
		patterns[i] = newWordPattern(token)
	}
	return patterns
}

// score applies weights, exclusion rules and bonuses to one product
func (q compiledQuery) score(product domain.Product) (domain.ScoredProduct, bool) {
	name := normalizeText(product.Name)
	description := normalizeText(product.Description)

	brandScore, brandHits := tally(q.brands, brandWeights, name, description)
	otherScore, otherHits := tally(q.others, otherWeights, name, description)
	categoryScore, categoryHits := tally(q.categories, categoryWeights, name, description)

	result := domain.ScoredProduct{
		Product:      product,
		Score:        brandScore + otherScore + categoryScore,
		BrandHits:    brandHits,
		OtherHits:    otherHits,
		CategoryHits: categoryHits,
	}

	// A named brand is a hard filter
	if len(q.brands) > 0 && brandHits == 0 {
		return result, false
	}

	// Brand and category together must both be satisfied
	if len(q.brands) > 0 && len(q.categories) > 0 {
		if brandHits == 0 || categoryHits == 0 {
			return result, false
		}
	}

	totalMatched := brandHits + otherHits + categoryHits
	if totalMatched > 1 {
		result.Score += multiKeywordBonus * totalMatched
	}

	if brandHits > 0 && categoryHits > 0 {
		result.Score += brandCategoryBonus
	}

	if result.Score <= 0 {
		return result, false
	}
	return result, true
}

// tally scores each keyword once: at the name weight when it is in the name,
// otherwise at the description weight when it is in the description
func tally(patterns []wordPattern, weights fieldWeights, name, description string) (score, hits int) {
	for _, p := range patterns {
		if p.in(name) {
			score += weights.name
			hits++
		} else if p.in(description) {
			score += weights.description
			hits++
		}
	}
	return score, hits
}
