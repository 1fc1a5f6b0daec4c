package usecase

import (
	"strings"
)

// ClassifiedQuery is a query split into the semantic roles of its tokens.
// Each list is deduplicated and keeps first-seen order.
type ClassifiedQuery struct {
	BrandTokens    []string
	CategoryTokens []string
	OtherTokens    []string
}

// IsEmpty reports whether no token survived stop-word removal
func (q ClassifiedQuery) IsEmpty() bool {
	return len(q.BrandTokens) == 0 && len(q.CategoryTokens) == 0 && len(q.OtherTokens) == 0
}

// HasBrand reports whether the query names at least one brand
func (q ClassifiedQuery) HasBrand() bool {
	return len(q.BrandTokens) > 0
}

// HasCategory reports whether the query names at least one category
func (q ClassifiedQuery) HasCategory() bool {
	return len(q.CategoryTokens) > 0
}

// QueryClassifier turns free-text queries into ClassifiedQuery values
type QueryClassifier struct {
	vocabulary *Vocabulary
}

// NewQueryClassifier creates a classifier over the given tables.
// A nil vocabulary selects the built-in tables.
func NewQueryClassifier(vocabulary *Vocabulary) *QueryClassifier {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary()
	}
	return &QueryClassifier{vocabulary: vocabulary}
}

// Tokenize normalizes the query and returns its meaningful tokens:
// single-character tokens and stop words are dropped.
func (c *QueryClassifier) Tokenize(query string) []string {
	words := strings.Fields(normalizeText(query))

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if isShortToken(word) {
			continue
		}
		if c.vocabulary.IsStopWord(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Classify assigns every token of the query to the brand, category or other class.
// A brand token contributes all spellings of its brand so that any of them can
// later count as a brand hit.
func (c *QueryClassifier) Classify(query string) ClassifiedQuery {
	var q ClassifiedQuery
	brands := newTokenSet()
	categories := newTokenSet()
	others := newTokenSet()

	for _, token := range c.Tokenize(query) {
		if variants := c.vocabulary.BrandVariants(token); variants != nil {
			for _, variant := range variants {
				brands.add(variant)
			}
			continue
		}
		if c.vocabulary.IsCategory(token) {
			categories.add(token)
			continue
		}
		others.add(token)
	}

	q.BrandTokens = brands.items
	q.CategoryTokens = categories.items
	q.OtherTokens = others.items
	return q
}

// tokenSet is an insertion-ordered set of strings
type tokenSet struct {
	seen  map[string]bool
	items []string
}

func newTokenSet() *tokenSet {
	return &tokenSet{seen: make(map[string]bool)}
}

func (s *tokenSet) add(token string) {
	if s.seen[token] {
		return
	}
	s.seen[token] = true
	s.items = append(s.items, token)
}
