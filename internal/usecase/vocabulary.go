package usecase

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/shopbot/backend/internal/domain"
)

// defaultBrands maps a canonical brand key to every spelling a customer may type for it.
// Variants must be unique across brands.
var defaultBrands = map[string][]string{
	"آیفون":       {"آیفون", "iphone", "ایفون"},
	"اپل":         {"اپل", "apple"},
	"مک":          {"مک", "mac", "macbook", "مکبوک", "بوک"},
	"سامسونگ":     {"سامسونگ", "samsung"},
	"گلکسی":       {"گلکسی", "galaxy"},
	"شیائومی":     {"شیائومی", "xiaomi", "شائومی"},
	"می":          {"می"},
	"ردمی":        {"ردمی", "redmi"},
	"دل":          {"dell", "دل"},
	"اچ پی":       {"hp", "اچ‌پی"},
	"لنوو":        {"lenovo", "لنوو"},
	"ایسوس":       {"asus", "ایسوس"},
	"ایسر":        {"acer", "ایسر"},
	"ام اس آی":    {"msi", "ام‌اس‌آی"},
	"مایکروسافت":  {"microsoft", "surface", "مایکروسافت"},
	"گوگل":        {"google", "pixel", "گوگل"},
	"سونی":        {"sony", "سونی"},
	"نیکون":       {"nikon", "نیکون"},
	"کانن":        {"canon", "کانن"},
}

// defaultCategories are product-type words ("phone", "laptop", ...)
var defaultCategories = []string{
	"گوشی", "موبایل", "تلفن",
	"لپتاپ", "لپ‌تاپ", "نوتبوک",
	"تبلت",
	"ساعت", "هدفون", "ایرپاد",
	"دوربین", "کنسول", "اسپیکر",
	"مانیتور", "کیبورد", "ماوس",
	"شارژر", "پاوربانک", "روتر",
	"هارد", "چاپگر", "اسکنر",
}

// defaultStopWords are interrogatives and filler words that carry no product intent
var defaultStopWords = []string{
	"قیمت", "چقدر", "چقدره", "چند", "چنده", "کدوم", "کدام",
	"میخوام", "میخواهم", "بگو", "بگید", "لطفا", "لطفاً",
	"چیه", "چیست", "هست", "است", "دارید", "داره", "دارد",
	"برای", "تو", "در", "با", "از", "به", "را", "رو",
}

// Vocabulary holds the brand, category and stop-word tables used to classify
// query tokens. It is immutable once built and safe for concurrent use.
type Vocabulary struct {
	brands     map[string][]string // canonical -> normalized variants
	brandIndex map[string]string   // normalized variant -> canonical
	categories map[string]bool
	stopWords  map[string]bool
}

// vocabularyFile is the YAML layout accepted by LoadVocabulary
type vocabularyFile struct {
	Brands     map[string][]string `yaml:"brands"`
	Categories []string            `yaml:"categories"`
	StopWords  []string            `yaml:"stop_words"`
}

var (
	defaultVocabularyOnce sync.Once
	defaultVocabulary     *Vocabulary
)

// DefaultVocabulary returns the built-in tables. They are built once per process.
func DefaultVocabulary() *Vocabulary {
	defaultVocabularyOnce.Do(func() {
		v, err := NewVocabulary(defaultBrands, defaultCategories, defaultStopWords)
		if err != nil {
			panic(fmt.Sprintf("built-in vocabulary is invalid: %v", err))
		}
		defaultVocabulary = v
	})
	return defaultVocabulary
}

// NewVocabulary validates and normalizes the given tables.
// A brand without variants, an empty or multi-word variant, or a variant shared by
// two brands is reported as ErrInvalidVocabulary.
func NewVocabulary(brands map[string][]string, categories, stopWords []string) (*Vocabulary, error) {
	v := &Vocabulary{
		brands:     make(map[string][]string, len(brands)),
		brandIndex: make(map[string]string),
		categories: make(map[string]bool, len(categories)),
		stopWords:  make(map[string]bool, len(stopWords)),
	}

	// Sorted so that error messages are stable
	canonicals := make([]string, 0, len(brands))
	for canonical := range brands {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for _, canonical := range canonicals {
		key := strings.TrimSpace(canonical)
		if key == "" {
			return nil, fmt.Errorf("%w: brand with empty canonical name", domain.ErrInvalidVocabulary)
		}
		variants := brands[canonical]
		if len(variants) == 0 {
			return nil, fmt.Errorf("%w: brand %q has no variants", domain.ErrInvalidVocabulary, key)
		}

		normalized := make([]string, 0, len(variants))
		for _, variant := range variants {
			word, err := normalizeTableWord(variant)
			if err != nil {
				return nil, fmt.Errorf("%w: brand %q: %v", domain.ErrInvalidVocabulary, key, err)
			}
			if owner, ok := v.brandIndex[word]; ok {
				if owner == key {
					continue
				}
				return nil, fmt.Errorf("%w: variant %q belongs to both %q and %q",
					domain.ErrInvalidVocabulary, word, owner, key)
			}
			v.brandIndex[word] = key
			normalized = append(normalized, word)
		}
		v.brands[key] = normalized
	}

	for _, category := range categories {
		word, err := normalizeTableWord(category)
		if err != nil {
			return nil, fmt.Errorf("%w: category: %v", domain.ErrInvalidVocabulary, err)
		}
		v.categories[word] = true
	}

	for _, stopWord := range stopWords {
		word, err := normalizeTableWord(stopWord)
		if err != nil {
			return nil, fmt.Errorf("%w: stop word: %v", domain.ErrInvalidVocabulary, err)
		}
		v.stopWords[word] = true
	}

	return v, nil
}

// LoadVocabulary reads brand, category and stop-word tables from a YAML file
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidVocabulary, path, err)
	}

	return NewVocabulary(file.Brands, file.Categories, file.StopWords)
}

// normalizeTableWord normalizes a table entry the same way query tokens are normalized
func normalizeTableWord(word string) (string, error) {
	normalized := normalizeText(word)
	if normalized == "" {
		return "", errors.New("empty entry")
	}
	if strings.IndexFunc(normalized, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("entry %q contains whitespace and can never match a token", word)
	}
	return normalized, nil
}

// IsStopWord reports whether a normalized token is ignored entirely
func (v *Vocabulary) IsStopWord(token string) bool {
	return v.stopWords[token]
}

// IsCategory reports whether a normalized token names a product category
func (v *Vocabulary) IsCategory(token string) bool {
	return v.categories[token]
}

// BrandVariants returns every spelling of the brand the token belongs to, or nil
func (v *Vocabulary) BrandVariants(token string) []string {
	canonical, ok := v.brandIndex[token]
	if !ok {
		return nil
	}
	return v.brands[canonical]
}

// Sizes reports the number of brands, categories and stop words
func (v *Vocabulary) Sizes() (brands, categories, stopWords int) {
	return len(v.brands), len(v.categories), len(v.stopWords)
}

// isShortToken reports whether a token is a single character or less
func isShortToken(token string) bool {
	return utf8.RuneCountInString(token) <= 1
}
