package usecase

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"trims and lower-cases latin", "  Galaxy S23 ", "galaxy s23"},
		{"leaves persian untouched", "گوشی سامسونگ", "گوشی سامسونگ"},
		{"folds arabic yeh and kaf", "كيبورد", "کیبورد"},
		{"mixed scripts", "لپ‌تاپ MacBook", "لپ‌تاپ macbook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		text    string
		want    bool
	}{
		{"whole text", "گوشی", "گوشی", true},
		{"at start", "گوشی", "گوشی سامسونگ", true},
		{"at end", "سامسونگ", "گوشی سامسونگ", true},
		{"in the middle", "iphone", "گوشی اپل iPhone 14 Pro", true},
		{"before punctuation", "samsung", "charger for samsung, apple", true},
		{"after punctuation", "galaxy", "(galaxy) s23", true},
		{"persian comma", "snapdragon", "پردازنده Snapdragon، صفحه", true},
		{"latin prefix of longer word", "mac", "macbook air", false},
		{"latin suffix of longer word", "book", "macbook", false},
		{"persian substring", "می", "شیائومی", false},
		{"zero-width joined compound", "می", "می‌خواهم", false},
		{"persian prefix", "اپل", "اپلیکیشن", false},
		{"digit neighbour", "pro", "pro2", false},
		{"empty text", "گوشی", "", false},
		{"empty keyword", "", "گوشی", false},
		{"regex metacharacters are literal", "revolve+", "bose soundlink revolve+ speaker", true},
		{"case insensitive", "IPHONE", "iphone 13", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsWord(tt.keyword, tt.text); got != tt.want {
				t.Errorf("containsWord(%q, %q) = %v, want %v", tt.keyword, tt.text, got, tt.want)
			}
		})
	}
}
