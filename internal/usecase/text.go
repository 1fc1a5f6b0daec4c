package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Arabic code points that keyboards commonly produce in place of their Persian forms
var scriptFolder = strings.NewReplacer(
	"ي", "ی", // arabic yeh -> farsi yeh
	"ى", "ی", // alef maksura -> farsi yeh
	"ك", "ک", // arabic kaf -> keheh
)

// wordChars is the set of characters that belong to a word: letters, marks and digits of
// any script, plus the zero-width (non-)joiners that glue Persian compounds such as
// "می‌خواهم" together. Arabic punctuation (، ؛ ؟) separates words.
const wordChars = `\p{L}\p{M}\p{N}_\x{200C}\x{200D}`

// normalizeText trims, composes and lower-cases s for comparison.
// cases.Caser is stateful, so a fresh one is built per call.
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = cases.Lower(language.Und).String(s)
	return scriptFolder.Replace(s)
}

// wordPattern matches a keyword only where it stands as a complete word
type wordPattern struct {
	keyword string
	re      *regexp.Regexp
}

func newWordPattern(keyword string) wordPattern {
	expr := `(?:^|[^` + wordChars + `])` + regexp.QuoteMeta(keyword) + `(?:$|[^` + wordChars + `])`
	return wordPattern{
		keyword: keyword,
		re:      regexp.MustCompile(expr),
	}
}

// in reports whether the keyword occurs in text as a complete word. text must
// already be normalized.
func (p wordPattern) in(text string) bool {
	if text == "" || !strings.Contains(text, p.keyword) {
		return false
	}
	return p.re.MatchString(text)
}

// containsWord reports whether keyword appears in text as a complete word.
// Both arguments are normalized before matching.
func containsWord(keyword, text string) bool {
	keyword = normalizeText(keyword)
	if keyword == "" {
		return false
	}
	return newWordPattern(keyword).in(normalizeText(text))
}
