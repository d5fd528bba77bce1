// Package rules enforces Google Search Ads formatting constraints:
// character limits, text normalization, headline similarity, and
// per-format validation. Everything here is a pure function; validators
// report problems as values and never panic or auto-correct.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"adforge/internal/domain/ads"
)

// Character limits imposed by Google Search Ads
const (
	HeadlineMaxLen    = 30
	DescriptionMaxLen = 90
	PathMaxLen        = 15

	MinRSAHeadlines    = 3
	MaxRSAHeadlines    = 15
	MinRSADescriptions = 2
	MaxRSADescriptions = 4
)

// Headlines closer than this edit distance (after normalization) count
// as near-duplicates.
const similarityDistance = 2

var (
	quoteChars       = strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "")
	repeatedBangs    = regexp.MustCompile(`!{2,}`)
	repeatedQuestion = regexp.MustCompile(`\?{2,}`)
	spaces           = regexp.MustCompile(`\s+`)
)

// Result is the outcome of a validation check. Valid is false whenever
// Errors is non-empty; callers must check it before using an ad.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func newResult(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// normalize strips quotes, collapses repeated !/? and whitespace, and trims.
func normalize(text string) string {
	s := quoteChars.Replace(text)
	s = repeatedBangs.ReplaceAllString(s, "!")
	s = repeatedQuestion.ReplaceAllString(s, "?")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncate cuts text to max runes without splitting a word when it can
// avoid it.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if idx := strings.LastIndex(cut, " "); idx > max/2 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// FormatHeadline normalizes ad text and truncates it to the headline limit.
func FormatHeadline(text string) string {
	return truncate(normalize(text), HeadlineMaxLen)
}

// FormatDescription normalizes ad text and truncates it to the description limit.
func FormatDescription(text string) string {
	return truncate(normalize(text), DescriptionMaxLen)
}

// canonical lowercases a headline and drops everything but letters,
// digits and spaces, for duplicate comparison.
func canonical(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return spaces.ReplaceAllString(strings.TrimSpace(b.String()), " ")
}

// AreHeadlinesSimilar reports whether two headlines are near-duplicates:
// identical once lowercased and stripped of punctuation, or within a
// small edit distance of each other.
func AreHeadlinesSimilar(a, b string) bool {
	ca, cb := canonical(a), canonical(b)
	if ca == cb {
		return true
	}
	return levenshtein(ca, cb) <= similarityDistance
}

// EnsureUniqueHeadlines filters candidates so that no two remaining
// headlines are similar. Input order is preserved and ties go to the
// first occurrence.
func EnsureUniqueHeadlines(headlines []string) []string {
	unique := make([]string, 0, len(headlines))
	for _, h := range headlines {
		dup := false
		for _, kept := range unique {
			if AreHeadlinesSimilar(h, kept) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, h)
		}
	}
	return unique
}

// ValidateRSA checks a responsive search ad against headline/description
// counts, per-field length limits, and the pairwise uniqueness rule.
func ValidateRSA(ad ads.Ad) Result {
	var errs []string

	if n := len(ad.Headlines); n < MinRSAHeadlines || n > MaxRSAHeadlines {
		errs = append(errs, fmt.Sprintf("headline count must be between %d and %d, got %d", MinRSAHeadlines, MaxRSAHeadlines, n))
	}
	if n := len(ad.Descriptions); n < MinRSADescriptions || n > MaxRSADescriptions {
		errs = append(errs, fmt.Sprintf("description count must be between %d and %d, got %d", MinRSADescriptions, MaxRSADescriptions, n))
	}

	for i, h := range ad.Headlines {
		if strings.TrimSpace(h) == "" {
			errs = append(errs, fmt.Sprintf("headline %d is empty", i+1))
			continue
		}
		if len([]rune(h)) > HeadlineMaxLen {
			errs = append(errs, fmt.Sprintf("headline %d exceeds %d characters: %q", i+1, HeadlineMaxLen, h))
		}
	}
	for i, d := range ad.Descriptions {
		if strings.TrimSpace(d) == "" {
			errs = append(errs, fmt.Sprintf("description %d is empty", i+1))
			continue
		}
		if len([]rune(d)) > DescriptionMaxLen {
			errs = append(errs, fmt.Sprintf("description %d exceeds %d characters", i+1, DescriptionMaxLen))
		}
	}

	for i := 0; i < len(ad.Headlines); i++ {
		for j := i + 1; j < len(ad.Headlines); j++ {
			if AreHeadlinesSimilar(ad.Headlines[i], ad.Headlines[j]) {
				errs = append(errs, fmt.Sprintf("headlines %d and %d are too similar: %q / %q", i+1, j+1, ad.Headlines[i], ad.Headlines[j]))
			}
		}
	}

	return newResult(errs)
}

// ValidateCallOnlyAd checks the fields a call-only ad cannot ship without.
func ValidateCallOnlyAd(ad ads.Ad) Result {
	var errs []string

	if strings.TrimSpace(ad.PhoneNumber) == "" {
		errs = append(errs, "phone number is required")
	}
	if strings.TrimSpace(ad.VerificationURL) == "" {
		errs = append(errs, "verification URL is required")
	}
	for i, h := range ad.Headlines {
		if len([]rune(h)) > HeadlineMaxLen {
			errs = append(errs, fmt.Sprintf("headline %d exceeds %d characters", i+1, HeadlineMaxLen))
		}
	}
	for i, d := range ad.Descriptions {
		if len([]rune(d)) > DescriptionMaxLen {
			errs = append(errs, fmt.Sprintf("description %d exceeds %d characters", i+1, DescriptionMaxLen))
		}
	}

	return newResult(errs)
}

var dkiToken = regexp.MustCompile(`\{([^{}]*)\}`)

// Accepted insertion prefixes; capitalization of the prefix controls
// how Google capitalizes the inserted keyword.
var dkiPrefixes = map[string]bool{
	"keyword": true,
	"Keyword": true,
	"KeyWord": true,
	"KEYWORD": true,
}

// ValidateDKISyntax checks dynamic keyword insertion markup of the form
// {KeyWord:Default}. Braces must be balanced, a default must be present,
// and the text must still fit the headline budget once the default is
// substituted.
func ValidateDKISyntax(text string) Result {
	var errs []string

	if strings.Count(text, "{") != strings.Count(text, "}") {
		errs = append(errs, "unbalanced braces in keyword insertion")
		return newResult(errs)
	}

	expanded := text
	matches := dkiToken.FindAllStringSubmatch(text, -1)
	if strings.Contains(text, "{") && len(matches) == 0 {
		errs = append(errs, "malformed keyword insertion token")
		return newResult(errs)
	}

	for _, m := range matches {
		inner := m[1]
		prefix, def, found := strings.Cut(inner, ":")
		if !found {
			errs = append(errs, fmt.Sprintf("keyword insertion %q is missing a default value", m[0]))
			continue
		}
		if !dkiPrefixes[strings.TrimSpace(prefix)] {
			errs = append(errs, fmt.Sprintf("unknown keyword insertion prefix %q", prefix))
			continue
		}
		if strings.TrimSpace(def) == "" {
			errs = append(errs, fmt.Sprintf("keyword insertion %q has an empty default value", m[0]))
			continue
		}
		expanded = strings.Replace(expanded, m[0], def, 1)
	}

	if len(errs) == 0 && len([]rune(expanded)) > HeadlineMaxLen {
		errs = append(errs, fmt.Sprintf("text exceeds %d characters after default substitution: %q", HeadlineMaxLen, expanded))
	}

	return newResult(errs)
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
