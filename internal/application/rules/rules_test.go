package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/internal/domain/ads"
)

func TestFormatHeadline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already valid", "Professional Plumber", "Professional Plumber"},
		{"collapses punctuation and spaces", "Best  Deals!!!", "Best Deals!"},
		{"strips quotes", `"Quality" Plumbing 'Fast'`, "Quality Plumbing Fast"},
		{"repeated question marks", "Need Help???", "Need Help?"},
		{"truncates on word boundary", "Professional Emergency Plumbing Services Available", "Professional Emergency"},
		{"trims whitespace", "  Plumber Repair  ", "Plumber Repair"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatHeadline(tt.input)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), HeadlineMaxLen)
		})
	}
}

func TestFormatDescription(t *testing.T) {
	long := strings.Repeat("quality service ", 10) // 160 chars
	got := FormatDescription(long)
	assert.LessOrEqual(t, len([]rune(got)), DescriptionMaxLen)
	assert.False(t, strings.HasSuffix(got, " "))

	short := "Call us today for a free quote."
	assert.Equal(t, short, FormatDescription(short))
}

func TestAreHeadlinesSimilar(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "Buy Shoes Now", "Buy Shoes Now", true},
		{"case and punctuation", "Buy Shoes Now", "buy shoes now!", true},
		{"one character off", "Plumber Pros", "Plumber Pro", true},
		{"two edits", "Fast Repairs", "Fast Repair!", true},
		{"clearly different", "Buy Shoes Now", "Best Shoe Deals", false},
		{"different offers", "Free Shipping Today", "Expert Installation", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreHeadlinesSimilar(tt.a, tt.b))
		})
	}
}

func TestEnsureUniqueHeadlines(t *testing.T) {
	in := []string{"Buy Shoes Now", "buy shoes now!", "Best Shoe Deals", "Buy Shoes Now!"}
	got := EnsureUniqueHeadlines(in)
	assert.Equal(t, []string{"Buy Shoes Now", "Best Shoe Deals"}, got)

	// First occurrence wins, order preserved.
	in = []string{"Expert Installation", "Free Shipping Today", "expert installation"}
	got = EnsureUniqueHeadlines(in)
	assert.Equal(t, []string{"Expert Installation", "Free Shipping Today"}, got)

	assert.Empty(t, EnsureUniqueHeadlines(nil))
}

func validRSA() ads.Ad {
	return ads.Ad{
		Type:         ads.AdTypeRSA,
		Headlines:    []string{"Professional Plumber", "Emergency Service 24/7", "Call Our Team Today"},
		Descriptions: []string{"Licensed and insured plumbers ready to help.", "Same day appointments available in your area."},
	}
}

func TestValidateRSA(t *testing.T) {
	t.Run("valid ad", func(t *testing.T) {
		res := ValidateRSA(validRSA())
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("too few headlines", func(t *testing.T) {
		ad := validRSA()
		ad.Headlines = ad.Headlines[:2]
		res := ValidateRSA(ad)
		require.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "headline count")
	})

	t.Run("too many descriptions", func(t *testing.T) {
		ad := validRSA()
		ad.Descriptions = []string{"One fine offer.", "Two fine offers.", "Three fine offers.", "Four fine offers.", "Five fine offers."}
		res := ValidateRSA(ad)
		require.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "description count")
	})

	t.Run("headline over limit", func(t *testing.T) {
		ad := validRSA()
		ad.Headlines[0] = "This Headline Is Definitely Way Too Long To Pass"
		res := ValidateRSA(ad)
		require.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "exceeds 30 characters")
	})

	t.Run("empty headline", func(t *testing.T) {
		ad := validRSA()
		ad.Headlines[1] = "   "
		res := ValidateRSA(ad)
		require.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "is empty")
	})

	t.Run("near duplicate headlines", func(t *testing.T) {
		ad := validRSA()
		ad.Headlines[2] = "professional plumber!"
		res := ValidateRSA(ad)
		require.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "too similar")
	})
}

func TestValidateCallOnlyAd(t *testing.T) {
	ad := ads.Ad{
		Type:            ads.AdTypeCallOnly,
		Headlines:       []string{"Call Now For Service", "Fast Local Plumbers"},
		Descriptions:    []string{"Speak with a licensed plumber right away."},
		PhoneNumber:     "5551234567",
		VerificationURL: "https://example.com",
	}
	res := ValidateCallOnlyAd(ad)
	assert.True(t, res.Valid)

	ad.PhoneNumber = ""
	ad.VerificationURL = ""
	res = ValidateCallOnlyAd(ad)
	require.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "phone number")
	assert.Contains(t, res.Errors[1], "verification URL")
}

func TestValidateDKISyntax(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		valid   bool
		errFrag string
	}{
		{"no insertion", "Plain Headline", true, ""},
		{"valid token", "{KeyWord:Plumbing Service}", true, ""},
		{"lowercase prefix", "Top {keyword:deals} Here", true, ""},
		{"unbalanced braces", "{KeyWord:Plumbing", false, "unbalanced braces"},
		{"missing default", "{KeyWord}", false, "missing a default"},
		{"empty default", "{KeyWord: }", false, "empty default"},
		{"unknown prefix", "{Keywrd:Plumbing}", false, "unknown keyword insertion prefix"},
		{"expands over limit", "Top Rated {KeyWord:Professional Plumbing Contractors}", false, "exceeds 30 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateDKISyntax(tt.text)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.errFrag != "" {
				require.NotEmpty(t, res.Errors)
				assert.Contains(t, res.Errors[0], tt.errFrag)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("same", "same"))
	assert.Equal(t, 4, levenshtein("", "four"))
	assert.Equal(t, 1, levenshtein("cat", "cart"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
