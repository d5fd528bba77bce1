package copygen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/internal/application/rules"
	"adforge/internal/domain/ads"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestDetectBusinessType(t *testing.T) {
	tests := []struct {
		keyword string
		want    ads.BusinessType
	}{
		{"plumber repair", ads.BusinessTypeService},
		{"emergency hvac service", ads.BusinessTypeService},
		{"buy shoes online", ads.BusinessTypeProduct},
		{"cheap laptop deals", ads.BusinessTypeProduct},
		// Contains both "repair" and "shop"; the service list wins.
		{"phone repair shop", ads.BusinessTypeService},
		// No indicator at all defaults to service.
		{"zebra widgets", ads.BusinessTypeService},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBusinessType(tt.keyword))
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"the quick fox", "The Quick Fox"},
		{"best deals of the day", "Best Deals of the Day"},
		{"PLUMBER REPAIR", "Plumber Repair"},
		{"a cut above", "A Cut Above"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToTitleCase(tt.input))
	}
}

func TestCleanAdText(t *testing.T) {
	assert.Equal(t, "Hello! World?", CleanAdText("Hello!!! World???"))
	assert.Equal(t, "Quality Plumbing", CleanAdText(`  "Quality" 'Plumbing'  `))

	// Cleaning is idempotent.
	inputs := []string{"Hello!!! World???", `"Mixed" quotes!!`, "  plain text  ", "!!!!??!!"}
	for _, in := range inputs {
		once := CleanAdText(in)
		assert.Equal(t, once, CleanAdText(once))
	}
}

func TestGenerateSmartAdCopy(t *testing.T) {
	g := newTestGenerator(1)
	ad := g.GenerateSmartAdCopy("plumber repair")

	assert.Equal(t, ads.BusinessTypeService, ad.BusinessType)
	assert.Equal(t, "Professional Plumber Repair", ad.Headline1)
	assert.Equal(t, "Trusted Plumber Repair Experts", ad.Headline2)
	assert.Contains(t, []string{"Get Started Today", "Call Now - Free Quote", "Book Online In Minutes"}, ad.Headline3)

	for _, h := range []string{ad.Headline1, ad.Headline2, ad.Headline3} {
		assert.LessOrEqual(t, len([]rune(h)), rules.HeadlineMaxLen)
	}
	for _, d := range []string{ad.Description1, ad.Description2} {
		assert.NotEmpty(t, d)
		assert.LessOrEqual(t, len([]rune(d)), rules.DescriptionMaxLen)
		assert.Contains(t, d, "Plumber Repair")
	}
}

func TestGenerateSmartAdCopyProduct(t *testing.T) {
	g := newTestGenerator(1)
	ad := g.GenerateSmartAdCopy("buy shoes")

	assert.Equal(t, ads.BusinessTypeProduct, ad.BusinessType)
	assert.Equal(t, "Shop Buy Shoes Today", ad.Headline1)
	assert.Equal(t, "Best Buy Shoes Deals Online", ad.Headline2)
}

func TestGenerateSmartAdCopyDeterministic(t *testing.T) {
	g1 := newTestGenerator(42)
	g2 := newTestGenerator(42)
	for _, kw := range []string{"plumber repair", "buy shoes", "hvac service", "cheap furniture", "tutoring"} {
		assert.Equal(t, g1.GenerateSmartAdCopy(kw), g2.GenerateSmartAdCopy(kw))
	}
}

func TestGenerateHeadlineVariations(t *testing.T) {
	g := newTestGenerator(1)

	got := g.GenerateHeadlineVariations("plumber repair", 5)
	want := []string{
		"Professional Plumber Repair",
		"Trusted Plumber Repair Experts",
		"Plumber Repair Near You",
		"Fast, Reliable Plumber Repair",
		"Plumber Repair - Free Quotes",
	}
	assert.Equal(t, want, got)

	// Zero count falls back to the default.
	got = g.GenerateHeadlineVariations("plumber repair", 0)
	require.Len(t, got, DefaultHeadlineCount)
	for _, h := range got {
		assert.LessOrEqual(t, len([]rune(h)), rules.HeadlineMaxLen)
	}
}

func TestGenerateDescriptionVariations(t *testing.T) {
	g := newTestGenerator(1)

	got := g.GenerateDescriptionVariations("buy shoes", 2)
	require.Len(t, got, 2)
	for _, d := range got {
		assert.Contains(t, d, "Buy Shoes")
		assert.LessOrEqual(t, len([]rune(d)), rules.DescriptionMaxLen)
	}

	got = g.GenerateDescriptionVariations("plumber repair", 0)
	assert.Len(t, got, DefaultDescriptionCount)
}
