// Package copygen turns raw keywords into ready-to-use ad text.
package copygen

import (
	"math/rand"
	"strings"

	"adforge/internal/application/rules"
	"adforge/internal/domain/ads"
)

// Default variation counts requested by callers that pass zero.
const (
	DefaultHeadlineCount    = 15
	DefaultDescriptionCount = 4
)

// Keywords that mark a service business. Checked before the product list:
// service terms are more specific, so a keyword containing both counts
// as a service.
var serviceIndicators = []string{
	"repair", "service", "services", "cleaning", "installation", "plumber",
	"plumbing", "electrician", "hvac", "roofing", "landscaping", "moving",
	"lawyer", "attorney", "dentist", "chiropractor", "salon", "spa",
	"consulting", "coaching", "tutoring", "training", "accounting",
	"insurance", "remodeling", "painting", "towing", "locksmith",
}

var productIndicators = []string{
	"buy", "shop", "store", "sale", "price", "cheap", "discount", "deal",
	"shoes", "clothing", "furniture", "phone", "laptop", "watch", "jewelry",
	"equipment", "supplies", "parts", "tools", "accessories", "gift",
	"online", "brand", "wholesale",
}

// Words kept lowercase by ToTitleCase unless they lead the string.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"for": true, "nor": true, "on": true, "at": true, "to": true, "by": true,
	"of": true, "in": true, "with": true, "as": true,
}

// templateSet holds the fixed copy templates for one business type.
// {kw} is replaced with the title-cased keyword.
type templateSet struct {
	PrimaryHeadline   string
	SecondaryHeadline string
	Description1      string
	Description2      string
	ExtraHeadlines    []string
	ExtraDescriptions []string
}

var productTemplates = templateSet{
	PrimaryHeadline:   "Shop {kw} Today",
	SecondaryHeadline: "Best {kw} Deals Online",
	Description1:      "Browse our full range of {kw} with fast shipping and easy returns. Order online today.",
	Description2:      "Top-rated {kw} at prices you will love. Free shipping on qualifying orders.",
	ExtraHeadlines: []string{
		"{kw} On Sale Now",
		"Top Quality {kw}",
		"{kw} - Free Shipping",
		"Huge {kw} Selection",
		"Save Big On {kw}",
		"New {kw} In Stock",
		"{kw} At Low Prices",
		"Trusted {kw} Store",
	},
	ExtraDescriptions: []string{
		"Find the {kw} you need in one place. Secure checkout and hassle-free returns on every order.",
		"Shop {kw} from trusted brands. Compare options and save with exclusive online-only deals.",
	},
}

var serviceTemplates = templateSet{
	PrimaryHeadline:   "Professional {kw}",
	SecondaryHeadline: "Trusted {kw} Experts",
	Description1:      "Licensed and insured {kw} professionals. Get a free quote today and same-week scheduling.",
	Description2:      "Reliable {kw} backed by hundreds of 5-star reviews. Satisfaction guaranteed.",
	ExtraHeadlines: []string{
		"{kw} Near You",
		"Fast, Reliable {kw}",
		"{kw} - Free Quotes",
		"Affordable {kw}",
		"Same-Day {kw}",
		"Top Rated {kw}",
		"{kw} You Can Trust",
		"Local {kw} Pros",
	},
	ExtraDescriptions: []string{
		"Our {kw} team shows up on time and gets it done right the first time. Call for a free estimate.",
		"Upfront pricing and guaranteed workmanship on every {kw} job, big or small.",
	},
}

// Call-to-action headlines; GenerateSmartAdCopy draws headline 3 from the
// first three entries.
var ctaHeadlines = []string{
	"Get Started Today",
	"Call Now - Free Quote",
	"Book Online In Minutes",
	"Limited Time Offer",
	"Satisfaction Guaranteed",
	"Talk To An Expert",
	"See Why Customers Love Us",
}

const ctaPickPool = 3

// Generator produces ad copy. The random source is injected so callers
// and tests can make CTA selection deterministic.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the given source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// DetectBusinessType classifies a keyword as product or service by
// substring match against the curated word lists. The service list is
// checked first, and unmatched keywords default to service. Both the
// ordering and the default are business policy, not heuristics.
func DetectBusinessType(keyword string) ads.BusinessType {
	kw := strings.ToLower(keyword)
	for _, ind := range serviceIndicators {
		if strings.Contains(kw, ind) {
			return ads.BusinessTypeService
		}
	}
	for _, ind := range productIndicators {
		if strings.Contains(kw, ind) {
			return ads.BusinessTypeProduct
		}
	}
	return ads.BusinessTypeService
}

// ToTitleCase capitalizes each word except small connecting words. The
// first word is always capitalized regardless of the small-word list.
func ToTitleCase(text string) string {
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		if i > 0 && smallWords[w] {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var (
	quoteStripper = strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "")
)

// CleanAdText removes quote characters, collapses repeated ! and ?, and
// trims surrounding whitespace. Applying it twice yields the same result.
func CleanAdText(text string) string {
	s := quoteStripper.Replace(text)
	for strings.Contains(s, "!!") {
		s = strings.ReplaceAll(s, "!!", "!")
	}
	for strings.Contains(s, "??") {
		s = strings.ReplaceAll(s, "??", "?")
	}
	return strings.TrimSpace(s)
}

func fill(template, keyword string) string {
	return strings.ReplaceAll(template, "{kw}", keyword)
}

func (g *Generator) templatesFor(bt ads.BusinessType) templateSet {
	if bt == ads.BusinessTypeProduct {
		return productTemplates
	}
	return serviceTemplates
}

// GenerateSmartAdCopy builds a complete set of ad text for one keyword:
// two template headlines, a CTA headline picked uniformly from the first
// three CTA entries, and two descriptions. All output is cleaned and cut
// to the platform limits.
func (g *Generator) GenerateSmartAdCopy(keyword string) ads.GeneratedAd {
	bt := DetectBusinessType(keyword)
	set := g.templatesFor(bt)
	kw := ToTitleCase(CleanAdText(keyword))

	return ads.GeneratedAd{
		Headline1:    rules.FormatHeadline(CleanAdText(fill(set.PrimaryHeadline, kw))),
		Headline2:    rules.FormatHeadline(CleanAdText(fill(set.SecondaryHeadline, kw))),
		Headline3:    rules.FormatHeadline(CleanAdText(ctaHeadlines[g.rng.Intn(ctaPickPool)])),
		Description1: rules.FormatDescription(CleanAdText(fill(set.Description1, kw))),
		Description2: rules.FormatDescription(CleanAdText(fill(set.Description2, kw))),
		BusinessType: bt,
	}
}

// GenerateHeadlineVariations returns up to count headline candidates:
// template-derived headlines first, then CTA headlines, in fixed order.
// The list is not deduplicated; callers needing distinct headlines apply
// rules.EnsureUniqueHeadlines.
func (g *Generator) GenerateHeadlineVariations(keyword string, count int) []string {
	if count <= 0 {
		count = DefaultHeadlineCount
	}
	set := g.templatesFor(DetectBusinessType(keyword))
	kw := ToTitleCase(CleanAdText(keyword))

	candidates := []string{
		fill(set.PrimaryHeadline, kw),
		fill(set.SecondaryHeadline, kw),
	}
	for _, t := range set.ExtraHeadlines {
		candidates = append(candidates, fill(t, kw))
	}
	candidates = append(candidates, ctaHeadlines...)

	out := make([]string, 0, count)
	for _, c := range candidates {
		if len(out) == count {
			break
		}
		out = append(out, rules.FormatHeadline(CleanAdText(c)))
	}
	return out
}

// GenerateDescriptionVariations returns up to count description candidates.
func (g *Generator) GenerateDescriptionVariations(keyword string, count int) []string {
	if count <= 0 {
		count = DefaultDescriptionCount
	}
	set := g.templatesFor(DetectBusinessType(keyword))
	kw := ToTitleCase(CleanAdText(keyword))

	candidates := []string{
		fill(set.Description1, kw),
		fill(set.Description2, kw),
	}
	for _, t := range set.ExtraDescriptions {
		candidates = append(candidates, fill(t, kw))
	}

	out := make([]string, 0, count)
	for _, c := range candidates {
		if len(out) == count {
			break
		}
		out = append(out, rules.FormatDescription(CleanAdText(c)))
	}
	return out
}
