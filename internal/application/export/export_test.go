package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/internal/domain/ads"
)

// splitFields splits one CSV line into fields, honoring quoted fields
// with doubled internal quotes.
func splitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuotes:
			if ch == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					b.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				b.WriteByte(ch)
			}
		case ch == '"':
			inQuotes = true
		case ch == ',':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}
	return append(fields, b.String())
}

func testCampaign() ads.Campaign {
	return ads.Campaign{
		Name:        "Summer Plumbing",
		Budget:      50,
		BidStrategy: "Maximize Conversions",
		AdGroups: []ads.AdGroup{{
			Name:   "Plumbing",
			MaxCPC: 1.5,
			Keywords: []ads.Keyword{
				{Text: "plumber repair", MatchType: ads.MatchTypeBroad},
				{Text: "emergency plumber", MatchType: ads.MatchTypeExact},
			},
			Ads: []ads.Ad{{
				Type:         ads.AdTypeRSA,
				Headlines:    []string{"Professional Plumber", "Emergency Service 24/7", "Call Our Team Today"},
				Descriptions: []string{"Licensed and insured plumbers ready to help.", "Same day appointments available in your area."},
				FinalURL:     "https://example.com",
			}},
		}},
	}
}

func TestEditorColumns(t *testing.T) {
	require.Len(t, editorColumns, 183)
	assert.Equal(t, 183, ColumnCount)

	seen := make(map[string]bool, len(editorColumns))
	for _, name := range editorColumns {
		assert.False(t, seen[name], "duplicate column %q", name)
		seen[name] = true
	}

	for name, idx := range columnIndex {
		assert.Equal(t, name, editorColumns[idx])
	}
}

func TestGenerateMasterCSVShape(t *testing.T) {
	out := GenerateMasterCSV(testCampaign())

	require.True(t, strings.HasPrefix(out, utf8BOM))
	out = strings.TrimPrefix(out, utf8BOM)

	// 1 header + campaign + ad group + 2 keywords + 1 ad
	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, 6)
	for i, line := range lines {
		assert.Len(t, splitFields(line), 183, "line %d", i)
	}
	assert.Equal(t, strings.Join(editorColumns, ","), lines[0])
}

func TestGenerateMasterCSVContent(t *testing.T) {
	c := testCampaign()
	out := strings.TrimPrefix(GenerateMasterCSV(c), utf8BOM)
	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, 6)

	field := func(line int, column string) string {
		idx, ok := columnIndex[column]
		require.True(t, ok, "unknown column %q", column)
		return splitFields(lines[line])[idx]
	}

	// Campaign row
	assert.Equal(t, "Summer Plumbing", field(1, "Campaign"))
	assert.Equal(t, "50", field(1, "Budget"))
	assert.Equal(t, "Daily", field(1, "Budget type"))
	assert.Equal(t, "Maximize Conversions", field(1, "Bid Strategy Type"))

	// Ad group row
	assert.Equal(t, "Plumbing", field(2, "Ad Group"))
	assert.Equal(t, "1.5", field(2, "Max CPC"))

	// Keyword rows
	assert.Equal(t, "plumber repair", field(3, "Keyword"))
	assert.Equal(t, "Broad", field(3, "Criterion Type"))
	assert.Equal(t, "emergency plumber", field(4, "Keyword"))
	assert.Equal(t, "Exact", field(4, "Criterion Type"))

	// Ad row
	assert.Equal(t, "Responsive search ad", field(5, "Ad Type"))
	assert.Equal(t, "Professional Plumber", field(5, "Headline 1"))
	assert.Equal(t, "Call Our Team Today", field(5, "Headline 3"))
	assert.Equal(t, "", field(5, "Headline 4"))
	assert.Equal(t, "Same day appointments available in your area.", field(5, "Description 2"))
	assert.Equal(t, "https://example.com", field(5, "Final URL"))
}

func TestGenerateMasterCSVRowOrder(t *testing.T) {
	c := testCampaign()
	c.NegativeKeywords = []ads.Keyword{{Text: "free", MatchType: ads.MatchTypeBroad}}
	c.Countries = []string{"US"}
	c.Cities = []string{"Austin"}
	c.ImageAssets = []ads.ImageAsset{{Name: "hero", URL: "https://example.com/hero.png"}}

	out := strings.TrimPrefix(GenerateMasterCSV(c), utf8BOM)
	lines := strings.Split(out, "\r\n")
	// header + campaign + group + 2 keywords + ad + negative + 2 locations + image
	require.Len(t, lines, 10)
	assert.Equal(t, 1+RowCount(c), len(lines))

	field := func(line int, column string) string {
		return splitFields(lines[line])[columnIndex[column]]
	}
	assert.Equal(t, "True", field(6, "Campaign Negative Keyword"))
	assert.Equal(t, "US", field(7, "Country Code"))
	assert.Equal(t, "Austin", field(8, "City"))
	assert.Equal(t, "hero", field(9, "Image Asset Name"))
}

func TestGenerateMasterCSVEscaping(t *testing.T) {
	c := testCampaign()
	c.Name = `Acme "Pro", LLC`

	out := strings.TrimPrefix(GenerateMasterCSV(c), utf8BOM)
	lines := strings.Split(out, "\r\n")
	for i, line := range lines {
		fields := splitFields(line)
		require.Len(t, fields, 183, "line %d", i)
	}
	assert.Equal(t, c.Name, splitFields(lines[1])[columnIndex["Campaign"]])
}

func TestEscapeField(t *testing.T) {
	assert.Equal(t, "plain", escapeField("plain"))
	assert.Equal(t, `"a,b"`, escapeField("a,b"))
	assert.Equal(t, `"say ""hi"""`, escapeField(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", escapeField("line\nbreak"))
}

func TestGetCSVStatistics(t *testing.T) {
	c := testCampaign()
	c.NegativeKeywords = []ads.Keyword{{Text: "free"}}
	c.Countries = []string{"US", "CA"}
	c.Cities = []string{"Austin"}
	c.Sitelinks = []ads.Sitelink{{Text: "Contact"}}
	c.Callouts = []string{"Free Quotes", "24/7"}

	stats := GetCSVStatistics(c)
	assert.Equal(t, 1, stats.AdGroups)
	assert.Equal(t, 2, stats.Keywords)
	assert.Equal(t, 1, stats.Ads)
	assert.Equal(t, 1, stats.NegativeKeywords)
	assert.Equal(t, 3, stats.Locations)
	assert.Equal(t, 1, stats.Sitelinks)
	assert.Equal(t, 2, stats.Callouts)

	// Keyword count matches the keyword rows the exporter emits.
	out := strings.TrimPrefix(GenerateMasterCSV(c), utf8BOM)
	keywordRows := 0
	for _, line := range strings.Split(out, "\r\n")[1:] {
		fields := splitFields(line)
		if fields[columnIndex["Keyword"]] != "" && fields[columnIndex["Campaign Negative Keyword"]] == "" {
			keywordRows++
		}
	}
	assert.Equal(t, stats.Keywords, keywordRows)
}

func TestConvertToV5FormatDefaults(t *testing.T) {
	c := ConvertToV5Format(map[string]any{"name": "Legacy"})
	assert.Equal(t, "Legacy", c.Name)
	assert.Equal(t, 100.0, c.Budget)
	assert.Equal(t, "Maximize Conversions", c.BidStrategy)
	assert.Equal(t, []string{"US"}, c.Countries)
}

func TestConvertToV5FormatAliases(t *testing.T) {
	legacy := map[string]any{
		"campaign_name": "Old Export",
		"daily_budget":  "75.5",
		"bid_strategy":  "Manual CPC",
		"countries":     []any{"GB"},
		"ad_groups": []any{
			map[string]any{
				"adgroup_name": "Group A",
				"max_cpc":      2.25,
				"keywords": []any{
					"bare keyword",
					map[string]any{"text": "typed keyword", "match_type": "Exact"},
					map[string]any{"term": "fallback match", "match_type": "fuzzy"},
				},
				"ads": []any{
					map[string]any{
						"ad_type":      "call_only",
						"headline1":    "Call Us Now",
						"headline2":    "Fast Local Service",
						"description1": "Talk to a pro today.",
						"phone":        "5551234567",
					},
				},
			},
		},
		"negatives": []any{"free", ""},
	}

	c := ConvertToV5Format(legacy)
	assert.Equal(t, "Old Export", c.Name)
	assert.Equal(t, 75.5, c.Budget)
	assert.Equal(t, "Manual CPC", c.BidStrategy)
	assert.Equal(t, []string{"GB"}, c.Countries)

	require.Len(t, c.AdGroups, 1)
	g := c.AdGroups[0]
	assert.Equal(t, "Group A", g.Name)
	assert.Equal(t, 2.25, g.MaxCPC)

	require.Len(t, g.Keywords, 3)
	assert.Equal(t, ads.Keyword{Text: "bare keyword", MatchType: ads.MatchTypeBroad}, g.Keywords[0])
	assert.Equal(t, ads.MatchTypeExact, g.Keywords[1].MatchType)
	// Unknown match types fall back to broad.
	assert.Equal(t, ads.MatchTypeBroad, g.Keywords[2].MatchType)

	require.Len(t, g.Ads, 1)
	ad := g.Ads[0]
	assert.Equal(t, ads.AdTypeCallOnly, ad.Type)
	assert.Equal(t, []string{"Call Us Now", "Fast Local Service"}, ad.Headlines)
	assert.Equal(t, []string{"Talk to a pro today."}, ad.Descriptions)
	assert.Equal(t, "5551234567", ad.PhoneNumber)

	// Blank negatives are dropped.
	require.Len(t, c.NegativeKeywords, 1)
	assert.Equal(t, "free", c.NegativeKeywords[0].Text)
}

func TestConvertToV5FormatExtensions(t *testing.T) {
	legacy := map[string]any{
		"name": "Extended",
		"sitelinks": []any{
			map[string]any{"link_text": "Contact Us", "url": "https://example.com/contact"},
		},
		"callouts": []any{"Free Quotes", "24/7 Service"},
		"structured_snippets": []any{
			map[string]any{"header": "Services", "values": []any{"Repair", "Install"}},
		},
		"prices": []any{
			map[string]any{"header": "Drain Cleaning", "amount": "99", "unit": "per service"},
		},
		"promotions": []any{
			map[string]any{"target": "Spring Tune-Up", "percent_off": "20"},
		},
		"images": []any{
			map[string]any{"name": "hero", "image_url": "https://example.com/hero.png"},
			map[string]any{"name": "no url"},
		},
		"business": map[string]any{"name": "Acme Plumbing", "country": "US"},
	}

	c := ConvertToV5Format(legacy)
	require.Len(t, c.Sitelinks, 1)
	assert.Equal(t, "Contact Us", c.Sitelinks[0].Text)
	assert.Equal(t, "https://example.com/contact", c.Sitelinks[0].FinalURL)
	assert.Equal(t, []string{"Free Quotes", "24/7 Service"}, c.Callouts)

	require.Len(t, c.Snippets, 1)
	assert.Equal(t, "Services", c.Snippets[0].Header)
	assert.Equal(t, []string{"Repair", "Install"}, c.Snippets[0].Values)

	require.Len(t, c.Prices, 1)
	assert.Equal(t, "99", c.Prices[0].Price)

	require.Len(t, c.Promotions, 1)
	assert.Equal(t, "Spring Tune-Up", c.Promotions[0].Target)

	// Image assets without a URL are dropped.
	require.Len(t, c.ImageAssets, 1)
	assert.Equal(t, "hero", c.ImageAssets[0].Name)

	require.NotNil(t, c.Business)
	assert.Equal(t, "Acme Plumbing", c.Business.Name)
}

func TestLegacyAdType(t *testing.T) {
	assert.Equal(t, ads.AdTypeCallOnly, legacyAdType("callonly"))
	assert.Equal(t, ads.AdTypeDKI, legacyAdType("expanded"))
	assert.Equal(t, ads.AdTypeRSA, legacyAdType(""))
	assert.Equal(t, ads.AdTypeRSA, legacyAdType("anything"))
}
