// Package export serializes campaigns into the fixed-width CSV schema
// consumed by the Google Ads Editor bulk-import tool. The transform is
// stateless and pure: campaign in, CSV string out.
package export

import (
	"strconv"
	"strings"

	"adforge/internal/application/rules"
	"adforge/internal/domain/ads"
)

// Spreadsheet tools only detect UTF-8 reliably when the file leads with
// a byte-order mark.
const utf8BOM = "\ufeff"

const crlf = "\r\n"

// Display names the Editor expects in the Ad Type column.
var adTypeNames = map[ads.AdType]string{
	ads.AdTypeRSA:      "Responsive search ad",
	ads.AdTypeDKI:      "Expanded text ad",
	ads.AdTypeCallOnly: "Call-only ad",
}

// row is one fixed-width record. Unused fields stay empty strings, never
// a shorter slice.
type row []string

func newRow() row {
	return make(row, ColumnCount)
}

func (r row) set(column, value string) {
	if i, ok := columnIndex[column]; ok {
		r[i] = value
	}
}

// escapeField applies CSV quoting: fields containing a comma, quote, or
// newline are wrapped in quotes with internal quotes doubled.
func escapeField(field string) string {
	if strings.ContainsAny(field, "\",\n\r") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

func (r row) encode() string {
	escaped := make([]string, len(r))
	for i, f := range r {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, ",")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GenerateMasterCSV renders a campaign into the full Editor import file:
// one header row, then campaign, ad group, keyword, ad, negative
// keyword, location, and image asset rows, in that fixed order. The
// result is BOM-prefixed and CRLF-joined.
func GenerateMasterCSV(c ads.Campaign) string {
	rows := []row{campaignRow(c)}

	for _, g := range c.AdGroups {
		rows = append(rows, adGroupRow(c, g))
	}
	for _, g := range c.AdGroups {
		for _, kw := range g.Keywords {
			rows = append(rows, keywordRow(c, g, kw))
		}
	}
	for _, g := range c.AdGroups {
		for _, ad := range g.Ads {
			rows = append(rows, adRow(c, g, ad))
		}
	}
	for _, neg := range c.NegativeKeywords {
		rows = append(rows, negativeKeywordRow(c, neg))
	}
	rows = append(rows, locationRows(c)...)
	for _, img := range c.ImageAssets {
		rows = append(rows, imageAssetRow(c, img))
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(editorColumns, ","))
	for _, r := range rows {
		b.WriteString(crlf)
		b.WriteString(r.encode())
	}
	return b.String()
}

func campaignRow(c ads.Campaign) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Budget", formatAmount(c.Budget))
	r.set("Budget type", "Daily")
	r.set("Campaign Type", "Search")
	r.set("Networks", "Google search")
	r.set("Languages", "en")
	r.set("Bid Strategy Type", c.BidStrategy)
	r.set("Campaign Status", "Enabled")
	r.set("Status", "Enabled")
	if c.Business != nil {
		r.set("Business Name Asset", c.Business.Name)
		r.set("Business Logo URL", c.Business.LogoURL)
		r.set("Business Country", c.Business.Country)
	}
	return r
}

func adGroupRow(c ads.Campaign, g ads.AdGroup) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Ad Group", g.Name)
	if g.MaxCPC > 0 {
		r.set("Max CPC", formatAmount(g.MaxCPC))
	}
	r.set("Ad Group Type", "Standard")
	r.set("Status", "Enabled")
	return r
}

func keywordRow(c ads.Campaign, g ads.AdGroup, kw ads.Keyword) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Ad Group", g.Name)
	r.set("Keyword", kw.Text)
	r.set("Criterion Type", string(kw.MatchType))
	if kw.MaxCPC > 0 {
		r.set("Max CPC", formatAmount(kw.MaxCPC))
	}
	r.set("Status", "Enabled")
	return r
}

func adRow(c ads.Campaign, g ads.AdGroup, ad ads.Ad) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Ad Group", g.Name)
	r.set("Ad Type", adTypeNames[ad.Type])

	for i, h := range ad.Headlines {
		if i >= rules.MaxRSAHeadlines {
			break
		}
		r.set("Headline "+strconv.Itoa(i+1), rules.FormatHeadline(h))
	}
	for i, d := range ad.Descriptions {
		if i >= rules.MaxRSADescriptions {
			break
		}
		r.set("Description "+strconv.Itoa(i+1), rules.FormatDescription(d))
	}

	r.set("Path 1", ad.Path1)
	r.set("Path 2", ad.Path2)
	r.set("Final URL", ad.FinalURL)
	r.set("Mobile Final URL", ad.MobileURL)

	if ad.Type == ads.AdTypeCallOnly {
		r.set("Phone Number", ad.PhoneNumber)
		r.set("Verification URL", ad.VerificationURL)
		r.set("Business Name", ad.BusinessName)
		r.set("Country of Phone", ad.PhoneCountry)
		r.set("Call Reporting", "Enabled")
	}

	r.set("Status", "Enabled")
	return r
}

func negativeKeywordRow(c ads.Campaign, kw ads.Keyword) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Keyword", kw.Text)
	r.set("Criterion Type", string(kw.MatchType))
	r.set("Campaign Negative Keyword", "True")
	r.set("Status", "Enabled")
	return r
}

// locationRows emits one row per location target. Each location kind
// writes its own column so the Editor can tell them apart.
func locationRows(c ads.Campaign) []row {
	var rows []row
	for _, country := range c.Countries {
		r := newRow()
		r.set("Campaign", c.Name)
		r.set("Location", country)
		r.set("Country Code", country)
		r.set("Status", "Enabled")
		rows = append(rows, r)
	}
	for _, state := range c.States {
		r := newRow()
		r.set("Campaign", c.Name)
		r.set("Location", state)
		r.set("State", state)
		r.set("Status", "Enabled")
		rows = append(rows, r)
	}
	for _, city := range c.Cities {
		r := newRow()
		r.set("Campaign", c.Name)
		r.set("Location", city)
		r.set("City", city)
		r.set("Status", "Enabled")
		rows = append(rows, r)
	}
	for _, postal := range c.PostalCodes {
		r := newRow()
		r.set("Campaign", c.Name)
		r.set("Location", postal)
		r.set("Postal Code", postal)
		r.set("Status", "Enabled")
		rows = append(rows, r)
	}
	return rows
}

func imageAssetRow(c ads.Campaign, img ads.ImageAsset) row {
	r := newRow()
	r.set("Campaign", c.Name)
	r.set("Image Asset Name", img.Name)
	r.set("Image URL", img.URL)
	r.set("Image Asset Type", "Marketing image")
	r.set("Status", "Enabled")
	return r
}

// RowCount returns the number of data rows GenerateMasterCSV will emit
// for a campaign, excluding the header.
func RowCount(c ads.Campaign) int {
	stats := GetCSVStatistics(c)
	return 1 + stats.AdGroups + stats.Keywords + stats.Ads +
		stats.NegativeKeywords + stats.Locations + len(c.ImageAssets)
}
