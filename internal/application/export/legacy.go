package export

import (
	"strconv"

	"adforge/internal/domain/ads"
)

// Defaults applied when a legacy campaign omits a field.
const (
	defaultBudget      = 100
	defaultBidStrategy = "Maximize Conversions"
	defaultCountry     = "US"
)

var defaultMatchType = ads.MatchTypeBroad

// ConvertToV5Format adapts a loosely-typed legacy campaign payload
// (decoded JSON) into a canonical Campaign. Legacy exports disagree on
// field names, so each field is resolved through an alias list; missing
// fields fall back to documented defaults rather than failing.
func ConvertToV5Format(legacy map[string]any) ads.Campaign {
	c := ads.Campaign{
		Name:        str(legacy, "name", "campaign_name", "campaignName"),
		Budget:      num(legacy, defaultBudget, "budget", "daily_budget", "dailyBudget"),
		BidStrategy: strDefault(legacy, defaultBidStrategy, "bid_strategy", "bidStrategy", "bidding_strategy"),
	}

	for _, raw := range list(legacy, "ad_groups", "adGroups", "adgroups", "groups") {
		c.AdGroups = append(c.AdGroups, convertAdGroup(raw))
	}
	for _, raw := range list(legacy, "negative_keywords", "negativeKeywords", "negatives") {
		if kw, ok := asKeyword(raw); ok {
			c.NegativeKeywords = append(c.NegativeKeywords, kw)
		}
	}

	c.Countries = strList(legacy, "countries", "country_codes", "countryCodes")
	c.States = strList(legacy, "states", "regions")
	c.Cities = strList(legacy, "cities")
	c.PostalCodes = strList(legacy, "postal_codes", "postalCodes", "zip_codes", "zipCodes")
	if len(c.Countries)+len(c.States)+len(c.Cities)+len(c.PostalCodes) == 0 {
		c.Countries = []string{defaultCountry}
	}

	for _, raw := range list(legacy, "sitelinks", "site_links") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		c.Sitelinks = append(c.Sitelinks, ads.Sitelink{
			Text:         str(m, "text", "link_text", "linkText"),
			Description1: str(m, "description1", "description_1", "desc1"),
			Description2: str(m, "description2", "description_2", "desc2"),
			FinalURL:     str(m, "final_url", "finalUrl", "url"),
		})
	}
	c.Callouts = strList(legacy, "callouts", "callout_texts")

	for _, raw := range list(legacy, "snippets", "structured_snippets", "structuredSnippets") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		c.Snippets = append(c.Snippets, ads.StructuredSnippet{
			Header: str(m, "header", "category"),
			Values: strList(m, "values", "items"),
		})
	}
	for _, raw := range list(legacy, "prices", "price_items", "priceItems") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		c.Prices = append(c.Prices, ads.PriceItem{
			Header:      str(m, "header", "title"),
			Description: str(m, "description", "desc"),
			Price:       str(m, "price", "amount"),
			Unit:        str(m, "unit", "price_unit"),
		})
	}
	for _, raw := range list(legacy, "promotions", "promos") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		c.Promotions = append(c.Promotions, ads.Promotion{
			Target:     str(m, "target", "promotion_target"),
			PercentOff: str(m, "percent_off", "percentOff"),
			AmountOff:  str(m, "amount_off", "amountOff"),
			Occasion:   str(m, "occasion"),
			StartDate:  str(m, "start_date", "startDate"),
			EndDate:    str(m, "end_date", "endDate"),
			FinalURL:   str(m, "final_url", "finalUrl", "url"),
		})
	}
	for _, raw := range list(legacy, "image_assets", "imageAssets", "images") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if img := (ads.ImageAsset{Name: str(m, "name", "asset_name"), URL: str(m, "url", "image_url", "imageUrl")}); img.URL != "" {
			c.ImageAssets = append(c.ImageAssets, img)
		}
	}
	if m, ok := legacy["business"].(map[string]any); ok {
		c.Business = &ads.BusinessInfo{
			Name:    str(m, "name", "business_name"),
			LogoURL: str(m, "logo_url", "logoUrl", "logo"),
			Country: str(m, "country", "country_code"),
		}
	}

	return c
}

func convertAdGroup(raw any) ads.AdGroup {
	m, ok := raw.(map[string]any)
	if !ok {
		return ads.AdGroup{}
	}

	g := ads.AdGroup{
		Name:   str(m, "name", "adgroup_name", "ad_group_name", "adGroupName"),
		MaxCPC: num(m, 0, "max_cpc", "maxCpc", "cpc_bid", "cpcBid"),
	}

	for _, raw := range list(m, "keywords", "keyword_list") {
		if kw, ok := asKeyword(raw); ok {
			g.Keywords = append(g.Keywords, kw)
		}
	}
	for _, raw := range list(m, "ads", "ad_list") {
		am, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		g.Ads = append(g.Ads, convertAd(am))
	}
	return g
}

func convertAd(m map[string]any) ads.Ad {
	ad := ads.Ad{
		Type:            legacyAdType(str(m, "type", "ad_type", "adType")),
		Headlines:       strList(m, "headlines", "headline_list"),
		Descriptions:    strList(m, "descriptions", "description_list"),
		Path1:           str(m, "path1", "path_1"),
		Path2:           str(m, "path2", "path_2"),
		FinalURL:        str(m, "final_url", "finalUrl", "url"),
		MobileURL:       str(m, "mobile_url", "mobileUrl", "mobile_final_url"),
		PhoneNumber:     str(m, "phone_number", "phoneNumber", "phone"),
		VerificationURL: str(m, "verification_url", "verificationUrl"),
		BusinessName:    str(m, "business_name", "businessName"),
		PhoneCountry:    str(m, "phone_country", "phoneCountry", "country_of_phone"),
	}

	// Positional headline/description fields from the oldest exports.
	for i := 1; i <= 15; i++ {
		if h := str(m, "headline"+strconv.Itoa(i), "headline_"+strconv.Itoa(i)); h != "" {
			ad.Headlines = append(ad.Headlines, h)
		}
	}
	for i := 1; i <= 4; i++ {
		if d := str(m, "description"+strconv.Itoa(i), "description_"+strconv.Itoa(i)); d != "" {
			ad.Descriptions = append(ad.Descriptions, d)
		}
	}
	return ad
}

func legacyAdType(t string) ads.AdType {
	switch t {
	case "call_only", "callonly", "call":
		return ads.AdTypeCallOnly
	case "dki", "expanded", "eta":
		return ads.AdTypeDKI
	default:
		return ads.AdTypeRSA
	}
}

// asKeyword accepts either a bare string or an object with text/match
// fields; the legacy builder emitted both shapes.
func asKeyword(raw any) (ads.Keyword, bool) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return ads.Keyword{}, false
		}
		return ads.Keyword{Text: v, MatchType: defaultMatchType}, true
	case map[string]any:
		text := str(v, "text", "keyword", "term")
		if text == "" {
			return ads.Keyword{}, false
		}
		match := ads.MatchType(strDefault(v, string(defaultMatchType), "match_type", "matchType", "match"))
		switch match {
		case ads.MatchTypeBroad, ads.MatchTypePhrase, ads.MatchTypeExact:
		default:
			match = defaultMatchType
		}
		return ads.Keyword{
			Text:      text,
			MatchType: match,
			MaxCPC:    num(v, 0, "max_cpc", "maxCpc"),
		}, true
	default:
		return ads.Keyword{}, false
	}
}

func str(m map[string]any, aliases ...string) string {
	for _, key := range aliases {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func strDefault(m map[string]any, def string, aliases ...string) string {
	if v := str(m, aliases...); v != "" {
		return v
	}
	return def
}

func num(m map[string]any, def float64, aliases ...string) float64 {
	for _, key := range aliases {
		switch v := m[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return def
}

func list(m map[string]any, aliases ...string) []any {
	for _, key := range aliases {
		if v, ok := m[key].([]any); ok {
			return v
		}
	}
	return nil
}

func strList(m map[string]any, aliases ...string) []string {
	var out []string
	for _, raw := range list(m, aliases...) {
		if s, ok := raw.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
