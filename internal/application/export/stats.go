package export

import "adforge/internal/domain/ads"

// GetCSVStatistics aggregates campaign counts without touching the CSV
// itself. The keyword/ad/location counts match the rows GenerateMasterCSV
// emits for the same campaign.
func GetCSVStatistics(c ads.Campaign) ads.Statistics {
	stats := ads.Statistics{
		AdGroups:         len(c.AdGroups),
		NegativeKeywords: len(c.NegativeKeywords),
		Locations:        len(c.Countries) + len(c.States) + len(c.Cities) + len(c.PostalCodes),
		Sitelinks:        len(c.Sitelinks),
		Callouts:         len(c.Callouts),
	}
	for _, g := range c.AdGroups {
		stats.Keywords += len(g.Keywords)
		stats.Ads += len(g.Ads)
	}
	return stats
}
