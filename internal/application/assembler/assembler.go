// Package assembler builds validated Ad, AdGroup, and Campaign structures
// from generated or user-supplied copy. Nothing leaves this package
// without passing the rule engine first.
package assembler

import (
	"fmt"
	"strings"

	"adforge/internal/application/rules"
	"adforge/internal/domain/ads"
)

// AdInput is the raw material for one ad before validation.
type AdInput struct {
	Type         ads.AdType `json:"type"`
	Headlines    []string   `json:"headlines"`
	Descriptions []string   `json:"descriptions"`
	Path1        string     `json:"path1,omitempty"`
	Path2        string     `json:"path2,omitempty"`
	FinalURL     string     `json:"finalUrl,omitempty"`
	MobileURL    string     `json:"mobileUrl,omitempty"`

	PhoneNumber     string `json:"phoneNumber,omitempty"`
	VerificationURL string `json:"verificationUrl,omitempty"`
	BusinessName    string `json:"businessName,omitempty"`
	PhoneCountry    string `json:"phoneCountry,omitempty"`
}

// AdGroupInput describes one ad group to assemble.
type AdGroupInput struct {
	Name     string    `json:"name"`
	MaxCPC   float64   `json:"maxCpc"`
	Keywords []string  `json:"keywords"`
	Match    string    `json:"matchType,omitempty"`
	Ads      []AdInput `json:"ads"`
}

// CampaignInput describes a campaign to assemble.
type CampaignInput struct {
	Name             string         `json:"name"`
	Budget           float64        `json:"budget"`
	BidStrategy      string         `json:"bidStrategy,omitempty"`
	AdGroups         []AdGroupInput `json:"adGroups"`
	NegativeKeywords []string       `json:"negativeKeywords,omitempty"`
	Countries        []string       `json:"countries,omitempty"`
	States           []string       `json:"states,omitempty"`
	Cities           []string       `json:"cities,omitempty"`
	PostalCodes      []string       `json:"postalCodes,omitempty"`
	Sitelinks        []ads.Sitelink `json:"sitelinks,omitempty"`
	Callouts         []string       `json:"callouts,omitempty"`
}

// BuildAd formats, deduplicates, and validates one ad. The returned
// error wraps the rule engine's findings; the ad is only usable when the
// error is nil.
func BuildAd(in AdInput) (ads.Ad, error) {
	headlines := make([]string, 0, len(in.Headlines))
	for _, h := range in.Headlines {
		if f := rules.FormatHeadline(h); f != "" {
			headlines = append(headlines, f)
		}
	}
	headlines = rules.EnsureUniqueHeadlines(headlines)

	descriptions := make([]string, 0, len(in.Descriptions))
	for _, d := range in.Descriptions {
		if f := rules.FormatDescription(d); f != "" {
			descriptions = append(descriptions, f)
		}
	}

	ad := ads.Ad{
		Type:            in.Type,
		Headlines:       headlines,
		Descriptions:    descriptions,
		Path1:           in.Path1,
		Path2:           in.Path2,
		FinalURL:        in.FinalURL,
		MobileURL:       in.MobileURL,
		PhoneNumber:     in.PhoneNumber,
		VerificationURL: in.VerificationURL,
		BusinessName:    in.BusinessName,
		PhoneCountry:    in.PhoneCountry,
	}

	var res rules.Result
	switch in.Type {
	case ads.AdTypeCallOnly:
		res = rules.ValidateCallOnlyAd(ad)
	case ads.AdTypeDKI:
		res = rules.ValidateRSA(ad)
		for _, h := range ad.Headlines {
			if strings.Contains(h, "{") {
				if dki := rules.ValidateDKISyntax(h); !dki.Valid {
					res.Valid = false
					res.Errors = append(res.Errors, dki.Errors...)
				}
			}
		}
	case ads.AdTypeRSA, "":
		ad.Type = ads.AdTypeRSA
		res = rules.ValidateRSA(ad)
	default:
		return ads.Ad{}, fmt.Errorf("%w: unknown ad type %q", ads.ErrInvalidAd, in.Type)
	}

	if !res.Valid {
		return ads.Ad{}, fmt.Errorf("%w: %s", ads.ErrInvalidAd, strings.Join(res.Errors, "; "))
	}
	return ad, nil
}

// BuildAdGroup assembles an ad group, rejecting the whole group if any
// of its ads fails validation.
func BuildAdGroup(in AdGroupInput) (ads.AdGroup, error) {
	if strings.TrimSpace(in.Name) == "" {
		return ads.AdGroup{}, fmt.Errorf("%w: ad group name is required", ads.ErrInvalidCampaign)
	}

	match := ads.MatchType(in.Match)
	switch match {
	case ads.MatchTypeBroad, ads.MatchTypePhrase, ads.MatchTypeExact:
	case "":
		match = ads.MatchTypeBroad
	default:
		return ads.AdGroup{}, fmt.Errorf("%w: unknown match type %q", ads.ErrInvalidCampaign, in.Match)
	}

	group := ads.AdGroup{Name: in.Name, MaxCPC: in.MaxCPC}
	for _, kw := range in.Keywords {
		if strings.TrimSpace(kw) == "" {
			return ads.AdGroup{}, ads.ErrEmptyKeyword
		}
		group.Keywords = append(group.Keywords, ads.Keyword{Text: strings.TrimSpace(kw), MatchType: match})
	}

	for i, adIn := range in.Ads {
		ad, err := BuildAd(adIn)
		if err != nil {
			return ads.AdGroup{}, fmt.Errorf("ad %d in group %q: %w", i+1, in.Name, err)
		}
		group.Ads = append(group.Ads, ad)
	}
	return group, nil
}

// BuildCampaign assembles a full campaign from its input, applying every
// rule engine check on the way. Negative keywords default to broad match.
func BuildCampaign(in CampaignInput) (ads.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return ads.Campaign{}, fmt.Errorf("%w: campaign name is required", ads.ErrInvalidCampaign)
	}
	if len(in.AdGroups) == 0 {
		return ads.Campaign{}, fmt.Errorf("%w: at least one ad group is required", ads.ErrInvalidCampaign)
	}

	bidStrategy := in.BidStrategy
	if bidStrategy == "" {
		bidStrategy = "Maximize Conversions"
	}

	c := ads.Campaign{
		Name:        in.Name,
		Budget:      in.Budget,
		BidStrategy: bidStrategy,
		Countries:   in.Countries,
		States:      in.States,
		Cities:      in.Cities,
		PostalCodes: in.PostalCodes,
		Sitelinks:   in.Sitelinks,
		Callouts:    in.Callouts,
	}

	for _, g := range in.AdGroups {
		group, err := BuildAdGroup(g)
		if err != nil {
			return ads.Campaign{}, err
		}
		c.AdGroups = append(c.AdGroups, group)
	}

	for _, neg := range in.NegativeKeywords {
		if strings.TrimSpace(neg) == "" {
			continue
		}
		c.NegativeKeywords = append(c.NegativeKeywords, ads.Keyword{
			Text:      strings.TrimSpace(neg),
			MatchType: ads.MatchTypeBroad,
		})
	}

	return c, nil
}
