package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/internal/domain/ads"
)

func validAdInput() AdInput {
	return AdInput{
		Type:         ads.AdTypeRSA,
		Headlines:    []string{"Professional Plumber", "Emergency Service 24/7", "Call Our Team Today"},
		Descriptions: []string{"Licensed and insured plumbers ready to help.", "Same day appointments available in your area."},
		FinalURL:     "https://example.com",
	}
}

func TestBuildAd(t *testing.T) {
	t.Run("valid rsa", func(t *testing.T) {
		ad, err := BuildAd(validAdInput())
		require.NoError(t, err)
		assert.Equal(t, ads.AdTypeRSA, ad.Type)
		assert.Len(t, ad.Headlines, 3)
		assert.Len(t, ad.Descriptions, 2)
	})

	t.Run("empty type defaults to rsa", func(t *testing.T) {
		in := validAdInput()
		in.Type = ""
		ad, err := BuildAd(in)
		require.NoError(t, err)
		assert.Equal(t, ads.AdTypeRSA, ad.Type)
	})

	t.Run("headlines formatted and deduplicated", func(t *testing.T) {
		in := validAdInput()
		in.Headlines = []string{
			"Professional Plumber!!",
			"professional plumber",
			"Emergency Service 24/7",
			"Call Our Team Today",
		}
		ad, err := BuildAd(in)
		require.NoError(t, err)
		assert.Equal(t, []string{"Professional Plumber!", "Emergency Service 24/7", "Call Our Team Today"}, ad.Headlines)
	})

	t.Run("dedupe can push count below minimum", func(t *testing.T) {
		in := validAdInput()
		in.Headlines = []string{"Buy Shoes Now", "buy shoes now!", "Buy Shoes Now!!"}
		_, err := BuildAd(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ads.ErrInvalidAd)
		assert.Contains(t, err.Error(), "headline count")
	})

	t.Run("call only requires phone and verification url", func(t *testing.T) {
		in := AdInput{
			Type:         ads.AdTypeCallOnly,
			Headlines:    []string{"Call Now For Service"},
			Descriptions: []string{"Speak with a licensed plumber right away."},
		}
		_, err := BuildAd(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ads.ErrInvalidAd)

		in.PhoneNumber = "5551234567"
		in.VerificationURL = "https://example.com"
		ad, err := BuildAd(in)
		require.NoError(t, err)
		assert.Equal(t, ads.AdTypeCallOnly, ad.Type)
	})

	t.Run("dki headline with bad token rejected", func(t *testing.T) {
		in := validAdInput()
		in.Type = ads.AdTypeDKI
		in.Headlines = []string{"{KeyWord} Deals", "Emergency Service 24/7", "Call Our Team Today"}
		_, err := BuildAd(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing a default")
	})

	t.Run("unknown ad type", func(t *testing.T) {
		in := validAdInput()
		in.Type = "banner"
		_, err := BuildAd(in)
		assert.ErrorIs(t, err, ads.ErrInvalidAd)
	})
}

func TestBuildAdGroup(t *testing.T) {
	t.Run("defaults to broad match", func(t *testing.T) {
		group, err := BuildAdGroup(AdGroupInput{
			Name:     "Plumbing",
			MaxCPC:   1.5,
			Keywords: []string{"plumber repair", " emergency plumber "},
			Ads:      []AdInput{validAdInput()},
		})
		require.NoError(t, err)
		require.Len(t, group.Keywords, 2)
		assert.Equal(t, "emergency plumber", group.Keywords[1].Text)
		for _, kw := range group.Keywords {
			assert.Equal(t, ads.MatchTypeBroad, kw.MatchType)
		}
	})

	t.Run("explicit match type", func(t *testing.T) {
		group, err := BuildAdGroup(AdGroupInput{
			Name:     "Plumbing",
			Keywords: []string{"plumber repair"},
			Match:    string(ads.MatchTypeExact),
		})
		require.NoError(t, err)
		assert.Equal(t, ads.MatchTypeExact, group.Keywords[0].MatchType)
	})

	t.Run("unknown match type", func(t *testing.T) {
		_, err := BuildAdGroup(AdGroupInput{Name: "Plumbing", Match: "fuzzy"})
		assert.ErrorIs(t, err, ads.ErrInvalidCampaign)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := BuildAdGroup(AdGroupInput{Keywords: []string{"plumber"}})
		assert.ErrorIs(t, err, ads.ErrInvalidCampaign)
	})

	t.Run("blank keyword", func(t *testing.T) {
		_, err := BuildAdGroup(AdGroupInput{Name: "Plumbing", Keywords: []string{"   "}})
		assert.ErrorIs(t, err, ads.ErrEmptyKeyword)
	})

	t.Run("invalid ad fails the group", func(t *testing.T) {
		bad := validAdInput()
		bad.Headlines = bad.Headlines[:1]
		_, err := BuildAdGroup(AdGroupInput{Name: "Plumbing", Ads: []AdInput{bad}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ads.ErrInvalidAd)
		assert.Contains(t, err.Error(), `group "Plumbing"`)
	})
}

func TestBuildCampaign(t *testing.T) {
	base := CampaignInput{
		Name:   "Summer Plumbing",
		Budget: 50,
		AdGroups: []AdGroupInput{{
			Name:     "Plumbing",
			Keywords: []string{"plumber repair"},
			Ads:      []AdInput{validAdInput()},
		}},
	}

	t.Run("defaults applied", func(t *testing.T) {
		c, err := BuildCampaign(base)
		require.NoError(t, err)
		assert.Equal(t, "Maximize Conversions", c.BidStrategy)
		assert.Equal(t, 50.0, c.Budget)
		require.Len(t, c.AdGroups, 1)
	})

	t.Run("negative keywords trimmed, broad match, blanks dropped", func(t *testing.T) {
		in := base
		in.NegativeKeywords = []string{" free ", "", "diy"}
		c, err := BuildCampaign(in)
		require.NoError(t, err)
		require.Len(t, c.NegativeKeywords, 2)
		assert.Equal(t, "free", c.NegativeKeywords[0].Text)
		assert.Equal(t, ads.MatchTypeBroad, c.NegativeKeywords[0].MatchType)
	})

	t.Run("name required", func(t *testing.T) {
		in := base
		in.Name = "  "
		_, err := BuildCampaign(in)
		assert.ErrorIs(t, err, ads.ErrInvalidCampaign)
	})

	t.Run("ad groups required", func(t *testing.T) {
		in := base
		in.AdGroups = nil
		_, err := BuildCampaign(in)
		assert.ErrorIs(t, err, ads.ErrInvalidCampaign)
	})

	t.Run("bad group fails the campaign", func(t *testing.T) {
		in := base
		in.AdGroups = []AdGroupInput{{Name: "Plumbing", Keywords: []string{" "}}}
		_, err := BuildCampaign(in)
		assert.ErrorIs(t, err, ads.ErrEmptyKeyword)
	})
}
