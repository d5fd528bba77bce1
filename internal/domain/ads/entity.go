package ads

import "time"

// BusinessType classifies what a keyword is selling
type BusinessType string

const (
	BusinessTypeProduct BusinessType = "product"
	BusinessTypeService BusinessType = "service"
)

// MatchType controls how closely a search query must match a keyword
type MatchType string

const (
	MatchTypeBroad  MatchType = "Broad"
	MatchTypePhrase MatchType = "Phrase"
	MatchTypeExact  MatchType = "Exact"
)

// AdType identifies the ad format
type AdType string

const (
	AdTypeRSA      AdType = "rsa"
	AdTypeDKI      AdType = "dki"
	AdTypeCallOnly AdType = "call_only"
)

// GeneratedAd is the ready-to-use copy produced for a single keyword
type GeneratedAd struct {
	Headline1    string       `json:"headline1"`
	Headline2    string       `json:"headline2"`
	Headline3    string       `json:"headline3"`
	Description1 string       `json:"description1"`
	Description2 string       `json:"description2"`
	BusinessType BusinessType `json:"businessType"`
}

// Keyword is a search term plus its match settings
type Keyword struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"matchType"`
	MaxCPC    float64   `json:"maxCpc,omitempty"`
}

// Ad is an assembled ad ready for validation and export
type Ad struct {
	Type         AdType   `json:"type"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Path1        string   `json:"path1,omitempty"`
	Path2        string   `json:"path2,omitempty"`
	FinalURL     string   `json:"finalUrl,omitempty"`
	MobileURL    string   `json:"mobileUrl,omitempty"`

	// Call-only fields
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	VerificationURL string `json:"verificationUrl,omitempty"`
	BusinessName    string `json:"businessName,omitempty"`
	PhoneCountry    string `json:"phoneCountry,omitempty"`
}

// AdGroup holds the keywords and ads bidding together
type AdGroup struct {
	Name     string    `json:"name"`
	MaxCPC   float64   `json:"maxCpc"`
	Keywords []Keyword `json:"keywords"`
	Ads      []Ad      `json:"ads"`
}

// Sitelink is an extra link shown under a search ad
type Sitelink struct {
	Text         string `json:"text"`
	Description1 string `json:"description1,omitempty"`
	Description2 string `json:"description2,omitempty"`
	FinalURL     string `json:"finalUrl"`
}

// StructuredSnippet lists values under a predefined header
type StructuredSnippet struct {
	Header string   `json:"header"`
	Values []string `json:"values"`
}

// PriceItem is one entry of a price extension
type PriceItem struct {
	Header      string `json:"header"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Unit        string `json:"unit,omitempty"`
}

// Promotion is a promotion extension
type Promotion struct {
	Target     string `json:"target"`
	PercentOff string `json:"percentOff,omitempty"`
	AmountOff  string `json:"amountOff,omitempty"`
	Occasion   string `json:"occasion,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	FinalURL   string `json:"finalUrl,omitempty"`
}

// ImageAsset is an image attached to the campaign
type ImageAsset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BusinessInfo carries the advertiser identity shown with ads
type BusinessInfo struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Country string `json:"country,omitempty"`
}

// Campaign is the full structure the exporter serializes
type Campaign struct {
	Name             string              `json:"name"`
	Budget           float64             `json:"budget"`
	BidStrategy      string              `json:"bidStrategy"`
	AdGroups         []AdGroup           `json:"adGroups"`
	NegativeKeywords []Keyword           `json:"negativeKeywords,omitempty"`
	Countries        []string            `json:"countries,omitempty"`
	States           []string            `json:"states,omitempty"`
	Cities           []string            `json:"cities,omitempty"`
	PostalCodes      []string            `json:"postalCodes,omitempty"`
	Sitelinks        []Sitelink          `json:"sitelinks,omitempty"`
	Callouts         []string            `json:"callouts,omitempty"`
	Snippets         []StructuredSnippet `json:"snippets,omitempty"`
	Prices           []PriceItem         `json:"prices,omitempty"`
	Promotions       []Promotion         `json:"promotions,omitempty"`
	ImageAssets      []ImageAsset        `json:"imageAssets,omitempty"`
	Business         *BusinessInfo       `json:"business,omitempty"`
}

// Statistics are pure counts over a campaign, no I/O
type Statistics struct {
	AdGroups         int `json:"adGroups"`
	Keywords         int `json:"keywords"`
	Ads              int `json:"ads"`
	NegativeKeywords int `json:"negativeKeywords"`
	Locations        int `json:"locations"`
	Sitelinks        int `json:"sitelinks"`
	Callouts         int `json:"callouts"`
}

// StoredCampaign wraps a Campaign with persistence metadata
type StoredCampaign struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Campaign  Campaign  `json:"campaign"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExportRecord captures one completed CSV export
type ExportRecord struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId,omitempty"`
	Filename   string    `json:"filename"`
	RowCount   int       `json:"rowCount"`
	ByteSize   int       `json:"byteSize"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
