package export

// editorColumns is the canonical, ordered header of the Google Ads Editor
// bulk-import schema this exporter targets. Column names and positions
// are part of the contract with the importing tool; every emitted row
// carries exactly one field per column, in this order.
var editorColumns = []string{
	// Campaign settings
	"Campaign",
	"Labels",
	"Budget",
	"Budget type",
	"Campaign Type",
	"Networks",
	"Languages",
	"Bid Strategy Type",
	"Bid Strategy Name",
	"Enhanced CPC",
	"Viewable CPM",
	"CPM",
	"Target CPA",
	"Target ROAS",
	"Maximize Conversion Value",
	"Start Date",
	"End Date",
	"Ad Schedule",
	"Ad rotation",
	"Delivery method",
	"Targeting method",
	"Exclusion method",
	"Audience targeting",
	"Flexible Reach",
	"Campaign Status",
	"Campaign Subtype",
	"Merchant Identifier",
	"Feed Label",
	"Tracking template",
	"Final URL suffix",

	// Campaign targeting modifiers
	"Device",
	"Device Bid Modifier",
	"Radius",
	"Radius Unit",
	"Proximity Coordinates",
	"Excluded Location",
	"Ad Schedule Bid Modifier",
	"Content Bid Modifier",

	// Ad group settings
	"Ad Group",
	"Max CPC",
	"Max CPM",
	"Target CPV",
	"Percent CPC",
	"Target CPM",
	"Desktop Bid Modifier",
	"Mobile Bid Modifier",
	"Tablet Bid Modifier",
	"Ad Group Type",

	// Keyword settings
	"Keyword",
	"Criterion Type",
	"First Page Bid",
	"Top of Page Bid",
	"First Position Bid",
	"Quality Score",
	"Keyword Final URL",
	"Keyword Mobile Final URL",
	"Keyword Tracking Template",
	"Keyword Custom Parameters",

	// Ad fields
	"Ad Type",
	"Headline 1",
	"Headline 2",
	"Headline 3",
	"Headline 4",
	"Headline 5",
	"Headline 6",
	"Headline 7",
	"Headline 8",
	"Headline 9",
	"Headline 10",
	"Headline 11",
	"Headline 12",
	"Headline 13",
	"Headline 14",
	"Headline 15",
	"Headline 1 Position",
	"Headline 2 Position",
	"Headline 3 Position",
	"Headline 4 Position",
	"Headline 5 Position",
	"Headline 6 Position",
	"Headline 7 Position",
	"Headline 8 Position",
	"Headline 9 Position",
	"Headline 10 Position",
	"Headline 11 Position",
	"Headline 12 Position",
	"Headline 13 Position",
	"Headline 14 Position",
	"Headline 15 Position",
	"Description 1",
	"Description 2",
	"Description 3",
	"Description 4",
	"Description 1 Position",
	"Description 2 Position",
	"Description 3 Position",
	"Description 4 Position",
	"Path 1",
	"Path 2",
	"Final URL",
	"Mobile Final URL",
	"Display URL",
	"Phone Number",
	"Verification URL",
	"Business Name",
	"Country of Phone",
	"Call Reporting",

	// Ad tracking
	"Ad Tracking Template",
	"Ad Final URL Suffix",
	"Ad Custom Parameters",
	"Long Headline",
	"Call to Action Text",
	"Ad Name",
	"Video ID",
	"Image ID",

	// Negative keywords
	"Campaign Negative Keyword",

	// Location targeting
	"Location",
	"Location ID",
	"Country Code",
	"State",
	"City",
	"Postal Code",
	"Location Bid Modifier",

	// Audiences and demographics
	"Audience",
	"Audience ID",
	"Age",
	"Gender",
	"Income",
	"Parental Status",
	"Remarketing List",
	"Interest Category",
	"Topic",
	"Placement",

	// Sitelink assets
	"Sitelink Text",
	"Sitelink Description Line 1",
	"Sitelink Description Line 2",
	"Sitelink Final URL",
	"Sitelink Mobile Final URL",
	"Sitelink Start Date",
	"Sitelink End Date",
	"Sitelink Schedule",
	"Sitelink Tracking Template",
	"Sitelink Language",

	// Callout assets
	"Callout Text",
	"Callout Start Date",
	"Callout End Date",
	"Callout Schedule",

	// Structured snippet assets
	"Structured Snippet Header",
	"Structured Snippet Values",

	// Price assets
	"Price Extension Type",
	"Price Qualifier",
	"Price Extension Language",
	"Price Tracking Template",
	"Item 1 Header",
	"Item 1 Description",
	"Item 1 Price",
	"Item 1 Unit",
	"Item 2 Header",
	"Item 2 Description",
	"Item 2 Price",
	"Item 2 Unit",
	"Item 3 Header",
	"Item 3 Description",
	"Item 3 Price",
	"Item 3 Unit",

	// Promotion assets
	"Promotion Target",
	"Discount Modifier",
	"Percent Off",
	"Money Amount Off",
	"Promotion Start",
	"Promotion End",
	"Occasion",
	"Promotion Final URL",

	// Image assets
	"Image Asset Name",
	"Image URL",
	"Image Asset Type",
	"Square Image URL",

	// Business information
	"Business Name Asset",
	"Business Logo URL",
	"Business Country",

	// Row status
	"Status",
	"Approval Status",
	"Comment",
}

// columnIndex maps a column name to its position, built once at init.
var columnIndex = func() map[string]int {
	idx := make(map[string]int, len(editorColumns))
	for i, name := range editorColumns {
		idx[name] = i
	}
	return idx
}()

// ColumnCount is the fixed width of every exported row.
var ColumnCount = len(editorColumns)
