package ads

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrExportNotFound   = errors.New("export not found")
	ErrInvalidCampaign  = errors.New("invalid campaign")
	ErrInvalidAd        = errors.New("invalid ad")
	ErrEmptyKeyword     = errors.New("keyword is empty")
)
