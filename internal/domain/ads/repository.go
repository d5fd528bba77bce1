package ads

// CampaignRepository defines the contract for campaign storage operations
type CampaignRepository interface {
	Create(c *StoredCampaign) error
	GetByID(id string) (*StoredCampaign, error)
	ListByOwner(ownerID string) ([]StoredCampaign, error)
	Update(c *StoredCampaign) error
	Delete(id string) error
}

// ExportRepository defines the contract for export history storage
type ExportRepository interface {
	Create(rec *ExportRecord) error
	GetByID(id string) (*ExportRecord, error)
	ListByUser(userID string) ([]ExportRecord, error)
}
