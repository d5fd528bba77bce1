package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adforge/internal/domain/ads"
	"adforge/internal/infrastructure/database"
)

type campaignRepository struct {
	db *database.DB
}

// NewCampaignRepository creates a new campaign repository. Campaign
// structure is stored as a JSON payload; the relational columns carry
// only what the list views need.
func NewCampaignRepository(db *database.DB) ads.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(c *ads.StoredCampaign) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	if c.Name == "" {
		c.Name = c.Campaign.Name
	}

	payload, err := json.Marshal(c.Campaign)
	if err != nil {
		return fmt.Errorf("failed to encode campaign: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO campaigns (id, owner_id, name, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, string(payload), c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *campaignRepository) GetByID(id string) (*ads.StoredCampaign, error) {
	c := &ads.StoredCampaign{}
	var payload string
	err := r.db.QueryRow(
		`SELECT id, owner_id, name, payload, created_at, updated_at
		 FROM campaigns WHERE id = ?`, id,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &payload, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ads.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &c.Campaign); err != nil {
		return nil, fmt.Errorf("failed to decode campaign %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *campaignRepository) ListByOwner(ownerID string) ([]ads.StoredCampaign, error) {
	rows, err := r.db.Query(
		`SELECT id, owner_id, name, payload, created_at, updated_at
		 FROM campaigns WHERE owner_id = ? ORDER BY updated_at DESC`, ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []ads.StoredCampaign
	for rows.Next() {
		var c ads.StoredCampaign
		var payload string
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &payload, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &c.Campaign); err != nil {
			return nil, fmt.Errorf("failed to decode campaign %s: %w", c.ID, err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) Update(c *ads.StoredCampaign) error {
	c.UpdatedAt = time.Now()
	if c.Name == "" {
		c.Name = c.Campaign.Name
	}

	payload, err := json.Marshal(c.Campaign)
	if err != nil {
		return fmt.Errorf("failed to encode campaign: %w", err)
	}

	result, err := r.db.Exec(
		`UPDATE campaigns SET name = ?, payload = ?, updated_at = ? WHERE id = ?`,
		c.Name, string(payload), c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ads.ErrCampaignNotFound
	}
	return nil
}

func (r *campaignRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ads.ErrCampaignNotFound
	}
	return nil
}
