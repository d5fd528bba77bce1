package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"adforge/internal/domain/ads"
	"adforge/internal/infrastructure/database"
)

type exportRepository struct {
	db *database.DB
}

// NewExportRepository creates a new export history repository
func NewExportRepository(db *database.DB) ads.ExportRepository {
	return &exportRepository{db: db}
}

func (r *exportRepository) Create(rec *ads.ExportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()

	var campaignID any
	if rec.CampaignID != "" {
		campaignID = rec.CampaignID
	}

	_, err := r.db.Exec(
		`INSERT INTO exports (id, campaign_id, filename, row_count, byte_size, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, campaignID, rec.Filename, rec.RowCount, rec.ByteSize, rec.CreatedBy, rec.CreatedAt,
	)
	return err
}

func (r *exportRepository) GetByID(id string) (*ads.ExportRecord, error) {
	rec := &ads.ExportRecord{}
	var campaignID sql.NullString
	err := r.db.QueryRow(
		`SELECT id, campaign_id, filename, row_count, byte_size, created_by, created_at
		 FROM exports WHERE id = ?`, id,
	).Scan(&rec.ID, &campaignID, &rec.Filename, &rec.RowCount, &rec.ByteSize, &rec.CreatedBy, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ads.ErrExportNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.CampaignID = campaignID.String
	return rec, nil
}

func (r *exportRepository) ListByUser(userID string) ([]ads.ExportRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, campaign_id, filename, row_count, byte_size, created_by, created_at
		 FROM exports WHERE created_by = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ads.ExportRecord
	for rows.Next() {
		var rec ads.ExportRecord
		var campaignID sql.NullString
		if err := rows.Scan(&rec.ID, &campaignID, &rec.Filename, &rec.RowCount, &rec.ByteSize, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.CampaignID = campaignID.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
