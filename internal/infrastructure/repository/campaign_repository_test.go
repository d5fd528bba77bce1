package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/internal/domain/ads"
	"adforge/internal/domain/user"
	"adforge/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestUser(t *testing.T, db *database.DB) *user.User {
	t.Helper()
	u := &user.User{
		Email:    "owner@example.com",
		Username: "owner",
		Password: "hashed",
		Role:     user.RoleUser,
	}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}

func testCampaign() ads.Campaign {
	return ads.Campaign{
		Name:        "Summer Plumbing",
		Budget:      50,
		BidStrategy: "Maximize Conversions",
		AdGroups: []ads.AdGroup{{
			Name:     "Plumbing",
			MaxCPC:   1.5,
			Keywords: []ads.Keyword{{Text: "plumber repair", MatchType: ads.MatchTypeBroad}},
			Ads: []ads.Ad{{
				Type:         ads.AdTypeRSA,
				Headlines:    []string{"Professional Plumber", "Emergency Service 24/7", "Call Our Team Today"},
				Descriptions: []string{"Licensed and insured plumbers ready to help.", "Same day appointments available in your area."},
			}},
		}},
		NegativeKeywords: []ads.Keyword{{Text: "free", MatchType: ads.MatchTypeBroad}},
		Countries:        []string{"US"},
	}
}

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db)
	repo := NewCampaignRepository(db)

	stored := &ads.StoredCampaign{OwnerID: owner.ID, Campaign: testCampaign()}
	require.NoError(t, repo.Create(stored))
	require.NotEmpty(t, stored.ID)
	assert.Equal(t, "Summer Plumbing", stored.Name)

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Equal(t, stored.Campaign, got.Campaign)
}

func TestCampaignRepositoryListByOwner(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db)
	repo := NewCampaignRepository(db)

	first := &ads.StoredCampaign{OwnerID: owner.ID, Campaign: testCampaign()}
	require.NoError(t, repo.Create(first))

	second := testCampaign()
	second.Name = "Winter Plumbing"
	require.NoError(t, repo.Create(&ads.StoredCampaign{OwnerID: owner.ID, Campaign: second}))

	list, err := repo.ListByOwner(owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.ListByOwner("someone-else")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCampaignRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db)
	repo := NewCampaignRepository(db)

	stored := &ads.StoredCampaign{OwnerID: owner.ID, Campaign: testCampaign()}
	require.NoError(t, repo.Create(stored))

	stored.Campaign.Budget = 75
	stored.Name = ""
	require.NoError(t, repo.Update(stored))
	assert.Equal(t, "Summer Plumbing", stored.Name)

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.Campaign.Budget)

	require.NoError(t, repo.Delete(stored.ID))
	_, err = repo.GetByID(stored.ID)
	assert.ErrorIs(t, err, ads.ErrCampaignNotFound)
	assert.ErrorIs(t, repo.Delete(stored.ID), ads.ErrCampaignNotFound)
	assert.ErrorIs(t, repo.Update(stored), ads.ErrCampaignNotFound)
}

func TestExportRepository(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db)
	repo := NewExportRepository(db)

	rec := &ads.ExportRecord{
		Filename:  "summer_plumbing_20260829.csv",
		RowCount:  6,
		ByteSize:  2048,
		CreatedBy: owner.ID,
	}
	require.NoError(t, repo.Create(rec))
	require.NotEmpty(t, rec.ID)

	got, err := repo.GetByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Filename, got.Filename)
	assert.Equal(t, "", got.CampaignID)

	list, err := repo.ListByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ads.ErrExportNotFound)
}
