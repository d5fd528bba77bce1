package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"adforge/internal/application/export"
	"adforge/internal/domain/ads"
)

// ExportHandler produces Google Ads Editor CSV downloads and keeps the
// export history
type ExportHandler struct {
	campaignRepo ads.CampaignRepository
	exportRepo   ads.ExportRepository
}

// NewExportHandler creates a new export handler
func NewExportHandler(campaignRepo ads.CampaignRepository, exportRepo ads.ExportRepository) *ExportHandler {
	return &ExportHandler{
		campaignRepo: campaignRepo,
		exportRepo:   exportRepo,
	}
}

// ExportCampaign handles POST /api/export/campaigns/{id}
func (h *ExportHandler) ExportCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/export/campaigns/")
	if id == "" {
		SendError(w, "Campaign ID required", http.StatusBadRequest)
		return
	}

	stored, err := h.campaignRepo.GetByID(id)
	if err != nil {
		SendError(w, "Campaign not found", http.StatusNotFound)
		return
	}
	if stored.OwnerID != u.ID && !u.Role.CanManageUsers() {
		SendError(w, "Forbidden", http.StatusForbidden)
		return
	}

	h.sendCSV(w, stored.Campaign, stored.ID, u.ID)
}

// ExportLegacy handles POST /api/export/legacy: a loosely-typed legacy
// campaign payload is converted and exported in one step.
func (h *ExportHandler) ExportLegacy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var legacy map[string]any
	if err := json.NewDecoder(r.Body).Decode(&legacy); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	campaign := export.ConvertToV5Format(legacy)
	if campaign.Name == "" {
		SendError(w, "Campaign name is required", http.StatusUnprocessableEntity)
		return
	}

	h.sendCSV(w, campaign, "", u.ID)
}

// ListExports handles GET /api/exports
func (h *ExportHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	records, err := h.exportRepo.ListByUser(u.ID)
	if err != nil {
		SendError(w, "Failed to list exports", http.StatusInternalServerError)
		return
	}
	SendSuccess(w, "", records)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sendCSV writes the CSV as a file download and records the export.
// History write failures do not block the download.
func (h *ExportHandler) sendCSV(w http.ResponseWriter, campaign ads.Campaign, campaignID, userID string) {
	csv := export.GenerateMasterCSV(campaign)
	filename := exportFilename(campaign.Name)

	h.exportRepo.Create(&ads.ExportRecord{
		CampaignID: campaignID,
		Filename:   filename,
		RowCount:   export.RowCount(campaign),
		ByteSize:   len(csv),
		CreatedBy:  userID,
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

func exportFilename(campaignName string) string {
	name := unsafeFilenameChars.ReplaceAllString(campaignName, "_")
	if name == "" {
		name = "campaign"
	}
	return fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
}
