package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"adforge/internal/application/assembler"
	"adforge/internal/application/export"
	"adforge/internal/domain/ads"
)

// CampaignHandler handles campaign CRUD and statistics
type CampaignHandler struct {
	campaignRepo ads.CampaignRepository
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignRepo ads.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaignRepo: campaignRepo}
}

// HandleCampaigns handles GET (list) and POST (create) on /api/campaigns
func (h *CampaignHandler) HandleCampaigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCampaignByID handles /api/campaigns/{id} and /api/campaigns/{id}/stats
func (h *CampaignHandler) HandleCampaignByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/campaigns/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		SendError(w, "Campaign ID required", http.StatusBadRequest)
		return
	}

	switch sub {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "stats":
		h.stats(w, r, id)
	default:
		SendError(w, "Not found", http.StatusNotFound)
	}
}

func (h *CampaignHandler) create(w http.ResponseWriter, r *http.Request) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input assembler.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	campaign, err := assembler.BuildCampaign(input)
	if err != nil {
		if errors.Is(err, ads.ErrInvalidCampaign) || errors.Is(err, ads.ErrInvalidAd) || errors.Is(err, ads.ErrEmptyKeyword) {
			SendError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		SendError(w, "Failed to build campaign", http.StatusInternalServerError)
		return
	}

	stored := &ads.StoredCampaign{
		OwnerID:  u.ID,
		Name:     campaign.Name,
		Campaign: campaign,
	}
	if err := h.campaignRepo.Create(stored); err != nil {
		SendError(w, "Failed to save campaign", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "Campaign created", stored)
}

func (h *CampaignHandler) list(w http.ResponseWriter, r *http.Request) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaigns, err := h.campaignRepo.ListByOwner(u.ID)
	if err != nil {
		SendError(w, "Failed to list campaigns", http.StatusInternalServerError)
		return
	}
	SendSuccess(w, "", campaigns)
}

// getOwned loads a campaign and checks the caller may see it. Admins can
// reach any campaign.
func (h *CampaignHandler) getOwned(w http.ResponseWriter, r *http.Request, id string) *ads.StoredCampaign {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	stored, err := h.campaignRepo.GetByID(id)
	if err != nil {
		SendError(w, "Campaign not found", http.StatusNotFound)
		return nil
	}
	if stored.OwnerID != u.ID && !u.Role.CanManageUsers() {
		SendError(w, "Forbidden", http.StatusForbidden)
		return nil
	}
	return stored
}

func (h *CampaignHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	if stored := h.getOwned(w, r, id); stored != nil {
		SendSuccess(w, "", stored)
	}
}

func (h *CampaignHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	stored := h.getOwned(w, r, id)
	if stored == nil {
		return
	}

	var input assembler.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	campaign, err := assembler.BuildCampaign(input)
	if err != nil {
		SendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	stored.Campaign = campaign
	stored.Name = campaign.Name
	if err := h.campaignRepo.Update(stored); err != nil {
		SendError(w, "Failed to update campaign", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "Campaign updated", stored)
}

func (h *CampaignHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	stored := h.getOwned(w, r, id)
	if stored == nil {
		return
	}

	if err := h.campaignRepo.Delete(id); err != nil {
		SendError(w, "Failed to delete campaign", http.StatusInternalServerError)
		return
	}
	SendSuccess(w, "Campaign deleted", nil)
}

func (h *CampaignHandler) stats(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stored := h.getOwned(w, r, id)
	if stored == nil {
		return
	}
	SendSuccess(w, "", export.GetCSVStatistics(stored.Campaign))
}
