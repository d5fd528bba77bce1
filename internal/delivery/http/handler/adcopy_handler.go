package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"adforge/internal/application/assembler"
	"adforge/internal/application/copygen"
	"adforge/internal/application/rules"
	"adforge/internal/domain/ads"
)

// AdCopyHandler exposes the copy generator and rule engine
type AdCopyHandler struct {
	generator *copygen.Generator
}

// NewAdCopyHandler creates a new ad copy handler
func NewAdCopyHandler(generator *copygen.Generator) *AdCopyHandler {
	return &AdCopyHandler{generator: generator}
}

// GenerateRequest asks for smart ad copy for one keyword
type GenerateRequest struct {
	Keyword string `json:"keyword"`
}

// VariationsRequest asks for headline or description variations
type VariationsRequest struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count,omitempty"`
	Unique  bool   `json:"unique,omitempty"`
}

// ValidateRequest carries an ad or DKI text to validate
type ValidateRequest struct {
	Type ads.AdType         `json:"type,omitempty"`
	Ad   *assembler.AdInput `json:"ad,omitempty"`
	Text string             `json:"text,omitempty"`
}

// Generate handles POST /api/adcopy/generate
func (h *AdCopyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		SendError(w, "Keyword is required", http.StatusBadRequest)
		return
	}

	SendSuccess(w, "", h.generator.GenerateSmartAdCopy(req.Keyword))
}

// Headlines handles POST /api/adcopy/headlines
func (h *AdCopyHandler) Headlines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req VariationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		SendError(w, "Keyword is required", http.StatusBadRequest)
		return
	}

	headlines := h.generator.GenerateHeadlineVariations(req.Keyword, req.Count)
	if req.Unique {
		headlines = rules.EnsureUniqueHeadlines(headlines)
	}
	SendSuccess(w, "", headlines)
}

// Descriptions handles POST /api/adcopy/descriptions
func (h *AdCopyHandler) Descriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req VariationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		SendError(w, "Keyword is required", http.StatusBadRequest)
		return
	}

	SendSuccess(w, "", h.generator.GenerateDescriptionVariations(req.Keyword, req.Count))
}

// Validate handles POST /api/adcopy/validate. RSA and call-only requests
// carry an ad; DKI requests carry the text to check.
func (h *AdCopyHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Type {
	case ads.AdTypeDKI:
		if req.Text == "" {
			SendError(w, "Text is required for DKI validation", http.StatusBadRequest)
			return
		}
		SendSuccess(w, "", rules.ValidateDKISyntax(req.Text))
	case ads.AdTypeCallOnly:
		if req.Ad == nil {
			SendError(w, "Ad is required", http.StatusBadRequest)
			return
		}
		SendSuccess(w, "", rules.ValidateCallOnlyAd(adFromInput(*req.Ad)))
	case ads.AdTypeRSA, "":
		if req.Ad == nil {
			SendError(w, "Ad is required", http.StatusBadRequest)
			return
		}
		SendSuccess(w, "", rules.ValidateRSA(adFromInput(*req.Ad)))
	default:
		SendError(w, "Unknown ad type", http.StatusBadRequest)
	}
}

// adFromInput maps raw input onto an Ad without formatting, so the
// validators see exactly what the caller sent.
func adFromInput(in assembler.AdInput) ads.Ad {
	return ads.Ad{
		Type:            in.Type,
		Headlines:       in.Headlines,
		Descriptions:    in.Descriptions,
		Path1:           in.Path1,
		Path2:           in.Path2,
		FinalURL:        in.FinalURL,
		MobileURL:       in.MobileURL,
		PhoneNumber:     in.PhoneNumber,
		VerificationURL: in.VerificationURL,
		BusinessName:    in.BusinessName,
		PhoneCountry:    in.PhoneCountry,
	}
}
