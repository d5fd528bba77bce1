package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"adforge/internal/application/auth"
	authDomain "adforge/internal/domain/auth"
	"adforge/internal/domain/user"
	"adforge/internal/infrastructure/config"
)

// GoogleUserInfo represents the user info returned by Google
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// OAuthHandler handles Google OAuth sign-in
type OAuthHandler struct {
	oauthConfig *oauth2.Config
	authService auth.Service
	userRepo    user.Repository
	frontendURL string
	tokenExpiry time.Duration
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(cfg *config.Config, authService auth.Service, userRepo user.Repository) *OAuthHandler {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.BaseURL + "/api/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &OAuthHandler{
		oauthConfig: oauthConfig,
		authService: authService,
		userRepo:    userRepo,
		frontendURL: cfg.FrontendURL,
		tokenExpiry: time.Duration(cfg.TokenExpiry) * time.Hour,
	}
}

// GoogleLogin redirects to Google OAuth login page
func (h *OAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig.ClientID == "" {
		SendError(w, "Google OAuth not configured", http.StatusServiceUnavailable)
		return
	}

	state := uuid.New().String()

	// Store state in cookie for verification
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   strings.HasPrefix(h.frontendURL, "https"),
		MaxAge:   600, // 10 minutes
		SameSite: http.SameSiteLaxMode,
	})

	url := h.oauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback handles the OAuth callback from Google
func (h *OAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		h.redirectWithError(w, r, "Invalid state")
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		h.redirectWithError(w, r, "State mismatch")
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.redirectWithError(w, r, errMsg)
		return
	}

	code := r.URL.Query().Get("code")
	token, err := h.oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		h.redirectWithError(w, r, "Failed to exchange token")
		return
	}

	googleUser, err := h.getGoogleUserInfo(token.AccessToken)
	if err != nil {
		h.redirectWithError(w, r, "Failed to get user info")
		return
	}

	u, err := h.findOrCreateGoogleUser(googleUser)
	if err != nil {
		h.redirectWithError(w, r, "Failed to create user")
		return
	}

	sessionToken, err := h.authService.GenerateToken()
	if err != nil {
		h.redirectWithError(w, r, "Failed to generate token")
		return
	}

	session := &authDomain.Session{
		UserID:    u.ID,
		Token:     sessionToken,
		ExpiresAt: time.Now().Add(h.tokenExpiry),
	}
	if err := h.authService.CreateSession(session); err != nil {
		h.redirectWithError(w, r, "Failed to create session")
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s", h.frontendURL, url.QueryEscape(sessionToken))
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// GoogleStatus handles GET /api/auth/google/status
func (h *OAuthHandler) GoogleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	SendSuccess(w, "", map[string]any{
		"enabled": h.oauthConfig.ClientID != "",
	})
}

func (h *OAuthHandler) getGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + url.QueryEscape(accessToken))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (h *OAuthHandler) findOrCreateGoogleUser(info *GoogleUserInfo) (*user.User, error) {
	// Existing Google account
	if u, err := h.userRepo.GetByGoogleID(info.ID); err == nil {
		u.AvatarURL = info.Picture
		h.userRepo.Update(u)
		return u, nil
	}

	// Existing local account with the same email gets linked
	if u, err := h.userRepo.GetByEmail(info.Email); err == nil {
		u.GoogleID = info.ID
		u.AuthProvider = user.AuthProviderGoogle
		u.AvatarURL = info.Picture
		if err := h.userRepo.Update(u); err != nil {
			return nil, err
		}
		return u, nil
	}

	username := strings.Split(info.Email, "@")[0]
	if existing, _ := h.userRepo.GetByUsername(username); existing != nil {
		username = username + "-" + uuid.New().String()[:8]
	}

	newUser := &user.User{
		Email:        info.Email,
		Username:     username,
		Password:     "",
		Role:         user.RoleUser,
		AuthProvider: user.AuthProviderGoogle,
		GoogleID:     info.ID,
		AvatarURL:    info.Picture,
	}
	if err := h.userRepo.Create(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (h *OAuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	redirect := fmt.Sprintf("%s/auth/callback?error=%s", h.frontendURL, url.QueryEscape(msg))
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}
