package router

import (
	"net/http"

	"go.uber.org/zap"

	"adforge/internal/application/auth"
	"adforge/internal/delivery/http/handler"
	"adforge/internal/delivery/http/middleware"
	"adforge/internal/domain/user"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth     *handler.AuthHandler
	OAuth    *handler.OAuthHandler
	User     *handler.UserHandler
	AdCopy   *handler.AdCopyHandler
	Campaign *handler.CampaignHandler
	Export   *handler.ExportHandler
}

// Setup configures all routes for the application
func Setup(handlers Handlers, authService auth.Service, corsConfig middleware.CORSConfig, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Middleware helpers
	cors := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.CORSWithConfig(corsConfig, h)
	}
	logged := middleware.Logging(logger)
	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RequireRole(user.RoleAdmin)
	canEdit := middleware.RequireRole(user.RoleAdmin, user.RoleUser)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// ==================
	// Auth routes (public)
	// ==================
	mux.HandleFunc("/api/auth/register", chain(handlers.Auth.Register, logged, cors))
	mux.HandleFunc("/api/auth/login", chain(handlers.Auth.Login, logged, cors))
	mux.HandleFunc("/api/auth/logout", chain(handlers.Auth.Logout, logged, cors, authRequired))
	mux.HandleFunc("/api/auth/me", chain(handlers.Auth.Me, logged, cors, authRequired))

	// ==================
	// Google OAuth routes (public)
	// ==================
	if handlers.OAuth != nil {
		mux.HandleFunc("/api/auth/google", chain(handlers.OAuth.GoogleLogin, logged, cors))
		mux.HandleFunc("/api/auth/google/callback", chain(handlers.OAuth.GoogleCallback, logged))
		mux.HandleFunc("/api/auth/google/status", chain(handlers.OAuth.GoogleStatus, logged, cors))
	}

	// ==================
	// User routes (protected)
	// ==================
	mux.HandleFunc("/api/user/profile", chain(handlers.User.HandleProfile, logged, cors, authRequired))
	mux.HandleFunc("/api/user/password", chain(handlers.User.UpdatePassword, logged, cors, authRequired))

	// ==================
	// Ad copy routes (protected)
	// ==================
	mux.HandleFunc("/api/adcopy/generate", chain(handlers.AdCopy.Generate, logged, cors, authRequired))
	mux.HandleFunc("/api/adcopy/headlines", chain(handlers.AdCopy.Headlines, logged, cors, authRequired))
	mux.HandleFunc("/api/adcopy/descriptions", chain(handlers.AdCopy.Descriptions, logged, cors, authRequired))
	mux.HandleFunc("/api/adcopy/validate", chain(handlers.AdCopy.Validate, logged, cors, authRequired))

	// ==================
	// Campaign routes (protected)
	// ==================
	mux.HandleFunc("/api/campaigns", chain(handlers.Campaign.HandleCampaigns, logged, cors, authRequired, canEdit))
	mux.HandleFunc("/api/campaigns/", chain(handlers.Campaign.HandleCampaignByID, logged, cors, authRequired))

	// ==================
	// Export routes (protected)
	// ==================
	mux.HandleFunc("/api/export/campaigns/", chain(handlers.Export.ExportCampaign, logged, cors, authRequired, canEdit))
	mux.HandleFunc("/api/export/legacy", chain(handlers.Export.ExportLegacy, logged, cors, authRequired, canEdit))
	mux.HandleFunc("/api/exports", chain(handlers.Export.ListExports, logged, cors, authRequired))

	// ==================
	// Admin routes
	// ==================
	mux.HandleFunc("/api/admin/users", chain(handlers.User.ListUsers, logged, cors, authRequired, adminOnly))
	mux.HandleFunc("/api/admin/users/", chain(handlers.User.ManageUser, logged, cors, authRequired, adminOnly))

	// Health check
	mux.HandleFunc("/api/health", chain(func(w http.ResponseWriter, r *http.Request) {
		handler.SendSuccess(w, "ok", nil)
	}, cors))

	return mux
}
