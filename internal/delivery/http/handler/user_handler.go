package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"adforge/internal/application/auth"
	"adforge/internal/domain/user"
)

// UserHandler handles user profile and admin user management
type UserHandler struct {
	authService auth.Service
	userRepo    user.Repository
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService auth.Service, userRepo user.Repository) *UserHandler {
	return &UserHandler{
		authService: authService,
		userRepo:    userRepo,
	}
}

// UpdateProfileRequest represents the request to update user profile
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UpdatePasswordRequest represents the request to change password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// HandleProfile handles GET and PUT on /api/user/profile
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetProfile(w, r)
	case http.MethodPut:
		h.UpdateProfile(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	SendSuccess(w, "", u.ToResponse())
}

// UpdateProfile handles PUT /api/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username != "" && req.Username != u.Username {
		if len(req.Username) < 3 {
			SendError(w, "Username must be at least 3 characters", http.StatusBadRequest)
			return
		}
		existing, _ := h.userRepo.GetByUsername(req.Username)
		if existing != nil && existing.ID != u.ID {
			SendError(w, "Username already taken", http.StatusConflict)
			return
		}
		u.Username = req.Username
	}

	if req.Email != "" && req.Email != u.Email {
		existing, _ := h.userRepo.GetByEmail(req.Email)
		if existing != nil && existing.ID != u.ID {
			SendError(w, "Email already taken", http.StatusConflict)
			return
		}
		u.Email = req.Email
	}

	if err := h.userRepo.Update(u); err != nil {
		SendError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "Profile updated", u.ToResponse())
}

// UpdatePassword handles PUT /api/user/password
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if u.AuthProvider != user.AuthProviderLocal {
		SendError(w, "Password is managed by your identity provider", http.StatusBadRequest)
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !h.authService.CheckPassword(u.Password, req.CurrentPassword) {
		SendError(w, "Current password is incorrect", http.StatusUnauthorized)
		return
	}

	if len(req.NewPassword) < 6 {
		SendError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	hashed, err := h.authService.HashPassword(req.NewPassword)
	if err != nil {
		SendError(w, "Failed to update password", http.StatusInternalServerError)
		return
	}
	u.Password = hashed

	if err := h.userRepo.Update(u); err != nil {
		SendError(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "Password updated", nil)
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.userRepo.List()
	if err != nil {
		SendError(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	SendSuccess(w, "", responses)
}

// ManageUser handles PUT and DELETE /api/admin/users/{id}
func (h *UserHandler) ManageUser(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/users/")
	if id == "" {
		SendError(w, "User ID required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.updateUser(w, r, id)
	case http.MethodDelete:
		h.deleteUser(w, r, id)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request, id string) {
	target, err := h.userRepo.GetByID(id)
	if err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Role != "" {
		switch req.Role {
		case user.RoleAdmin, user.RoleUser, user.RoleViewer:
			target.Role = req.Role
		default:
			SendError(w, "Invalid role", http.StatusBadRequest)
			return
		}
	}
	if req.Email != "" {
		target.Email = req.Email
	}
	if req.Username != "" {
		target.Username = req.Username
	}

	if err := h.userRepo.Update(target); err != nil {
		SendError(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "User updated", target.ToResponse())
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request, id string) {
	caller := GetUserFromContext(r.Context())
	if caller != nil && caller.ID == id {
		SendError(w, "Cannot delete your own account", http.StatusBadRequest)
		return
	}

	if err := h.userRepo.Delete(id); err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	SendSuccess(w, "User deleted", nil)
}
