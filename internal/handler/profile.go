package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tmarkov/authhub/internal/domain"
	"github.com/tmarkov/authhub/internal/service"
)

// ProfileHandler handles profile retrieval for authenticated users.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleProfile returns the authenticated user's joined profile record.
// GET /api/user/profile
// Response: {"name":"...","email":"...","address":null,"phone":null,"bio":null}
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token outlived its user record.
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("get profile", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}
