package handler

import (
	"net/http"

	"github.com/tmarkov/authhub/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, profiles *service.ProfileService) {
	authHandler := NewAuthHandler(auth)
	profileHandler := NewProfileHandler(profiles)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("GET /api/user/profile", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleProfile)))
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /", HandleHome)
}
