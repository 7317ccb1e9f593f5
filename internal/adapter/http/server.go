package adapthttp

import (
	"net/http"

	"pastebin/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth    *app.AuthService
	pastes  *app.PasteService
	baseURL string
	oidc    OIDCConfig
}

// New creates a Server wired to the given application services. baseURL is
// the externally visible origin used when rendering links.
func New(auth *app.AuthService, pastes *app.PasteService, baseURL string, oidc OIDCConfig) *Server {
	return &Server{auth: auth, pastes: pastes, baseURL: baseURL, oidc: oidc}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)

	mux.HandleFunc("/paste", s.handlePaste)
	mux.HandleFunc("/paste/", s.handleShowPaste)
	mux.HandleFunc("/user", s.handleUserPastes)

	mux.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	return s.loggingMiddleware(mux)
}
