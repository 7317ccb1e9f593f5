// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"pastebin/internal/app"
)

// sessionCookie is the bearer credential carried by clients.
const sessionCookie = "auth_token"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token, err := s.auth.Register(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, app.ErrDuplicateUser) {
		writeHTML(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.SessionTTL / time.Second),
	})

	writeHTML(w, http.StatusOK, "Logged in")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token, err := s.auth.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, app.ErrInvalidCredentials) {
		// Missing user and wrong password share one message.
		writeHTML(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Login sets fewer cookie attributes than register (no SameSite, no
	// MaxAge), so these sessions ride on browser defaults. Kept as-is
	// pending product sign-off: unifying it changes observable session
	// behavior for existing clients.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	writeHTML(w, http.StatusOK, "Logged in")
}
