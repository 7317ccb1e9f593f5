package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pastebin/internal/app"
)

func (s *Server) handlePaste(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeHTML(w, http.StatusOK, pasteFormPage)
	case http.MethodPost:
		s.createPaste(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createPaste(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		writeHTML(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	username, err := s.auth.ValidateSession(r.Context(), cookie.Value)
	switch {
	case errors.Is(err, app.ErrSessionNotFound):
		writeHTML(w, http.StatusUnauthorized, "Invalid session")
		return
	case errors.Is(err, app.ErrSessionExpired):
		writeHTML(w, http.StatusUnauthorized, "Session expired")
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	p, err := s.pastes.CreatePaste(r.Context(), username, r.FormValue("text"))
	if errors.Is(err, app.ErrEmptyPaste) {
		writeHTML(w, http.StatusBadRequest, "Paste text is empty")
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, http.StatusOK, fmt.Sprintf("Link: %s/paste/%s\nUser page: %s/user?id=%s",
		s.baseURL, p.ID, s.baseURL, username))
}

func (s *Server) handleShowPaste(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/paste/")
	_, p, err := s.pastes.GetPaste(r.Context(), id)
	if errors.Is(err, app.ErrPasteNotFound) || id == "" {
		writeHTML(w, http.StatusNotFound, "<h2>Paste not found</h2>")
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, http.StatusOK, pasteTmpl, pasteView{
		Text:      p.Text,
		CreatedAt: formatTime(p.CreatedAt),
	})
}

func (s *Server) handleUserPastes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.URL.Query().Get("id")
	if username == "" {
		writeHTML(w, http.StatusBadRequest, "Missing id")
		return
	}

	pastes, err := s.pastes.ListPastes(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// A user with zero pastes and an unknown user render the same way.
	if len(pastes) == 0 {
		renderTemplate(w, http.StatusOK, noPastesTmpl, username)
		return
	}

	items := make([]pasteItem, 0, len(pastes))
	for _, p := range pastes {
		items = append(items, pasteItem{ID: p.ID, CreatedAt: formatTime(p.CreatedAt)})
	}
	renderTemplate(w, http.StatusOK, userPastesTmpl, userPastesView{
		Username: username,
		Pastes:   items,
	})
}
