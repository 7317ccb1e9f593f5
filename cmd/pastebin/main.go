package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"pastebin/internal/adapter/file"
	adapthttp "pastebin/internal/adapter/http"
	"pastebin/internal/adapter/memory"
	"pastebin/internal/adapter/postgres"
	"pastebin/internal/app"
	"pastebin/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":3000")
	dataDir := env("DATA_DIR", ".")
	baseURL := env("BASE_URL", "http://localhost:3000")

	var users domain.UserRepository
	var pastes domain.PasteRepository

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users, pastes = db, db
	} else {
		users = file.NewUserStore(filepath.Join(dataDir, "users.json"))
		pastes = file.NewPasteStore(filepath.Join(dataDir, "pastes.json"))
	}

	// Sessions are memory-only on every backend: a restart invalidates them,
	// and logging in again is cheap.
	sessions := memory.New().NewSessionRepo()

	authSvc := app.NewAuthService(users, sessions)
	pasteSvc := app.NewPasteService(pastes)

	h := adapthttp.New(authSvc, pasteSvc, baseURL, loadOIDC(baseURL)).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadOIDC builds the SSO configuration from the environment. SSO stays
// disabled unless OIDC_ISSUER is set, and a discovery failure only disables
// it rather than aborting startup.
func loadOIDC(baseURL string) adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		log.Printf("oidc provider %s: %v; sso disabled", issuer, err)
		return adapthttp.OIDCConfig{}
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", baseURL+"/auth/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
