package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/IronWill79/chirpy/internal/auth"
	"github.com/IronWill79/chirpy/internal/validation"
)

var errAdminLoginDisabled = apierr.NotFound("Admin login is disabled")

func (cfg *apiConfig) handlerAdminLogin(w http.ResponseWriter, req *http.Request) error {
	if !cfg.adminAuthEnabled() {
		return errAdminLoginDisabled
	}
	var params validation.LoginRequest
	if err := decodeJSON(w, req, &params); err != nil {
		return err
	}
	ok, err := auth.CheckPasswordHash(params.Password, cfg.adminPasswordHash)
	if err != nil {
		return fmt.Errorf("checking admin password: %w", err)
	}
	if !ok {
		return apierr.NotAuthenticated("Incorrect password")
	}
	expiresAt := time.Now().Add(cfg.tokenDuration)
	token, err := auth.MakeJWT(cfg.adminID, cfg.jwtSecret, cfg.tokenDuration)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, validation.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
