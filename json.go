package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/IronWill79/chirpy/internal/validation"
)

const maxBodyBytes = 1 << 20

// apiHandler is a handler that reports failure by returning an error instead
// of writing the error response itself.
type apiHandler func(w http.ResponseWriter, req *http.Request) error

func (cfg *apiConfig) handle(h apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			cfg.respondWithError(w, req, err)
		}
	}
}

func (cfg *apiConfig) respondWithError(w http.ResponseWriter, req *http.Request, err error) {
	status, msg := apierr.Status(err)
	if status >= http.StatusInternalServerError {
		cfg.log.Error("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", requestIDFromContext(req.Context()),
			"error", err,
		)
	}
	data, _ := json.Marshal(validation.ErrorResponse{Err: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
	return nil
}

func decodeJSON(w http.ResponseWriter, req *http.Request, dst any) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		return apierr.Wrap(apierr.KindBadRequest, "Invalid JSON body", err)
	}
	return validation.Struct(dst)
}
