package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/IronWill79/chirpy/internal/auth"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// middlewareMetricsInc counts a hit once the wrapped handler has finished,
// whatever status it produced.
func (cfg *apiConfig) middlewareMetricsInc(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer cfg.fileserverHits.Inc()
		next.ServeHTTP(w, req)
	})
}

func (cfg *apiConfig) middlewareLogResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, req)
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		if status != http.StatusOK {
			cfg.log.Warn("non-ok response",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"request_id", requestIDFromContext(req.Context()),
			)
		}
	})
}

func middlewareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), requestIDKey, id)))
	})
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// middlewareAdmin requires a bearer token issued to the current admin ID.
// It is a pass-through when admin auth is not configured.
func (cfg *apiConfig) middlewareAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !cfg.adminAuthEnabled() {
			next.ServeHTTP(w, req)
			return
		}
		if err := cfg.authorizeAdmin(req); err != nil {
			cfg.respondWithError(w, req, err)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (cfg *apiConfig) authorizeAdmin(req *http.Request) error {
	token, err := auth.GetBearerToken(req.Header)
	if err != nil {
		return apierr.Wrap(apierr.KindNotAuthenticated, "Missing bearer token", err)
	}
	subject, err := auth.ValidateJWT(token, cfg.jwtSecret)
	if err != nil {
		return apierr.Wrap(apierr.KindNotAuthenticated, "Invalid token", err)
	}
	if subject != cfg.adminID {
		return apierr.Wrap(apierr.KindForbidden, "Forbidden", errors.New("token subject is not the admin"))
	}
	return nil
}
