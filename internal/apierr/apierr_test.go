package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request", BadRequest("Chirp is too long. Max length is 140"), http.StatusBadRequest, "Chirp is too long. Max length is 140"},
		{"not authenticated", NotAuthenticated("Missing bearer token"), http.StatusUnauthorized, "Missing bearer token"},
		{"forbidden", Forbidden("Forbidden"), http.StatusForbidden, "Forbidden"},
		{"not found", NotFound("nope"), http.StatusNotFound, "nope"},
		{"explicit internal", New(KindInternal, "db exploded"), http.StatusInternalServerError, InternalMessage},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, InternalMessage},
		{"wrapped kind survives", fmt.Errorf("handler: %w", NotFound("missing")), http.StatusNotFound, "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Status(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := Wrap(KindNotAuthenticated, "Invalid token", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Invalid token: signature is invalid", err.Error())
	status, msg := Status(err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", msg)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bad_request", KindBadRequest.String())
	assert.Equal(t, "internal", Kind(42).String())
}
