package validation

import (
	"net/http"
	"testing"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	req := require.New(t)
	body := "hello"

	req.NoError(Struct(ChirpRequest{Body: &body}))
	req.NoError(Struct(LoginRequest{Password: "hunter2"}))

	err := Struct(ChirpRequest{})
	req.Error(err)
	status, msg := apierr.Status(err)
	req.Equal(http.StatusBadRequest, status)
	req.Equal("body is required", msg)

	err = Struct(LoginRequest{})
	status, msg = apierr.Status(err)
	req.Equal(http.StatusBadRequest, status)
	req.Equal("password is required", msg)
}

func TestVar(t *testing.T) {
	req := require.New(t)
	req.NoError(Var("short", "max=10"))
	req.Error(Var("definitely too long", "max=10"))
	// runes, not bytes
	req.NoError(Var("ééééé", "max=5"))
}
