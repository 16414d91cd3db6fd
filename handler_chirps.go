package main

import (
	"net/http"

	"github.com/IronWill79/chirpy/internal/chirp"
	"github.com/IronWill79/chirpy/internal/validation"
)

func handlerValidateChirp(w http.ResponseWriter, req *http.Request) error {
	var params validation.ChirpRequest
	if err := decodeJSON(w, req, &params); err != nil {
		return err
	}
	cleaned, err := chirp.Validate(*params.Body)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, validation.ChirpValidationSuccess{CleanedBody: cleaned})
}
