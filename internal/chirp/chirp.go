package chirp

import (
	"fmt"
	"strings"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/IronWill79/chirpy/internal/validation"
	"github.com/samber/lo"
)

const (
	MaxChirpLength = 140
	censored       = "****"
)

var profanities = []string{"kerfuffle", "sharbert", "fornax"}

var ErrTooLong = apierr.BadRequest(fmt.Sprintf("Chirp is too long. Max length is %d", MaxChirpLength))

// Validate enforces the length limit and returns the censored body.
// Length is counted in runes.
func Validate(body string) (string, error) {
	if err := validation.Var(body, fmt.Sprintf("max=%d", MaxChirpLength)); err != nil {
		return "", ErrTooLong
	}
	return CleanChirp(body), nil
}

// CleanChirp replaces every whole word matching a profanity, ignoring case.
// Words are split on single spaces so runs of spaces survive untouched.
func CleanChirp(chirp string) string {
	words := strings.Split(chirp, " ")
	cleanedWords := lo.Map(words, func(word string, _ int) string {
		if lo.Contains(profanities, strings.ToLower(word)) {
			return censored
		}
		return word
	})
	return strings.Join(cleanedWords, " ")
}
