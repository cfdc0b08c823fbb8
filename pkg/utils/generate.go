package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// GenerateSessionToken returns the opaque id stored in sessions.token and
// carried as the JWT jti.
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ConfirmationLength matches the bookings.confirmation CHAR(7) column.
const ConfirmationLength = 7

// GenerateConfirmationCode draws an uppercase alphanumeric code from
// crypto/rand. Uniqueness is the caller's concern.
func GenerateConfirmationCode() (string, error) {
	max := big.NewInt(int64(len(confirmationAlphabet)))
	code := make([]byte, ConfirmationLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = confirmationAlphabet[n.Int64()]
	}

	return string(code), nil
}
