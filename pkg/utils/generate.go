package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken generates a new random session token
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
