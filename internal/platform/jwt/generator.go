// Package jwtmw provides JWT token generation and the Gin authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user and session.
	GenerateToken(userID uint, email, sessionID string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and
// expiration duration (the access-token lifetime, 24h by default).
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token. The session ID travels in the
// sid claim so the middleware can check revocation server-side.
func (g *generator) GenerateToken(userID uint, email, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"sid":   sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
