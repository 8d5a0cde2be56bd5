package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes. Both are overridable through the issuer and app config.
const (
	// DefaultTokenTTL is the lifetime of a fully authenticated token.
	DefaultTokenTTL = 15 * time.Minute

	// DefaultPartialTokenTTL bounds how long a user has to enter their
	// second factor after the password step.
	DefaultPartialTokenTTL = 2 * time.Minute
)

// Authentication method references recorded in the amr claim.
const (
	AMRPassword = "pwd"
	AMROTP      = "otp"
)

// Claims are the token claims shared by full and partial tokens.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`

	// Partial marks a token that only proves the password step. It must never
	// be accepted where full authentication is required.
	Partial bool `json:"partial,omitempty"`

	// AMR lists how the subject authenticated, e.g. ["pwd","otp"].
	AMR []string `json:"amr,omitempty"`
}

// NewFullClaims builds claims for a fully authenticated user. Registered
// time claims are stamped by Issuer.Issue.
func NewFullClaims(userID, email, name string, amr ...string) Claims {
	if len(amr) == 0 {
		amr = []string{AMRPassword}
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		Email:            email,
		Name:             name,
		AMR:              amr,
	}
}

// NewPartialClaims builds claims asserting only that the password for userID
// was verified and a second factor is pending.
func NewPartialClaims(userID string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		Partial:          true,
		AMR:              []string{AMRPassword},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
