package jwtx

import (
	"crypto/ed25519"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSAVerifier validates JWTs signed using EdDSA (Ed25519).
type EdDSAVerifier struct {
	kid  string
	pub  ed25519.PublicKey
	opts VerifyOptions
}

// NewVerifierEdDSA creates a verifier for tokens carrying kid and signed by
// the private half of pub.
func NewVerifierEdDSA(kid string, pub ed25519.PublicKey, opts VerifyOptions) *EdDSAVerifier {
	return &EdDSAVerifier{kid: kid, pub: pub, opts: opts}
}

// Verify checks algorithm, kid, signature, issuer and expiry.
func (v *EdDSAVerifier) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	_, err := v.opts.parser(jwt.SigningMethodEdDSA.Alg()).ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != v.kid {
			return nil, ErrUnknownKID
		}
		return v.pub, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	return claims, nil
}
