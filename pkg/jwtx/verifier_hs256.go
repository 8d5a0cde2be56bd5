package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates tokens signed by an HS256Signer with the same secret.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

func NewVerifierHS256(secret []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{secret: secret, opts: opts}
}

// Verify checks algorithm, signature, issuer and expiry.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	_, err := v.opts.parser(jwt.SigningMethodHS256.Alg()).ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	return claims, nil
}
