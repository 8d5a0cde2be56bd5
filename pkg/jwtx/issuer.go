package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken wraps every validation failure returned by Issuer.Verify.
// Malformed, forged and expired tokens are indistinguishable to callers that
// only check for it.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// IssuerOptions configures an Issuer.
type IssuerOptions struct {
	Signer   Signer
	Verifier Verifier

	// Issuer is stamped into the iss claim.
	Issuer string

	// DefaultTTL applies when Issue is called with ttl <= 0.
	DefaultTTL time.Duration

	// Now is the clock used to stamp iat/nbf/exp. Nil means time.Now.
	Now func() time.Time
}

// Issuer mints and validates tokens with a single process-wide key. It holds
// no per-token state and is safe for concurrent use.
type Issuer struct {
	signer   Signer
	verifier Verifier
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

func NewIssuer(opts IssuerOptions) (*Issuer, error) {
	if opts.Signer == nil || opts.Verifier == nil {
		return nil, errors.New("jwtx: issuer requires a signer and a verifier")
	}
	if err := opts.Signer.Validate(); err != nil {
		return nil, err
	}
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultTokenTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Issuer{
		signer:   opts.Signer,
		verifier: opts.Verifier,
		issuer:   opts.Issuer,
		ttl:      opts.DefaultTTL,
		now:      opts.Now,
	}, nil
}

// NewHS256Issuer wires an HS256 signer and verifier sharing secret and clock.
func NewHS256Issuer(secret []byte, issuer string, ttl time.Duration, now func() time.Time) (*Issuer, error) {
	signer, err := NewSignerHS256("", secret)
	if err != nil {
		return nil, err
	}
	return NewIssuer(IssuerOptions{
		Signer:     signer,
		Verifier:   NewVerifierHS256(secret, VerifyOptions{Issuer: issuer, Now: now}),
		Issuer:     issuer,
		DefaultTTL: ttl,
		Now:        now,
	})
}

// NewEdDSAIssuer wires an Ed25519 signer and verifier for the PKCS8 key.
func NewEdDSAIssuer(kid string, pemKey []byte, issuer string, ttl time.Duration, now func() time.Time) (*Issuer, error) {
	signer, err := NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, err
	}
	return NewIssuer(IssuerOptions{
		Signer:     signer,
		Verifier:   NewVerifierEdDSA(kid, signer.PublicKey(), VerifyOptions{Issuer: issuer, Now: now}),
		Issuer:     issuer,
		DefaultTTL: ttl,
		Now:        now,
	})
}

// Algorithm reports the JWS algorithm tokens are signed with.
func (i *Issuer) Algorithm() string { return i.signer.Alg() }

// DefaultTTL reports the lifetime used when Issue gets ttl <= 0.
func (i *Issuer) DefaultTTL() time.Duration { return i.ttl }

// Issue signs claims with exp = now + ttl.
func (i *Issuer) Issue(claims Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = i.ttl
	}
	now := i.now()

	claims.Issuer = i.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	if claims.ID == "" {
		claims.ID = NewJTI()
	}

	token, err := i.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}

// Verify validates token and returns its claims. Every failure wraps
// ErrInvalidToken together with the specific cause.
func (i *Issuer) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMalformed)
	}
	claims, err := i.verifier.Verify(token)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}
