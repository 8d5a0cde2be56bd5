package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signEdDSA(t *testing.T, signer jwtx.Signer, claims jwtx.Claims, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims.Issuer = exampleIssuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestEdDSASignAndVerify(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key-eddsa", pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	claims := jwtx.NewFullClaims("user-456", "eddsa@x.com", "EdDSA User", jwtx.AMRPassword, jwtx.AMROTP)
	token := signEdDSA(t, signer, claims, 5*time.Minute)

	verifier := jwtx.NewVerifierEdDSA(signer.KID(), signer.PublicKey(), jwtx.VerifyOptions{Issuer: exampleIssuer})
	parsed, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, "user-456", parsed.Subject)
	require.Equal(t, "eddsa@x.com", parsed.Email)
	require.Equal(t, "EdDSA User", parsed.Name)
	require.ElementsMatch(t, claims.AMR, parsed.AMR)
	require.False(t, parsed.Partial)
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("k1", pemKey)
	require.NoError(t, err)

	token := signEdDSA(t, signer, jwtx.NewPartialClaims("user-789"), time.Minute)

	verifier := jwtx.NewVerifierEdDSA("k1", signer.PublicKey(), jwtx.VerifyOptions{Issuer: "wrong-issuer"})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForUnknownKey(t *testing.T) {
	pemKey1, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer1, err := jwtx.NewSignerEdDSA("key1", pemKey1)
	require.NoError(t, err)

	pemKey2, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer2, err := jwtx.NewSignerEdDSA("key2", pemKey2)
	require.NoError(t, err)

	token := signEdDSA(t, signer1, jwtx.NewPartialClaims("user-unknown"), time.Minute)

	t.Run("kid mismatch", func(t *testing.T) {
		verifier := jwtx.NewVerifierEdDSA("key2", signer2.PublicKey(), jwtx.VerifyOptions{})
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("same kid, different key", func(t *testing.T) {
		verifier := jwtx.NewVerifierEdDSA("key1", signer2.PublicKey(), jwtx.VerifyOptions{})
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestEdDSAVerifyFailsForHS256Token(t *testing.T) {
	hs, err := jwtx.NewSignerHS256("eddsa-key", []byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	token := signEdDSA(t, hs, jwtx.NewPartialClaims("user-hs"), time.Minute)

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("eddsa-key", pemKey)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA("eddsa-key", signer.PublicKey(), jwtx.VerifyOptions{})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestEdDSAInvalidKey(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.ErrorIs(t, err, cryptox.ErrNotEd25519)
}
