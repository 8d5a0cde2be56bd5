package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/idx"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
)

// InitTokenIssuer builds the token issuer for the configured algorithm.
//
// Algorithms:
//   - "HS256": the shared secret comes from AUTH_JWT_SECRET, or from the
//     secret file which is generated on first start. Tokens survive restarts.
//   - "EdDSA": the Ed25519 key is read from AUTH_SIGNING_KEY_FILE, created on
//     first start. Without a key file a fresh key is generated and kept only
//     in memory, so all existing tokens become invalid on restart.
func InitTokenIssuer(cfg Config, logger *slog.Logger) (*jwtx.Issuer, error) {
	switch cfg.Algorithm {
	case "EdDSA":
		var (
			pemKey []byte
			kid    string
			err    error
		)
		if cfg.SigningKeyFile != "" {
			pemKey, err = cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
			kid = "encore-1"
		} else {
			pemKey, err = cryptox.GenerateEd25519Key()
			kid = idx.New().String()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}

		issuer, err := jwtx.NewEdDSAIssuer(kid, pemKey, cfg.Issuer, cfg.TokenTTL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize EdDSA issuer: %w", err)
		}

		if cfg.SigningKeyFile != "" {
			logger.Info("signing key loaded", "algorithm", issuer.Algorithm(), "path", cfg.SigningKeyFile, "issuer", cfg.Issuer)
		} else {
			logger.Info("generated ephemeral signing key", "algorithm", issuer.Algorithm(), "kid", kid, "issuer", cfg.Issuer)
			logger.Warn("all existing tokens are now invalid due to key rotation on startup")
		}
		return issuer, nil

	default:
		secret := cfg.JWTSecret
		if secret == "" {
			var err error
			secret, err = cryptox.LoadOrGenerateSecret(cfg.JWTSecretFile, cryptox.TokenSize256)
			if err != nil {
				return nil, fmt.Errorf("failed to load jwt secret: %w", err)
			}
			logger.Info("jwt secret loaded", "path", cfg.JWTSecretFile)
		}

		issuer, err := jwtx.NewHS256Issuer([]byte(secret), cfg.Issuer, cfg.TokenTTL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize HS256 issuer: %w", err)
		}

		logger.Info("token issuer ready", "algorithm", issuer.Algorithm(), "issuer", cfg.Issuer)
		return issuer, nil
	}
}
