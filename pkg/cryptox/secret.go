package cryptox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrGenerateSecret returns the secret stored at path, creating the file
// with size random bytes (base64url encoded) on first use. It backs both the
// password pepper and the HS256 signing secret so they survive restarts.
func LoadOrGenerateSecret(path string, size int) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create secret dir: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("cryptox: secret file %s is empty", path)
		}
		return secret, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("cryptox: read secret: %w", err)
	}

	secret, err := GenerateToken(size)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write secret: %w", err)
	}
	return secret, nil
}
