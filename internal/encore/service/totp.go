package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod = 30
	totpSkew   = 1 // one step either side
	qrSize     = 200
)

var totpCodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// TOTPEngine generates and checks RFC 6238 codes: 6 digits, SHA1, 30s period.
type TOTPEngine struct {
	Issuer string           // label shown by authenticator apps
	Now    func() time.Time // nil means time.Now
}

func (e *TOTPEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *TOTPEngine) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret creates a fresh base32 secret for account and the
// otpauth:// provisioning URI that carries it.
func (e *TOTPEngine) GenerateSecret(account string) (secret, uri string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.Issuer,
		AccountName: account,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// ProvisioningURI rebuilds the otpauth:// URI for an existing secret.
func (e *TOTPEngine) ProvisioningURI(account, secret string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", e.Issuer)
	v.Set("period", strconv.Itoa(totpPeriod))
	v.Set("algorithm", otp.AlgorithmSHA1.String())
	v.Set("digits", otp.DigitsSix.String())

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + e.Issuer + ":" + account,
		RawQuery: v.Encode(),
	}
	return u.String()
}

// RenderQRCode encodes uri as a PNG QR code data URL.
func (e *TOTPEngine) RenderQRCode(uri string) (string, error) {
	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse provisioning uri: %w", err)
	}
	img, err := key.Image(qrSize, qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// VerifyCode reports whether code is valid for secret at the current time.
// Anything that is not exactly six ASCII digits is rejected up front.
func (e *TOTPEngine) VerifyCode(code, secret string) bool {
	if !totpCodeRe.MatchString(code) || secret == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, e.now().UTC(), e.validateOpts())
	return err == nil && ok
}

// CodeAt returns the code for secret at t.
func (e *TOTPEngine) CodeAt(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t.UTC(), e.validateOpts())
}
