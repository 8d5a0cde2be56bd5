package domain

// TwoFactorSetup is handed to the user when enrollment begins.
type TwoFactorSetup struct {
	Secret  string // base32 pending secret
	URI     string // otpauth:// provisioning URI
	QRCode  string // data:image/png;base64,...
	SetupID string // nonce the confirm step may echo back
}

// LoginResult is the outcome of the password step. Exactly one of Token or
// TempToken is set.
type LoginResult struct {
	User             PublicUser
	Token            string
	RequireTwoFactor bool
	UserID           string
	TempToken        string
}
