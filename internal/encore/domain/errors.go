package domain

import "errors"

// ErrorKind classifies failures so transports can map them without string
// matching.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindInvalidCredentials
	KindEmailTaken
	KindUserNotFound
	KindNoSetupInProgress
	KindSetupSuperseded
	KindInvalidCode
	KindNotEnabled
	KindTokenInvalid
	KindConcertNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindEmailTaken:
		return "email_taken"
	case KindUserNotFound:
		return "user_not_found"
	case KindNoSetupInProgress:
		return "no_setup_in_progress"
	case KindSetupSuperseded:
		return "setup_superseded"
	case KindInvalidCode:
		return "invalid_code"
	case KindNotEnabled:
		return "not_enabled"
	case KindTokenInvalid:
		return "token_invalid"
	case KindConcertNotFound:
		return "concert_not_found"
	default:
		return "internal"
	}
}

// Error is a classified failure with a client-safe message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches any *Error of the same kind, so errors.Is(err, ErrInvalidCode)
// holds regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidCredentials = &Error{KindInvalidCredentials, "Invalid credentials"}
	ErrEmailTaken         = &Error{KindEmailTaken, "Email already registered"}
	ErrUserNotFound       = &Error{KindUserNotFound, "User not found"}
	ErrNoSetupInProgress  = &Error{KindNoSetupInProgress, "No 2FA secret found"}
	ErrSetupSuperseded    = &Error{KindSetupSuperseded, "2FA setup was restarted, scan the new QR code"}
	ErrInvalidCode        = &Error{KindInvalidCode, "Invalid verification code"}
	ErrNotEnabled         = &Error{KindNotEnabled, "2FA is not enabled"}
	ErrTokenInvalid       = &Error{KindTokenInvalid, "Invalid or expired token"}
	ErrConcertNotFound    = &Error{KindConcertNotFound, "Concert not found"}
)

// InvalidInput builds a KindInvalidInput error carrying msg.
func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// KindOf extracts the kind of err. Untyped errors are KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return KindInvalidInput
	}
	return KindInternal
}

// ValidationError carries per-field messages for rejected concert payloads.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// Is lets a ValidationError satisfy errors.Is(err, &Error{Kind: KindInvalidInput}).
func (e *ValidationError) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Kind == KindInvalidInput
}
