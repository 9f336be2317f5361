package identity

import (
	"fmt"

	"github.com/chenjq/photofolio/internal/common"
)

// Provider error codes as the identity service reports them, plus the
// client-synthesized network code.
const (
	CodeInvalidEmail            = "INVALID_EMAIL"
	CodeUserDisabled            = "USER_DISABLED"
	CodeEmailNotFound           = "EMAIL_NOT_FOUND"
	CodeInvalidPassword         = "INVALID_PASSWORD"
	CodeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeTooManyAttempts         = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeNetworkRequestFailed    = "NETWORK_REQUEST_FAILED"
	CodeEmailExists             = "EMAIL_EXISTS"
	CodeWeakPassword            = "WEAK_PASSWORD"
)

// authMessages is the fixed code→user-facing-message table. Unrecognized
// codes fall through to a generic message.
var authMessages = map[string]string{
	CodeInvalidEmail:            "Invalid email address.",
	CodeUserDisabled:            "This account has been disabled.",
	CodeEmailNotFound:           "No account found with this email.",
	CodeInvalidPassword:         "Incorrect password.",
	CodeInvalidLoginCredentials: "Invalid email or password.",
	CodeTooManyAttempts:         "Too many attempts. Please try again later.",
	CodeNetworkRequestFailed:    "Network error. Please check your connection.",
	CodeEmailExists:             "An account already exists with this email.",
	CodeWeakPassword:            "Password should be at least 6 characters.",
}

const genericAuthMessage = "An error occurred. Please try again."

// Message maps a provider error code to its user-facing message.
func Message(code string) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return genericAuthMessage
}

// AuthError carries the provider's error classification for a failed
// sign-in. It unwraps to common.ErrAuthenticationFailed so callers can
// match the taxonomy without caring about codes.
type AuthError struct {
	Code  string
	cause error
}

func NewAuthError(code string, cause error) *AuthError {
	return &AuthError{Code: code, cause: cause}
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("authentication failed (%s): %v", e.Code, e.cause)
	}
	return fmt.Sprintf("authentication failed (%s)", e.Code)
}

// Message returns the user-facing message for this error's code.
func (e *AuthError) Message() string { return Message(e.Code) }

func (e *AuthError) Unwrap() error { return common.ErrAuthenticationFailed }
