package exceptions

import (
	"anubha-web/internal/pkg/constvars"
	"strings"
)

// FriendlyMessage turns a raw backend message into text suitable for the visitor.
func FriendlyMessage(backendMessage string) string {
	lower := strings.ToLower(backendMessage)

	switch {
	case strings.Contains(lower, "invalid otp"):
		return constvars.FriendlyInvalidOTP
	case strings.Contains(lower, "otp expired"):
		return constvars.FriendlyOTPExpired
	case strings.Contains(lower, "otp not found"):
		return constvars.FriendlyOTPNotFound
	case strings.Contains(lower, "invalid credentials"):
		return constvars.FriendlyInvalidCredentials
	case strings.Contains(lower, "already exists"), strings.Contains(lower, "already registered"):
		return constvars.FriendlyAccountExists
	case strings.Contains(lower, "account not found"), strings.Contains(lower, "register"):
		return constvars.FriendlyAccountNotFound
	case strings.Contains(lower, "expired") && strings.Contains(lower, "token"):
		return constvars.FriendlyResetTokenExpired
	case strings.Contains(lower, "invalid") && strings.Contains(lower, "token"):
		return constvars.FriendlyResetTokenInvalid
	case strings.Contains(lower, "wait"), strings.Contains(lower, "rate limit"):
		return backendMessage
	}

	if backendMessage != "" &&
		len(backendMessage) < constvars.FriendlyMessageMaxLength &&
		!strings.Contains(backendMessage, "status") {
		return backendMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
