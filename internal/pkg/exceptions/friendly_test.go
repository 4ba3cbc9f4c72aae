package exceptions

import (
	"anubha-web/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"invalid otp", "Invalid OTP provided", constvars.FriendlyInvalidOTP},
		{"otp expired", "OTP expired", constvars.FriendlyOTPExpired},
		{"otp not found", "otp not found for phone", constvars.FriendlyOTPNotFound},
		{"invalid credentials", "Invalid credentials", constvars.FriendlyInvalidCredentials},
		{"account not found", "Account not found", constvars.FriendlyAccountNotFound},
		{"register hint", "Please register first", constvars.FriendlyAccountNotFound},
		{"already registered", "Phone already registered", constvars.FriendlyAccountExists},
		{"token expired", "Token has expired", constvars.FriendlyResetTokenExpired},
		{"token invalid", "Invalid reset token", constvars.FriendlyResetTokenInvalid},
		{"rate limit kept", "Please wait 42 seconds", "Please wait 42 seconds"},
		{"short message passes", "Slot is no longer available", "Slot is no longer available"},
		{"status message hidden", "Request failed with status code 500", constvars.ErrClientSomethingWrongWithApplication},
		{"long message hidden", strings.Repeat("x", 120), constvars.ErrClientSomethingWrongWithApplication},
		{"empty message", "", constvars.ErrClientSomethingWrongWithApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FriendlyMessage(tt.input))
		})
	}
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("keeps the wrapped error", func(t *testing.T) {
		cause := assert.AnError
		err := ErrSendHTTPRequest(cause)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.Contains(t, err.DevMessage, cause.Error())
		assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError")
	})

	t.Run("backend 5xx becomes bad gateway", func(t *testing.T) {
		err := ErrBackendResponse(nil, 503, "Request failed with status code 503", "auth/me")

		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
	})

	t.Run("field errors pick a stable first message", func(t *testing.T) {
		err := ErrFieldValidation(map[string]string{
			"mobile":   "mobile must be exactly 10 digits",
			"email":    "email must be a valid email address",
			"fullName": "fullName is required",
		})

		assert.Equal(t, "email must be a valid email address", err.ClientMessage)
		assert.Len(t, err.Fields, 3)
	})
}
