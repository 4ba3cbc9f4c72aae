package responses

import "anubha-web/internal/pkg/backend_dto"

// AuthState is what the browser sees of the visitor's auth store.
type AuthState struct {
	User       *backend_dto.User `json:"user"`
	Loading    bool              `json:"loading"`
	LoggingOut bool              `json:"loggingOut"`
	Stale      bool              `json:"stale,omitempty"`
	RedirectTo string            `json:"redirectTo,omitempty"`
	Notice     string            `json:"notice,omitempty"`
}

type OTPFlow struct {
	State          string            `json:"state"`
	Name           string            `json:"name,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	ResendCooldown int               `json:"resendCooldown"`
	CanResend      bool              `json:"canResend"`
	EmailOTPSent   bool              `json:"emailOtpSent,omitempty"`
	User           *backend_dto.User `json:"user,omitempty"`
	RedirectTo     string            `json:"redirectTo,omitempty"`
}
