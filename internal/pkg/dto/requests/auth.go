package requests

// Auth requests are checked field by field in the auth usecases so each input gets its own message.

type PasswordLogin struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type Signup struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ForgotPassword struct {
	Email string `json:"email"`
}

type SendPhoneOTP struct {
	Phone string `json:"phone"`
}

type SendRegisterOTP struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type VerifyOTP struct {
	OTP string `json:"otp"`
}

type SendEmailOTP struct {
	Email string `json:"email"`
}

type VerifyEmailOTP struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
