package backend_dto

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// AuthResponse covers login, signup, me and every OTP verification answer.
type AuthResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	User         *User  `json:"user,omitempty"`
	Owner        *User  `json:"owner,omitempty"`
	UserNotFound bool   `json:"userNotFound,omitempty"`
	ErrorType    string `json:"errorType,omitempty"`
}

// Account resolves the identity the backend returned, preferring user over owner.
func (r *AuthResponse) Account() *User {
	if r.User != nil {
		return r.User
	}
	return r.Owner
}

type PasswordLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type SignupRequest struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type PhoneOTPRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
	OTP   string `json:"otp,omitempty"`
}

type EmailOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "ADMIN"
}

// HomePath is where a freshly logged in user lands.
func (u *User) HomePath() string {
	if u.IsAdmin() {
		return "/admin"
	}
	return "/profile"
}
