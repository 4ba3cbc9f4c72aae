package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email_format": "must be a valid email address",
	"mobile10":     "must be exactly 10 digits",
	"otp4":         "must be a 4 digit code",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"date_ymd":     "must be a date in YYYY-MM-DD format",
	"url":          "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong. Please try again."
	ErrClientReloadPage                    = "Something went wrong. Please reload the page."
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotFound                      = "the requested resource was not found"
	ErrClientPlanNotFound                  = "the requested plan does not exist"
	ErrClientPasswordsDoNotMatch           = "Passwords do not match"
	ErrClientInvalidStep                   = "this action is not available at the current step"
	ErrClientResendCooldown                = "Please wait %d seconds before requesting another OTP"
	ErrClientInvoiceNotFound               = "Invoice not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientTooManyRequests               = "Too many requests. Please slow down and try again."
	ErrClientCSRFInvalid                   = "your form expired, please reload the page"
)

// Friendly messages for known backend error texts
const (
	FriendlyInvalidOTP         = "Invalid OTP. Please check and try again."
	FriendlyOTPExpired         = "OTP has expired. Please request a new one."
	FriendlyOTPNotFound        = "OTP not found. Please request a new one."
	FriendlyInvalidCredentials = "Invalid email/phone or password. Please try again."
	FriendlyAccountNotFound    = "No account found. Please sign up first."
	FriendlyAccountExists      = "An account with this email or phone already exists. Please login instead."
	FriendlyResetTokenExpired  = "Reset link is invalid or expired. Please request a new one."
	FriendlyResetTokenInvalid  = "Reset link is invalid. Please request a new one."
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseYAML          = "cannot parse YAML document"
	ErrDevCannotMarshalXML         = "cannot convert sitemap to XML"
	ErrDevRateLimitExceeded        = "rate limit exceeded for %s"
	ErrDevPanicRecovered           = "recovered from panic"
	ErrDevCannotRenderTemplate     = "cannot render HTML template %s"
	ErrDevCannotRenderMarkdown     = "cannot render markdown"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevValidationFailed         = "validation failed"
	ErrDevIllegalTransition        = "illegal transition %s from state %s"
	ErrDevResendCooldownActive     = "resend cooldown active, %d seconds remaining"

	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevDecodeResponse     = "failed to decode %s response from backend"
	ErrDevBackendResponse    = "backend responded %d on %s"
	ErrDevBackendThrottled   = "outbound backend throttle wait failed"
	ErrDevBuildMultipartBody = "failed to build multipart body"

	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionMissing        = "visitor session missing from context"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthNotLoggedIn           = "no user on visitor session"

	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject    = "failed to get object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToRemoveObject = "failed to remove object from minio storage with bucket name '%s'"

	ErrDevDraftDocumentInvalid = "doctor notes draft is not a valid JSON document"
	ErrDevDraftPathEmpty       = "doctor notes path must not be empty"

	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerNotFound         = "resource not found"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)

// Required-field messages raised before calling the backend
const (
	ErrClientAppointmentIDRequired   = "Appointment ID is required"
	ErrClientSlotIDRequired          = "Slot ID is required"
	ErrClientPatientIDRequired       = "Patient ID is required"
	ErrClientFileIDRequired          = "File ID is required"
	ErrClientFilesRequired           = "At least one file is required"
	ErrClientFileIDsRequired         = "At least one file ID is required"
	ErrClientBookingProgressRequired = "Booking progress is required"
	ErrClientAppointmentModeInvalid  = "appointmentMode must be 'IN_PERSON' or 'ONLINE'"
	ErrClientInvoiceNumberRequired   = "Invoice number is required"
	ErrClientTestimonialIDRequired   = "Testimonial ID is required"
	ErrClientRecallEntriesRequired   = "At least one recall entry is required"
	ErrClientPhoneRequired           = "Phone number is required"
	ErrClientPhoneOTPRequired        = "Phone and OTP are required"
	ErrClientNamePhoneRequired       = "Name and phone are required"
	ErrClientNamePhoneOTPRequired    = "Name, phone, and OTP are required"
	ErrClientEmailRequired           = "Email is required"
	ErrClientEmailOTPRequired        = "Email and OTP are required"
	ErrClientEmailPhoneRequired      = "Email and phone are required"
	ErrClientEmailPhoneOTPRequired   = "Email, phone, and OTP are required"
	ErrClientOTPInvalid              = "Please enter a valid 4 digit OTP"
	ErrClientPasswordRequired        = "Password is required"
	ErrClientNameRequired            = "Name is required"
	ErrClientOTPRequired             = "OTP is required"
	ErrClientOTPFourDigits           = "OTP must be 4 digits"
	ErrClientMobileInvalid           = "Please enter a valid 10-digit phone number"
	ErrClientEmailInvalid            = "Please enter a valid email address"
	ErrClientFullNameRequired        = "Full name is required"
	ErrClientWeightRequired          = "Weight is required"
	ErrClientHeightRequired          = "Height is required"
	ErrClientSlotRequired            = "Please select a slot"
	ErrClientAutoLoginFailed         = "Account created. Please login manually."
	ErrClientUnknownBookingStep      = "Unknown booking step"
	ErrClientPendingNotFound         = "Pending appointment not found"
)
