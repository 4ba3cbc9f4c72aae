package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "visitor_session"
	CONTEXT_USER_KEY                 ContextKey = "user"
	CONTEXT_AUTH_STATE_KEY           ContextKey = "auth_state"
)

const (
	REQUEST_ID_PREFIX = "ANBH_WEB_"
)

// Page paths the server redirects to.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathProfile    = "/profile"
	PathAdmin      = "/admin"
	PathBookRecall = "/book/recall"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Client storage keys, scoped per visitor session.
const (
	StorageKeyUser               = "user"
	StorageKeyBookingForm        = "bookingForm"
	StorageKeyLoginOTPExpiry     = "login_otp_expiry"
	StorageKeyRegisterOTPExpiry  = "register_otp_expiry"
	StorageKeyLoginFlow          = "flow_login_otp"
	StorageKeyRegisterFlow       = "flow_register_otp"
	StorageKeyDoctorNotesPrefix  = "doctor_notes_draft_"
	StorageKeyDoctorNotesSavedAt = "_lastSaved"
)

const (
	DoctorNotesAutoSaveDelay    = 2 * time.Second
	DefaultOTPResendCooldown    = 60
	DefaultPlanDuration         = "40 min"
	FriendlyMessageMaxLength    = 100
	SessionCookieName           = "anubha_sid"
	CSRFCookieName              = "anubha_csrf"
	RedisClientStoragePrefix    = "anubha:storage:"
	RedisSessionPrefix          = "anubha:session:"
	ObjectDraftAttachmentPrefix = "drafts/"
)

const (
	BookingProgressUserDetails = "USER_DETAILS"
	BookingProgressRecall      = "RECALL"
	BookingProgressSlot        = "SLOT"
	BookingProgressPayment     = "PAYMENT"
)

// Booking form steps validated before moving on.
const (
	BookingStepPersonal     = "personal"
	BookingStepMeasurements = "measurements"
	BookingStepSlot         = "slot"
)

const (
	AppointmentModeInPerson = "IN_PERSON"
	AppointmentModeOnline   = "ONLINE"
)

const (
	AdminDeleteScopeAdmin  = "admin"
	AdminDeleteScopeGlobal = "global"
)

const (
	PlanSlugWeightLoss = "weight-loss"
)

const (
	AppPaginationUrlFormat    = "%s?page=%d&limit=%d"
	AppDefaultPageSize        = 10
	AppDefaultPage            = 1
	AppRequestBodyLimitFactor = 1 << 20
)
