package constvars

// Backend resources, relative to the configured backend base URL.
const (
	BackendAuthLogin              = "auth/login"
	BackendAuthSignup             = "auth/signup"
	BackendAuthLogout             = "auth/logout"
	BackendAuthMe                 = "auth/me"
	BackendAuthForgotPassword     = "auth/forgot-password"
	BackendAuthLoginSendOTP       = "auth/login/send-otp"
	BackendAuthLoginVerifyOTP     = "auth/login/verify-otp"
	BackendAuthRegisterSendOTP    = "auth/register/send-otp"
	BackendAuthRegisterVerifyOTP  = "auth/register/verify-otp"
	BackendAuthLinkPhoneSendOTP   = "auth/link-phone/send-email-otp"
	BackendAuthLinkPhoneVerifyOTP = "auth/link-phone/verify-email-otp"
	BackendAuthAddEmailSendOTP    = "auth/add-email/send-otp"
	BackendAuthAddEmailVerifyOTP  = "auth/add-email/verify-otp"

	BackendAppointments        = "appointments"
	BackendAppointmentsCreate  = "appointments/create"
	BackendAppointmentsPending = "appointments/pending"
	BackendSlotsAvailable      = "slots/available"
	BackendPatients            = "patients"
	BackendPatientsMe          = "patients/me"
	BackendPatientsRecall      = "patients/recall"
	BackendPatientsFile        = "patients/file"
	BackendTestimonials        = "testimonials"
	BackendTestimonialsAdmin   = "testimonials/admin"
	BackendAdminAppointments   = "admin/appointments"
	BackendAdminDoctorNotes    = "admin/doctor-notes"
	BackendInvoice             = "invoice"
	BackendInvoiceAppointment  = "invoice/appointment"
	BackendUploadImage         = "upload/image"
)

// Paths that never dispatch the global logout signal on 401.
var BackendUnauthorizedExemptPaths = []string{
	BackendAuthMe,
	BackendAuthLogout,
}

const BackendAuthPathPrefix = "auth/"
