package constvars

const (
	URLParamID            = "id"
	URLParamSlug          = "slug"
	URLParamStep          = "step"
	URLParamFileID        = "file_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
	URLParamInvoiceNumber = "invoice_number"
)

const (
	URLQueryParamDate      = "date"
	URLQueryParamMode      = "mode"
	URLQueryParamPage      = "page"
	URLQueryParamLimit     = "limit"
	URLQueryParamStatus    = "status"
	URLQueryParamQuery     = "q"
	URLQueryParamPath      = "path"
	URLQueryParamPatientID = "patientId"
)

const (
	MultipartFieldFiles         = "files"
	MultipartFieldImage         = "image"
	MultipartFieldDietChart     = "dietChart"
	MultipartFieldFormData      = "formData"
	MultipartFieldIsDraft       = "isDraft"
	MultipartFieldAppointmentID = "appointmentId"
	MultipartFieldName          = "name"
	MultipartFieldText          = "text"
	MultipartFieldIsActive      = "isActive"
)
