package constvars

const (
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccessMessage          = "successfully login"
	SignupSuccessMessage         = "account created successfully"
	LogoutSuccessMessage         = "successfully logout"
	SessionHydratedMessage       = "session loaded"
	ForgotPasswordSuccessMessage = "If an account exists with this email, a password reset link has been sent."
	OTPSentSuccessMessage        = "OTP sent successfully"
	OTPVerifiedSuccessMessage    = "OTP verified successfully"
	FlowStateMessage             = "flow state"
	AccountLinkedSuccessMessage  = "account linked successfully"
	EmailAddedSuccessMessage     = "email added successfully"
	RegistrationSuccessMessage   = "registration completed successfully"

	// Booking messages
	BookingFormMessage              = "booking form"
	BookingFormUpdatedMessage       = "booking form updated"
	BookingFormResetMessage         = "booking form cleared"
	BookingStepValidMessage         = "step is valid"
	AppointmentCreatedMessage       = "appointment created successfully"
	AppointmentSlotUpdatedMessage   = "appointment slot updated successfully"
	AppointmentProgressMessage      = "appointment progress updated successfully"
	AppointmentDeletedMessage       = "appointment deleted successfully"
	AppointmentStatusUpdatedMessage = "appointment status updated successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	GetSlotsSuccessMessage          = "get available slots successfully"
	GetPatientsSuccessMessage       = "get patients successfully"
	CreatePatientSuccessMessage     = "patient created successfully"
	RecallSubmittedMessage          = "food recall submitted successfully"
	FilesUploadedMessage            = "files uploaded successfully"
	FileDeletedMessage              = "file deleted successfully"
	FilesAttachedMessage            = "files attached successfully"
	GetInvoiceSuccessMessage        = "get invoice successfully"

	// Testimonial messages
	GetTestimonialsSuccessMessage   = "get testimonials successfully"
	CreateTestimonialSuccessMessage = "testimonial created successfully"
	UpdateTestimonialSuccessMessage = "testimonial updated successfully"
	DeleteTestimonialSuccessMessage = "testimonial deleted successfully"

	// Doctor notes messages
	DoctorNotesDraftMessage     = "doctor notes draft"
	DoctorNotesUpdatedMessage   = "doctor notes draft updated"
	DoctorNotesFlushedMessage   = "doctor notes draft saved"
	DoctorNotesClearedMessage   = "doctor notes draft cleared"
	DoctorNotesSubmittedMessage = "doctor notes saved successfully"
	DoctorNotesStagedMessage    = "diet chart attached to draft"

	// Catalog messages
	GetServicesSuccessMessage = "get services successfully"
)
