package contracts

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"context"
)

// Usecases read the visitor session from ctx, see models.ContextWithSession.

type AuthUsecase interface {
	Hydrate(ctx context.Context) (*responses.AuthState, error)
	CurrentUser(ctx context.Context) (*backend_dto.User, error)
	Login(ctx context.Context, user *backend_dto.User) error
	Logout(ctx context.Context) (*responses.AuthState, error)
	HandleUnauthorized(ctx context.Context)
	PasswordLogin(ctx context.Context, request *requests.PasswordLogin) (*responses.AuthState, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.AuthState, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (string, error)
	SendAddEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (string, error)
	VerifyAddEmailOTP(ctx context.Context, request *requests.VerifyEmailOTP) (*responses.AuthState, error)
}

type OTPUsecase interface {
	LoginFlow(ctx context.Context) (*responses.OTPFlow, error)
	SendLoginOTP(ctx context.Context, request *requests.SendPhoneOTP) (*responses.OTPFlow, error)
	VerifyLoginOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error)
	ChangeLoginNumber(ctx context.Context) (*responses.OTPFlow, error)
	LinkExistingAccount(ctx context.Context) (*responses.OTPFlow, error)
	BackFromLink(ctx context.Context) (*responses.OTPFlow, error)
	SendLinkEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (*responses.OTPFlow, error)
	VerifyLinkEmailOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error)
	ResetLoginFlow(ctx context.Context) (*responses.OTPFlow, error)
	RegisterFlow(ctx context.Context) (*responses.OTPFlow, error)
	SendRegisterOTP(ctx context.Context, request *requests.SendRegisterOTP) (*responses.OTPFlow, error)
	VerifyRegisterOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error)
	ChangeRegisterDetails(ctx context.Context) (*responses.OTPFlow, error)
}

type BookingUsecase interface {
	GetForm(ctx context.Context) (*models.BookingForm, error)
	SetForm(ctx context.Context, partial map[string]interface{}) (*models.BookingForm, error)
	ResetForm(ctx context.Context) error
	ValidateStep(ctx context.Context, step string) (*responses.BookingStep, error)
	RequiresDetailedMeasurements(slug string) bool
	CreatePatient(ctx context.Context) (*backend_dto.Patient, error)
	ListPatients(ctx context.Context) ([]backend_dto.Patient, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreatedAppointment, error)
	UpdateSlot(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentSlot) (*responses.CreatedAppointment, error)
	ListSlots(ctx context.Context, query *requests.SlotQuery) ([]backend_dto.Slot, error)
	SubmitRecall(ctx context.Context, request *requests.CreateRecall) (*backend_dto.RecallDetail, error)
	SubmitBooking(ctx context.Context) (*responses.CreatedAppointment, error)
	ListPending(ctx context.Context, patientID string) ([]responses.PendingAppointment, error)
	ResumePending(ctx context.Context, appointmentID string) (*responses.PendingAppointment, error)
	UpdateProgress(ctx context.Context, appointmentID string, request *requests.UpdateBookingProgress) (*responses.PendingAppointment, error)
	DeletePending(ctx context.Context, appointmentID string) error
	UploadFiles(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error)
	AttachFiles(ctx context.Context, patientID string, request *requests.AttachFiles) error
	DeleteFile(ctx context.Context, fileID string) error
	FindInvoice(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error)
	DownloadInvoice(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error)
}

type DoctorNotesUsecase interface {
	Load(ctx context.Context, appointmentID string) (*responses.DraftStatus, error)
	Status(ctx context.Context, appointmentID string) (*responses.DraftStatus, error)
	UpdateFormData(ctx context.Context, appointmentID string, request *requests.UpdateDraftValue) (*responses.DraftStatus, error)
	GetFormValue(ctx context.Context, appointmentID string, path []string) (*responses.DraftValue, error)
	Flush(ctx context.Context, appointmentID string) (*responses.DraftStatus, error)
	FlushAll(ctx context.Context) error
	ClearFormData(ctx context.Context, appointmentID string) error
	StageAttachment(ctx context.Context, appointmentID string, file *backend_dto.FilePart) (*responses.DraftStatus, error)
	Submit(ctx context.Context, appointmentID string, request *requests.SubmitDoctorNotes, dietChart *backend_dto.FilePart) (*backend_dto.DoctorNotes, error)
}

type TestimonialUsecase interface {
	FindActive(ctx context.Context) []backend_dto.Testimonial
	FindAll(ctx context.Context) ([]backend_dto.Testimonial, error)
	Create(ctx context.Context, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error)
	Update(ctx context.Context, testimonialID string, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error)
	Delete(ctx context.Context, testimonialID string) error
}

type AdminUsecase interface {
	ListAppointments(ctx context.Context, query *requests.AdminAppointmentQuery) ([]backend_dto.Appointment, *responses.Pagination, error)
	AppointmentDetail(ctx context.Context, appointmentID string) (*responses.AdminAppointmentDetail, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*backend_dto.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string, request *requests.AdminDeleteAppointment) (*backend_dto.MessageResponse, error)
}

type CatalogUsecase interface {
	Services() []responses.Service
	FindBySlug(slug string) (*responses.Service, error)
}

type SEOUsecase interface {
	Robots() string
	Sitemap() ([]byte, error)
}
