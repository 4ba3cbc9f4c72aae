package contracts

import (
	"anubha-web/internal/pkg/backend_dto"
	"context"
)

type AuthBackend interface {
	Login(ctx context.Context, request *backend_dto.PasswordLoginRequest) (*backend_dto.AuthResponse, error)
	Signup(ctx context.Context, request *backend_dto.SignupRequest) (*backend_dto.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*backend_dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, request *backend_dto.ForgotPasswordRequest) (*backend_dto.MessageResponse, error)
	SendLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error)
	VerifyLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error)
	SendRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error)
	VerifyRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error)
	SendLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error)
	VerifyLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error)
	SendAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error)
	VerifyAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error)
}

type AppointmentBackend interface {
	Create(ctx context.Context, request *backend_dto.CreateAppointmentRequest) (*backend_dto.Appointment, error)
	UpdateSlot(ctx context.Context, appointmentID string, request *backend_dto.UpdateSlotRequest) (*backend_dto.Appointment, error)
	ListPending(ctx context.Context, patientID string) ([]backend_dto.Appointment, error)
	UpdateProgress(ctx context.Context, appointmentID string, request *backend_dto.UpdateProgressRequest) (*backend_dto.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
	AdminList(ctx context.Context, params backend_dto.AppointmentListParams) (*backend_dto.AppointmentListResponse, error)
	AdminDetail(ctx context.Context, appointmentID string) (*backend_dto.AppointmentDetails, error)
	AdminUpdateStatus(ctx context.Context, appointmentID string, request *backend_dto.UpdateStatusRequest) (*backend_dto.Appointment, error)
	AdminDelete(ctx context.Context, appointmentID string, request *backend_dto.AdminDeleteRequest) (*backend_dto.MessageResponse, error)
}

type SlotBackend interface {
	FindAvailable(ctx context.Context, date, mode string) ([]backend_dto.Slot, error)
}

type PatientBackend interface {
	FindMine(ctx context.Context) ([]backend_dto.Patient, error)
	Create(ctx context.Context, request *backend_dto.CreatePatientRequest) (*backend_dto.Patient, error)
	CreateRecall(ctx context.Context, request *backend_dto.CreateRecallRequest) (*backend_dto.RecallDetail, error)
	AttachFiles(ctx context.Context, patientID string, request *backend_dto.AttachFilesRequest) error
	DeleteFile(ctx context.Context, fileID string) error
	UploadImages(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error)
}

type TestimonialBackend interface {
	FindActive(ctx context.Context) ([]backend_dto.Testimonial, error)
	FindAll(ctx context.Context) ([]backend_dto.Testimonial, error)
	Create(ctx context.Context, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error)
	Update(ctx context.Context, testimonialID string, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error)
	Delete(ctx context.Context, testimonialID string) error
}

type InvoiceBackend interface {
	FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error)
	Download(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error)
}

type DoctorNotesBackend interface {
	FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.DoctorNotes, error)
	Save(ctx context.Context, request *backend_dto.SaveDoctorNotesRequest) (*backend_dto.DoctorNotes, error)
}
