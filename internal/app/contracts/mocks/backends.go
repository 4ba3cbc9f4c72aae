// Package mocks holds testify doubles of the contracts, shared by usecase and router tests.
package mocks

import (
	"anubha-web/internal/pkg/backend_dto"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockAuthBackend struct {
	mock.Mock
}

func (m *MockAuthBackend) Login(ctx context.Context, request *backend_dto.PasswordLoginRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) Signup(ctx context.Context, request *backend_dto.SignupRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthBackend) Me(ctx context.Context) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) ForgotPassword(ctx context.Context, request *backend_dto.ForgotPasswordRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) SendLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) VerifyLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) SendRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) VerifyRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) SendLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) VerifyLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) SendAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

func (m *MockAuthBackend) VerifyAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*backend_dto.AuthResponse)
	return response, args.Error(1)
}

type MockAppointmentBackend struct {
	mock.Mock
}

func (m *MockAppointmentBackend) Create(ctx context.Context, request *backend_dto.CreateAppointmentRequest) (*backend_dto.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*backend_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackend) UpdateSlot(ctx context.Context, appointmentID string, request *backend_dto.UpdateSlotRequest) (*backend_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*backend_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackend) ListPending(ctx context.Context, patientID string) ([]backend_dto.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]backend_dto.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentBackend) UpdateProgress(ctx context.Context, appointmentID string, request *backend_dto.UpdateProgressRequest) (*backend_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*backend_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackend) Delete(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentBackend) AdminList(ctx context.Context, params backend_dto.AppointmentListParams) (*backend_dto.AppointmentListResponse, error) {
	args := m.Called(ctx, params)
	response, _ := args.Get(0).(*backend_dto.AppointmentListResponse)
	return response, args.Error(1)
}

func (m *MockAppointmentBackend) AdminDetail(ctx context.Context, appointmentID string) (*backend_dto.AppointmentDetails, error) {
	args := m.Called(ctx, appointmentID)
	details, _ := args.Get(0).(*backend_dto.AppointmentDetails)
	return details, args.Error(1)
}

func (m *MockAppointmentBackend) AdminUpdateStatus(ctx context.Context, appointmentID string, request *backend_dto.UpdateStatusRequest) (*backend_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*backend_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackend) AdminDelete(ctx context.Context, appointmentID string, request *backend_dto.AdminDeleteRequest) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, appointmentID, request)
	response, _ := args.Get(0).(*backend_dto.MessageResponse)
	return response, args.Error(1)
}

type MockSlotBackend struct {
	mock.Mock
}

func (m *MockSlotBackend) FindAvailable(ctx context.Context, date, mode string) ([]backend_dto.Slot, error) {
	args := m.Called(ctx, date, mode)
	slots, _ := args.Get(0).([]backend_dto.Slot)
	return slots, args.Error(1)
}

type MockPatientBackend struct {
	mock.Mock
}

func (m *MockPatientBackend) FindMine(ctx context.Context) ([]backend_dto.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]backend_dto.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientBackend) Create(ctx context.Context, request *backend_dto.CreatePatientRequest) (*backend_dto.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*backend_dto.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientBackend) CreateRecall(ctx context.Context, request *backend_dto.CreateRecallRequest) (*backend_dto.RecallDetail, error) {
	args := m.Called(ctx, request)
	recall, _ := args.Get(0).(*backend_dto.RecallDetail)
	return recall, args.Error(1)
}

func (m *MockPatientBackend) AttachFiles(ctx context.Context, patientID string, request *backend_dto.AttachFilesRequest) error {
	args := m.Called(ctx, patientID, request)
	return args.Error(0)
}

func (m *MockPatientBackend) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockPatientBackend) UploadImages(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error) {
	args := m.Called(ctx, files)
	uploaded, _ := args.Get(0).([]backend_dto.UploadedFile)
	return uploaded, args.Error(1)
}

type MockTestimonialBackend struct {
	mock.Mock
}

func (m *MockTestimonialBackend) FindActive(ctx context.Context) ([]backend_dto.Testimonial, error) {
	args := m.Called(ctx)
	testimonials, _ := args.Get(0).([]backend_dto.Testimonial)
	return testimonials, args.Error(1)
}

func (m *MockTestimonialBackend) FindAll(ctx context.Context) ([]backend_dto.Testimonial, error) {
	args := m.Called(ctx)
	testimonials, _ := args.Get(0).([]backend_dto.Testimonial)
	return testimonials, args.Error(1)
}

func (m *MockTestimonialBackend) Create(ctx context.Context, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error) {
	args := m.Called(ctx, upload)
	testimonial, _ := args.Get(0).(*backend_dto.Testimonial)
	return testimonial, args.Error(1)
}

func (m *MockTestimonialBackend) Update(ctx context.Context, testimonialID string, upload *backend_dto.TestimonialUpload) (*backend_dto.Testimonial, error) {
	args := m.Called(ctx, testimonialID, upload)
	testimonial, _ := args.Get(0).(*backend_dto.Testimonial)
	return testimonial, args.Error(1)
}

func (m *MockTestimonialBackend) Delete(ctx context.Context, testimonialID string) error {
	args := m.Called(ctx, testimonialID)
	return args.Error(0)
}

type MockInvoiceBackend struct {
	mock.Mock
}

func (m *MockInvoiceBackend) FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error) {
	args := m.Called(ctx, appointmentID)
	invoice, _ := args.Get(0).(*backend_dto.Invoice)
	return invoice, args.Error(1)
}

func (m *MockInvoiceBackend) Download(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error) {
	args := m.Called(ctx, invoiceNumber)
	pdf, _ := args.Get(0).(*backend_dto.InvoicePDF)
	return pdf, args.Error(1)
}

type MockDoctorNotesBackend struct {
	mock.Mock
}

func (m *MockDoctorNotesBackend) FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.DoctorNotes, error) {
	args := m.Called(ctx, appointmentID)
	notes, _ := args.Get(0).(*backend_dto.DoctorNotes)
	return notes, args.Error(1)
}

func (m *MockDoctorNotesBackend) Save(ctx context.Context, request *backend_dto.SaveDoctorNotesRequest) (*backend_dto.DoctorNotes, error) {
	args := m.Called(ctx, request)
	notes, _ := args.Get(0).(*backend_dto.DoctorNotes)
	return notes, args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PutObject(ctx context.Context, objectName, contentType string, content io.Reader, size int64) error {
	args := m.Called(ctx, objectName, contentType, content, size)
	return args.Error(0)
}

func (m *MockObjectStorage) GetObject(ctx context.Context, objectName string) ([]byte, error) {
	args := m.Called(ctx, objectName)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockObjectStorage) RemovePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}
