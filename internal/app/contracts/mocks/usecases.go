package mocks

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Hydrate(ctx context.Context) (*responses.AuthState, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.AuthState)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context) (*backend_dto.User, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*backend_dto.User)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, user *backend_dto.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) (*responses.AuthState, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.AuthState)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) HandleUnauthorized(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockAuthUsecase) PasswordLogin(ctx context.Context, request *requests.PasswordLogin) (*responses.AuthState, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthState)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.AuthState, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthState)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) SendAddEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) VerifyAddEmailOTP(ctx context.Context, request *requests.VerifyEmailOTP) (*responses.AuthState, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthState)
	return result, args.Error(1)
}

type MockOTPUsecase struct {
	mock.Mock
}

func (m *MockOTPUsecase) LoginFlow(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) SendLoginOTP(ctx context.Context, request *requests.SendPhoneOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) VerifyLoginOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) ChangeLoginNumber(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) LinkExistingAccount(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) BackFromLink(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) SendLinkEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) VerifyLinkEmailOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) ResetLoginFlow(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) RegisterFlow(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) SendRegisterOTP(ctx context.Context, request *requests.SendRegisterOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) VerifyRegisterOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

func (m *MockOTPUsecase) ChangeRegisterDetails(ctx context.Context) (*responses.OTPFlow, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.OTPFlow)
	return result, args.Error(1)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) GetForm(ctx context.Context) (*models.BookingForm, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.BookingForm)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) SetForm(ctx context.Context, partial map[string]interface{}) (*models.BookingForm, error) {
	args := m.Called(ctx, partial)
	result, _ := args.Get(0).(*models.BookingForm)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) ResetForm(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUsecase) ValidateStep(ctx context.Context, step string) (*responses.BookingStep, error) {
	args := m.Called(ctx, step)
	result, _ := args.Get(0).(*responses.BookingStep)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) RequiresDetailedMeasurements(slug string) bool {
	args := m.Called(slug)
	return args.Bool(0)
}

func (m *MockBookingUsecase) CreatePatient(ctx context.Context) (*backend_dto.Patient, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*backend_dto.Patient)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) ListPatients(ctx context.Context) ([]backend_dto.Patient, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]backend_dto.Patient)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreatedAppointment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CreatedAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) UpdateSlot(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentSlot) (*responses.CreatedAppointment, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*responses.CreatedAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) ListSlots(ctx context.Context, query *requests.SlotQuery) ([]backend_dto.Slot, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).([]backend_dto.Slot)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) SubmitRecall(ctx context.Context, request *requests.CreateRecall) (*backend_dto.RecallDetail, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*backend_dto.RecallDetail)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) SubmitBooking(ctx context.Context) (*responses.CreatedAppointment, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.CreatedAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) ListPending(ctx context.Context, patientID string) ([]responses.PendingAppointment, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).([]responses.PendingAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) ResumePending(ctx context.Context, appointmentID string) (*responses.PendingAppointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.PendingAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) UpdateProgress(ctx context.Context, appointmentID string, request *requests.UpdateBookingProgress) (*responses.PendingAppointment, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*responses.PendingAppointment)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) DeletePending(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockBookingUsecase) UploadFiles(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error) {
	args := m.Called(ctx, files)
	result, _ := args.Get(0).([]backend_dto.UploadedFile)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) AttachFiles(ctx context.Context, patientID string, request *requests.AttachFiles) error {
	args := m.Called(ctx, patientID, request)
	return args.Error(0)
}

func (m *MockBookingUsecase) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockBookingUsecase) FindInvoice(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*backend_dto.Invoice)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) DownloadInvoice(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error) {
	args := m.Called(ctx, invoiceNumber)
	result, _ := args.Get(0).(*backend_dto.InvoicePDF)
	return result, args.Error(1)
}

type MockDoctorNotesUsecase struct {
	mock.Mock
}

func (m *MockDoctorNotesUsecase) Load(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.DraftStatus)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) Status(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.DraftStatus)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) UpdateFormData(ctx context.Context, appointmentID string, request *requests.UpdateDraftValue) (*responses.DraftStatus, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*responses.DraftStatus)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) GetFormValue(ctx context.Context, appointmentID string, path []string) (*responses.DraftValue, error) {
	args := m.Called(ctx, appointmentID, path)
	result, _ := args.Get(0).(*responses.DraftValue)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) Flush(ctx context.Context, appointmentID string) (*responses.DraftStatus, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.DraftStatus)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) FlushAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDoctorNotesUsecase) ClearFormData(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockDoctorNotesUsecase) StageAttachment(ctx context.Context, appointmentID string, file *backend_dto.FilePart) (*responses.DraftStatus, error) {
	args := m.Called(ctx, appointmentID, file)
	result, _ := args.Get(0).(*responses.DraftStatus)
	return result, args.Error(1)
}

func (m *MockDoctorNotesUsecase) Submit(ctx context.Context, appointmentID string, request *requests.SubmitDoctorNotes, dietChart *backend_dto.FilePart) (*backend_dto.DoctorNotes, error) {
	args := m.Called(ctx, appointmentID, request, dietChart)
	result, _ := args.Get(0).(*backend_dto.DoctorNotes)
	return result, args.Error(1)
}

type MockTestimonialUsecase struct {
	mock.Mock
}

func (m *MockTestimonialUsecase) FindActive(ctx context.Context) []backend_dto.Testimonial {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]backend_dto.Testimonial)
	return result
}

func (m *MockTestimonialUsecase) FindAll(ctx context.Context) ([]backend_dto.Testimonial, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]backend_dto.Testimonial)
	return result, args.Error(1)
}

func (m *MockTestimonialUsecase) Create(ctx context.Context, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error) {
	args := m.Called(ctx, request, image)
	result, _ := args.Get(0).(*backend_dto.Testimonial)
	return result, args.Error(1)
}

func (m *MockTestimonialUsecase) Update(ctx context.Context, testimonialID string, request *requests.TestimonialForm, image *backend_dto.FilePart) (*backend_dto.Testimonial, error) {
	args := m.Called(ctx, testimonialID, request, image)
	result, _ := args.Get(0).(*backend_dto.Testimonial)
	return result, args.Error(1)
}

func (m *MockTestimonialUsecase) Delete(ctx context.Context, testimonialID string) error {
	args := m.Called(ctx, testimonialID)
	return args.Error(0)
}

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) ListAppointments(ctx context.Context, query *requests.AdminAppointmentQuery) ([]backend_dto.Appointment, *responses.Pagination, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).([]backend_dto.Appointment)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return result, pagination, args.Error(2)
}

func (m *MockAdminUsecase) AppointmentDetail(ctx context.Context, appointmentID string) (*responses.AdminAppointmentDetail, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.AdminAppointmentDetail)
	return result, args.Error(1)
}

func (m *MockAdminUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*backend_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*backend_dto.Appointment)
	return result, args.Error(1)
}

func (m *MockAdminUsecase) DeleteAppointment(ctx context.Context, appointmentID string, request *requests.AdminDeleteAppointment) (*backend_dto.MessageResponse, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*backend_dto.MessageResponse)
	return result, args.Error(1)
}

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) Services() []responses.Service {
	args := m.Called()
	result, _ := args.Get(0).([]responses.Service)
	return result
}

func (m *MockCatalogUsecase) FindBySlug(slug string) (*responses.Service, error) {
	args := m.Called(slug)
	result, _ := args.Get(0).(*responses.Service)
	return result, args.Error(1)
}

type MockSEOUsecase struct {
	mock.Mock
}

func (m *MockSEOUsecase) Robots() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSEOUsecase) Sitemap() ([]byte, error) {
	args := m.Called()
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Load(ctx context.Context, r *http.Request) (*models.Session, error) {
	args := m.Called(ctx, r)
	result, _ := args.Get(0).(*models.Session)
	return result, args.Error(1)
}

func (m *MockSessionManager) Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	args := m.Called(ctx, w, session)
	return args.Error(0)
}

func (m *MockSessionManager) Destroy(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	args := m.Called(ctx, w, session)
	return args.Error(0)
}
