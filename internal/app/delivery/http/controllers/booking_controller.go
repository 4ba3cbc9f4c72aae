package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/utils"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) GetForm(w http.ResponseWriter, r *http.Request) {
	form, err := ctrl.BookingUsecase.GetForm(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFormMessage, form)
}

func (ctrl *BookingController) SetForm(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	partial := make(map[string]interface{})
	err := decodeJSON(r, &partial)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	form, err := ctrl.BookingUsecase.SetForm(r.Context(), partial)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFormUpdatedMessage, form)
}

func (ctrl *BookingController) ResetForm(w http.ResponseWriter, r *http.Request) {
	err := ctrl.BookingUsecase.ResetForm(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFormResetMessage, nil)
}

func (ctrl *BookingController) ValidateStep(w http.ResponseWriter, r *http.Request) {
	step := chi.URLParam(r, constvars.URLParamStep)

	result, err := ctrl.BookingUsecase.ValidateStep(r.Context(), step)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStepValidMessage, result)
}

func (ctrl *BookingController) RequiresDetailedMeasurements(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamSlug)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFormMessage, map[string]bool{
		"requiresDetailedMeasurements": ctrl.BookingUsecase.RequiresDetailedMeasurements(slug),
	})
}

func (ctrl *BookingController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	patient, err := ctrl.BookingUsecase.CreatePatient(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, patient)
}

func (ctrl *BookingController) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := ctrl.BookingUsecase.ListPatients(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, patients)
}

func (ctrl *BookingController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateAppointment)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	created, err := ctrl.BookingUsecase.CreateAppointment(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedMessage, created)
}

func (ctrl *BookingController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	// Bind body to request
	request := new(requests.UpdateAppointmentSlot)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	updated, err := ctrl.BookingUsecase.UpdateSlot(r.Context(), appointmentID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentSlotUpdatedMessage, updated)
}

func (ctrl *BookingController) ListSlots(w http.ResponseWriter, r *http.Request) {
	query := &requests.SlotQuery{
		Date: r.URL.Query().Get(constvars.URLQueryParamDate),
		Mode: r.URL.Query().Get(constvars.URLQueryParamMode),
	}

	slots, err := ctrl.BookingUsecase.ListSlots(r.Context(), query)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, slots)
}

func (ctrl *BookingController) SubmitRecall(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateRecall)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeCreateRecallRequest(request)

	recall, err := ctrl.BookingUsecase.SubmitRecall(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecallSubmittedMessage, recall)
}

func (ctrl *BookingController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	created, err := ctrl.BookingUsecase.SubmitBooking(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedMessage, created)
}

func (ctrl *BookingController) ListPending(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get(constvars.URLQueryParamPatientID)

	pending, err := ctrl.BookingUsecase.ListPending(r.Context(), patientID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, pending)
}

func (ctrl *BookingController) ResumePending(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	pending, err := ctrl.BookingUsecase.ResumePending(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFormMessage, pending)
}

func (ctrl *BookingController) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	// Bind body to request
	request := new(requests.UpdateBookingProgress)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	pending, err := ctrl.BookingUsecase.UpdateProgress(r.Context(), appointmentID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentProgressMessage, pending)
}

func (ctrl *BookingController) DeletePending(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	err := ctrl.BookingUsecase.DeletePending(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeletedMessage, nil)
}

func (ctrl *BookingController) UploadFiles(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(r)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	files, err := readFiles(r, constvars.MultipartFieldFiles)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	uploaded, err := ctrl.BookingUsecase.UploadFiles(r.Context(), files)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.FilesUploadedMessage, uploaded)
}

func (ctrl *BookingController) AttachFiles(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// Bind body to request
	request := new(requests.AttachFiles)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	err = ctrl.BookingUsecase.AttachFiles(r.Context(), patientID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FilesAttachedMessage, nil)
}

func (ctrl *BookingController) DeleteFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, constvars.URLParamFileID)

	err := ctrl.BookingUsecase.DeleteFile(r.Context(), fileID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FileDeletedMessage, nil)
}

func (ctrl *BookingController) FindInvoice(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	invoice, err := ctrl.BookingUsecase.FindInvoice(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInvoiceSuccessMessage, invoice)
}

// DownloadInvoice streams the PDF as an attachment.
func (ctrl *BookingController) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := chi.URLParam(r, constvars.URLParamInvoiceNumber)

	pdf, err := ctrl.BookingUsecase.DownloadInvoice(r.Context(), invoiceNumber)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	contentType := pdf.ContentType
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", pdf.FileName))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(pdf.Content)))
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write(pdf.Content)
}
