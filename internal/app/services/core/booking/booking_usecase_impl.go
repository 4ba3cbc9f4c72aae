package booking

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	AppointmentBackend contracts.AppointmentBackend
	SlotBackend        contracts.SlotBackend
	PatientBackend     contracts.PatientBackend
	InvoiceBackend     contracts.InvoiceBackend
	ClientStorage      contracts.ClientStorage
	Log                *zap.Logger
	now                func() time.Time
}

func NewBookingUsecase(
	appointmentBackend contracts.AppointmentBackend,
	slotBackend contracts.SlotBackend,
	patientBackend contracts.PatientBackend,
	invoiceBackend contracts.InvoiceBackend,
	clientStorage contracts.ClientStorage,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		AppointmentBackend: appointmentBackend,
		SlotBackend:        slotBackend,
		PatientBackend:     patientBackend,
		InvoiceBackend:     invoiceBackend,
		ClientStorage:      clientStorage,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *bookingUsecase) CreatePatient(ctx context.Context) (*backend_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}

	fields := personalErrors(form)
	for field, message := range measurementErrors(form) {
		fields[field] = message
	}
	if len(fields) > 0 {
		return nil, exceptions.ErrFieldValidation(fields)
	}

	request := &backend_dto.CreatePatientRequest{
		Name:        form.FullName,
		Phone:       form.Mobile,
		Email:       form.Email,
		DateOfBirth: form.DOB,
		Age:         form.Age,
		Gender:      form.Gender,
		Address:     form.Address,
		Weight:      form.Weight,
		Height:      form.Height,
	}
	if RequiresDetailedMeasurements(form.PlanSlug) {
		request.Measurements = make(map[string]string)
		for name, value := range form.DetailedMeasurements() {
			if value != "" {
				request.Measurements[name] = value
			}
		}
	}

	patient, err := uc.PatientBackend.Create(ctx, request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreatePatient error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if patient != nil {
		form.PatientID = patient.ID
		err = uc.saveForm(ctx, sessionID, form)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("bookingUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return patient, nil
}

func (uc *bookingUsecase) ListPatients(ctx context.Context) ([]backend_dto.Patient, error) {
	return uc.PatientBackend.FindMine(ctx)
}

func (uc *bookingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreatedAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.PlanDuration == "" {
		request.PlanDuration = constvars.DefaultPlanDuration
	}
	if request.BookingProgress == "" {
		request.BookingProgress = constvars.BookingProgressUserDetails
	}

	appointment, err := uc.AppointmentBackend.Create(ctx, &backend_dto.CreateAppointmentRequest{
		PatientID:       request.PatientID,
		SlotID:          request.SlotID,
		PlanSlug:        request.PlanSlug,
		PlanName:        request.PlanName,
		PlanPrice:       request.PlanPrice,
		PlanDuration:    request.PlanDuration,
		PlanPackageName: request.PlanPackageName,
		AppointmentMode: request.AppointmentMode,
		StartAt:         request.StartAt,
		EndAt:           request.EndAt,
		BookingProgress: request.BookingProgress,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrDecodeResponse(nil, constvars.BackendAppointmentsCreate)
	}

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}
	form.AppointmentID = appointment.ID
	form.PatientID = request.PatientID
	form.PlanSlug = request.PlanSlug
	form.PlanName = request.PlanName
	form.PlanPrice = request.PlanPrice
	form.PlanDuration = request.PlanDuration
	form.PlanPackageName = request.PlanPackageName
	form.AppointmentMode = request.AppointmentMode
	form.BookingProgress = request.BookingProgress
	err = uc.saveForm(ctx, sessionID, form)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &responses.CreatedAppointment{
		Appointment: appointment,
		NextStepURL: flows.NextStepURL(request.BookingProgress),
	}, nil
}

// UpdateSlot books the chosen slot and records SLOT progress unless the caller names a later step.
func (uc *bookingUsecase) UpdateSlot(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentSlot) (*responses.CreatedAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.BookingProgress == "" {
		request.BookingProgress = constvars.BookingProgressSlot
	}

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := advance(form, appointmentID, request.BookingProgress)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentBackend.UpdateSlot(ctx, appointmentID, &backend_dto.UpdateSlotRequest{
		SlotID:          request.SlotID,
		BookingProgress: progress,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.UpdateSlot error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form.AppointmentID = appointmentID
	form.SlotID = request.SlotID
	form.BookingProgress = progress
	if appointment != nil {
		form.SlotStartAt = appointment.StartAt
		form.SlotEndAt = appointment.EndAt
		if appointment.Slot != nil {
			form.SlotStartAt = appointment.Slot.StartAt
			form.SlotEndAt = appointment.Slot.EndAt
		}
	}
	err = uc.saveForm(ctx, sessionID, form)
	if err != nil {
		return nil, err
	}

	return &responses.CreatedAppointment{
		Appointment: appointment,
		NextStepURL: flows.NextStepURL(progress),
	}, nil
}

func (uc *bookingUsecase) ListSlots(ctx context.Context, query *requests.SlotQuery) ([]backend_dto.Slot, error) {
	err := utils.ValidateStruct(query)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.SlotBackend.FindAvailable(ctx, query.Date, query.Mode)
}

// SubmitRecall sends the food recall and moves the booking past the recall step.
func (uc *bookingUsecase) SubmitRecall(ctx context.Context, request *requests.CreateRecall) (*backend_dto.RecallDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SubmitRecall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}
	appointmentID := request.AppointmentID
	if appointmentID == "" {
		appointmentID = form.AppointmentID
	}

	entries := make([]backend_dto.RecallEntry, 0, len(request.Entries))
	for _, entry := range request.Entries {
		entries = append(entries, backend_dto.RecallEntry{
			MealType: entry.MealType,
			Time:     entry.Time,
			FoodItem: entry.FoodItem,
			Quantity: entry.Quantity,
			Notes:    entry.Notes,
		})
	}

	recall, err := uc.PatientBackend.CreateRecall(ctx, &backend_dto.CreateRecallRequest{
		PatientID:     request.PatientID,
		Notes:         request.Notes,
		Entries:       entries,
		AppointmentID: appointmentID,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.SubmitRecall error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if appointmentID != "" && form.AppointmentID == appointmentID {
		progress, err := flows.AdvanceProgress(form.BookingProgress, constvars.BookingProgressRecall)
		if err == nil && progress != form.BookingProgress {
			_, err = uc.AppointmentBackend.UpdateProgress(ctx, appointmentID, &backend_dto.UpdateProgressRequest{BookingProgress: progress})
			if err != nil {
				return nil, err
			}
			form.BookingProgress = progress
			err = uc.saveForm(ctx, sessionID, form)
			if err != nil {
				return nil, err
			}
		}
	}

	uc.Log.Info("bookingUsecase.SubmitRecall succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return recall, nil
}

// SubmitBooking hands the booking over to payment and clears the draft.
func (uc *bookingUsecase) SubmitBooking(ctx context.Context) (*responses.CreatedAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}
	err = utils.RequireFields(constvars.ErrClientAppointmentIDRequired, form.AppointmentID)
	if err != nil {
		return nil, err
	}
	err = utils.RequireFields(constvars.ErrClientSlotRequired, form.SlotID)
	if err != nil {
		return nil, err
	}
	progress, err := flows.AdvanceProgress(form.BookingProgress, constvars.BookingProgressPayment)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentBackend.UpdateProgress(ctx, form.AppointmentID, &backend_dto.UpdateProgressRequest{BookingProgress: progress})
	if err != nil {
		uc.Log.Error("bookingUsecase.SubmitBooking error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyBookingForm)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, form.AppointmentID),
	)
	return &responses.CreatedAppointment{
		Appointment: appointment,
		NextStepURL: flows.NextStepURL(progress),
	}, nil
}

func (uc *bookingUsecase) UploadFiles(ctx context.Context, files []backend_dto.FilePart) ([]backend_dto.UploadedFile, error) {
	if len(files) == 0 {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientFilesRequired)
	}
	return uc.PatientBackend.UploadImages(ctx, files)
}

func (uc *bookingUsecase) AttachFiles(ctx context.Context, patientID string, request *requests.AttachFiles) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return uc.PatientBackend.AttachFiles(ctx, patientID, &backend_dto.AttachFilesRequest{FileIDs: request.FileIDs})
}

func (uc *bookingUsecase) DeleteFile(ctx context.Context, fileID string) error {
	return uc.PatientBackend.DeleteFile(ctx, fileID)
}

func (uc *bookingUsecase) FindInvoice(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error) {
	return uc.InvoiceBackend.FindByAppointmentID(ctx, appointmentID)
}

func (uc *bookingUsecase) DownloadInvoice(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error) {
	return uc.InvoiceBackend.Download(ctx, invoiceNumber)
}
