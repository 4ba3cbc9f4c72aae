package booking

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

func pendingView(appointment backend_dto.Appointment) responses.PendingAppointment {
	progress := ""
	if appointment.BookingProgress != nil {
		progress = *appointment.BookingProgress
	}
	return responses.PendingAppointment{
		Appointment: appointment,
		StepLabel:   flows.StepLabel(progress),
		NextStepURL: flows.NextStepURL(progress),
	}
}

// formFromPending rebuilds the booking draft so the visitor continues where the appointment stopped.
func formFromPending(appointment *backend_dto.Appointment) *models.BookingForm {
	form := &models.BookingForm{
		PlanSlug:        appointment.PlanSlug,
		PlanName:        appointment.PlanName,
		PlanPrice:       appointment.PlanPrice,
		PlanDuration:    appointment.PlanDuration,
		AppointmentMode: appointment.Mode,
		PatientID:       appointment.PatientID,
		AppointmentID:   appointment.ID,
		SlotStartAt:     appointment.StartAt,
		SlotEndAt:       appointment.EndAt,
	}
	if appointment.PlanPackageName != nil {
		form.PlanPackageName = *appointment.PlanPackageName
	}
	if appointment.SlotID != nil {
		form.SlotID = *appointment.SlotID
	}
	if appointment.BookingProgress != nil {
		form.BookingProgress = *appointment.BookingProgress
	}
	if appointment.Slot != nil {
		form.SlotID = appointment.Slot.ID
		form.SlotStartAt = appointment.Slot.StartAt
		form.SlotEndAt = appointment.Slot.EndAt
		if form.AppointmentMode == "" {
			form.AppointmentMode = appointment.Slot.Mode
		}
	}
	if appointment.Patient != nil {
		if form.PatientID == "" {
			form.PatientID = appointment.Patient.ID
		}
		form.FullName = appointment.Patient.Name
		form.Mobile = utils.DigitsOnly(appointment.Patient.Phone)
		form.Email = appointment.Patient.Email
	}
	return form
}

func (uc *bookingUsecase) ListPending(ctx context.Context, patientID string) ([]responses.PendingAppointment, error) {
	appointments, err := uc.AppointmentBackend.ListPending(ctx, patientID)
	if err != nil {
		return nil, err
	}

	pending := make([]responses.PendingAppointment, 0, len(appointments))
	for _, appointment := range appointments {
		pending = append(pending, pendingView(appointment))
	}
	return pending, nil
}

func (uc *bookingUsecase) findPending(ctx context.Context, appointmentID string) (*backend_dto.Appointment, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentBackend.ListPending(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			return &appointments[i], nil
		}
	}
	return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusNotFound, constvars.ErrClientPendingNotFound)
}

// ResumePending loads a pending appointment into the booking draft.
func (uc *bookingUsecase) ResumePending(ctx context.Context, appointmentID string) (*responses.PendingAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ResumePending called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findPending(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	err = uc.saveForm(ctx, sessionID, formFromPending(appointment))
	if err != nil {
		return nil, err
	}

	view := pendingView(*appointment)
	uc.Log.Info("bookingUsecase.ResumePending succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, view.NextStepURL),
	)
	return &view, nil
}

func (uc *bookingUsecase) UpdateProgress(ctx context.Context, appointmentID string, request *requests.UpdateBookingProgress) (*responses.PendingAppointment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := advance(form, appointmentID, request.BookingProgress)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentBackend.UpdateProgress(ctx, appointmentID, &backend_dto.UpdateProgressRequest{BookingProgress: progress})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		appointment = &backend_dto.Appointment{ID: appointmentID}
	}
	if appointment.BookingProgress == nil {
		appointment.BookingProgress = &progress
	}

	if form.AppointmentID == appointmentID {
		form.BookingProgress = progress
		err = uc.saveForm(ctx, sessionID, form)
		if err != nil {
			return nil, err
		}
	}

	view := pendingView(*appointment)
	return &view, nil
}

// DeletePending removes the appointment and drops the draft when it tracked that appointment.
func (uc *bookingUsecase) DeletePending(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return err
	}

	err = uc.AppointmentBackend.Delete(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("bookingUsecase.DeletePending error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}

	if form.AppointmentID == appointmentID {
		return uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyBookingForm)
	}
	return nil
}
