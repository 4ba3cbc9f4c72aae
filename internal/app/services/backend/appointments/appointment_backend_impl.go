package appointments

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type appointmentBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewAppointmentBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.AppointmentBackend {
	return &appointmentBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

func (b *appointmentBackend) Create(ctx context.Context, request *backend_dto.CreateAppointmentRequest) (*backend_dto.Appointment, error) {
	if request.AppointmentMode != constvars.AppointmentModeInPerson && request.AppointmentMode != constvars.AppointmentModeOnline {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientAppointmentModeInvalid)
	}
	err := utils.RequireFields(constvars.ErrClientPatientIDRequired, request.PatientID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AppointmentResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPost,
		Path:   constvars.BackendAppointmentsCreate,
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Result(), nil
}

func (b *appointmentBackend) UpdateSlot(ctx context.Context, appointmentID string, request *backend_dto.UpdateSlotRequest) (*backend_dto.Appointment, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}
	err = utils.RequireFields(constvars.ErrClientSlotIDRequired, request.SlotID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AppointmentResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPatch,
		Path:   fmt.Sprintf("%s/%s/slot", constvars.BackendAppointments, url.PathEscape(appointmentID)),
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Result(), nil
}

func (b *appointmentBackend) ListPending(ctx context.Context, patientID string) ([]backend_dto.Appointment, error) {
	req := &gateway.Request{
		Method: constvars.MethodGet,
		Path:   constvars.BackendAppointmentsPending,
	}
	if patientID != "" {
		req.Query = url.Values{"patientId": []string{patientID}}
	}

	response := &backend_dto.PendingAppointmentsResponse{}
	err := b.Gateway.Do(ctx, req, response)
	if err != nil {
		return nil, err
	}
	return response.Appointments, nil
}

func (b *appointmentBackend) UpdateProgress(ctx context.Context, appointmentID string, request *backend_dto.UpdateProgressRequest) (*backend_dto.Appointment, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}
	err = utils.RequireFields(constvars.ErrClientBookingProgressRequired, request.BookingProgress)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AppointmentResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPatch,
		Path:   fmt.Sprintf("%s/%s/progress", constvars.BackendAppointments, url.PathEscape(appointmentID)),
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Result(), nil
}

func (b *appointmentBackend) Delete(ctx context.Context, appointmentID string) error {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return err
	}

	return b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodDelete,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendAppointments, url.PathEscape(appointmentID)),
	}, nil)
}

func (b *appointmentBackend) AdminList(ctx context.Context, params backend_dto.AppointmentListParams) (*backend_dto.AppointmentListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	for key, value := range map[string]string{
		"status": params.Status,
		"mode":   params.Mode,
		"date":   params.Date,
		"q":      params.Query,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	response := &backend_dto.AppointmentListResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   constvars.BackendAdminAppointments,
		Query:  query,
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *appointmentBackend) AdminDetail(ctx context.Context, appointmentID string) (*backend_dto.AppointmentDetails, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AppointmentDetailsResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendAdminAppointments, url.PathEscape(appointmentID)),
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Appointment, nil
}

func (b *appointmentBackend) AdminUpdateStatus(ctx context.Context, appointmentID string, request *backend_dto.UpdateStatusRequest) (*backend_dto.Appointment, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AppointmentResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPatch,
		Path:   fmt.Sprintf("%s/%s/status", constvars.BackendAdminAppointments, url.PathEscape(appointmentID)),
		Body:   request,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.Result(), nil
}

// AdminDelete soft-deletes with a reason or scope, and falls back to the plain delete otherwise.
func (b *appointmentBackend) AdminDelete(ctx context.Context, appointmentID string, request *backend_dto.AdminDeleteRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	req := &gateway.Request{
		Method: constvars.MethodDelete,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendAdminAppointments, url.PathEscape(appointmentID)),
	}
	if request != nil && (request.Reason != "" || request.Scope != "") {
		req.Method = constvars.MethodPatch
		req.Path = req.Path + "/admin-delete"
		req.Body = request
	}

	response := &backend_dto.MessageResponse{}
	err = b.Gateway.Do(ctx, req, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
