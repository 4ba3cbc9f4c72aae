package doctornotes

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type doctorNotesBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewDoctorNotesBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.DoctorNotesBackend {
	return &doctorNotesBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

// FindByAppointmentID returns nil without error when no notes exist yet.
func (b *doctorNotesBackend) FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.DoctorNotes, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.DoctorNotesResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendAdminDoctorNotes, url.PathEscape(appointmentID)),
	}, response)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Status == constvars.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return response.DoctorNotes, nil
}

func (b *doctorNotesBackend) Save(ctx context.Context, request *backend_dto.SaveDoctorNotesRequest) (*backend_dto.DoctorNotes, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, request.AppointmentID)
	if err != nil {
		return nil, err
	}

	formData := string(request.FormData)
	if formData == "" {
		formData = "{}"
	}
	multipart := &gateway.Multipart{
		Fields: []gateway.Field{
			{Name: constvars.MultipartFieldAppointmentID, Value: request.AppointmentID},
			{Name: constvars.MultipartFieldFormData, Value: formData},
			{Name: constvars.MultipartFieldIsDraft, Value: strconv.FormatBool(request.IsDraft)},
		},
	}
	if request.DietChart != nil {
		dietChart := *request.DietChart
		dietChart.FieldName = constvars.MultipartFieldDietChart
		multipart.Files = []backend_dto.FilePart{dietChart}
	}

	response := &backend_dto.DoctorNotesResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.BackendAdminDoctorNotes,
		Multipart: multipart,
	}, response)
	if err != nil {
		return nil, err
	}
	return response.DoctorNotes, nil
}
