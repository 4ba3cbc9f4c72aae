package admin

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type adminUsecase struct {
	AppointmentBackend contracts.AppointmentBackend
	InvoiceBackend     contracts.InvoiceBackend
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAdminUsecase(
	appointmentBackend contracts.AppointmentBackend,
	invoiceBackend contracts.InvoiceBackend,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdminUsecase {
	return &adminUsecase{
		AppointmentBackend: appointmentBackend,
		InvoiceBackend:     invoiceBackend,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *adminUsecase) ListAppointments(ctx context.Context, query *requests.AdminAppointmentQuery) ([]backend_dto.Appointment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	err := utils.ValidateStruct(query)
	if err != nil {
		return nil, nil, exceptions.ErrInputValidation(err)
	}

	page := query.Page
	if page <= 0 {
		page = constvars.AppDefaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = constvars.AppDefaultPageSize
	}

	result, err := uc.AppointmentBackend.AdminList(ctx, backend_dto.AppointmentListParams{
		Page:   page,
		Limit:  limit,
		Status: query.Status,
		Mode:   query.Mode,
		Date:   query.Date,
		Query:  query.Query,
	})
	if err != nil {
		uc.Log.Error("adminUsecase.ListAppointments error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	appointments := result.Appointments
	if appointments == nil {
		appointments = []backend_dto.Appointment{}
	}
	// some backend versions leave paging out of the body
	if result.Page > 0 {
		page = result.Page
	}
	if result.Limit > 0 {
		limit = result.Limit
	}

	baseURL := fmt.Sprintf("/%s/%s/admin/appointments", uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(result.Total, page, limit, baseURL)

	uc.Log.Info("adminUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, pagination, nil
}

// AppointmentDetail fetches the appointment and its invoice side by side. A missing invoice is not an error.
func (uc *adminUsecase) AppointmentDetail(ctx context.Context, appointmentID string) (*responses.AdminAppointmentDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.AppointmentDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	detail := &responses.AdminAppointmentDetail{}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		appointment, err := uc.AppointmentBackend.AdminDetail(groupCtx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrClientCustomMessage(nil, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound)
		}
		detail.Appointment = appointment
		return nil
	})
	group.Go(func() error {
		invoice, err := uc.InvoiceBackend.FindByAppointmentID(groupCtx, appointmentID)
		if err != nil {
			status, _ := utils.ResolveError(err)
			if status == constvars.StatusNotFound {
				return nil
			}
			// the detail page still renders without billing
			uc.Log.Warn("adminUsecase.AppointmentDetail invoice unavailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)
			return nil
		}
		detail.Invoice = invoice
		return nil
	})

	err = group.Wait()
	if err != nil {
		uc.Log.Error("adminUsecase.AppointmentDetail error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return detail, nil
}

func (uc *adminUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*backend_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentBackend.AdminUpdateStatus(ctx, appointmentID, &backend_dto.UpdateStatusRequest{Status: request.Status})
	if err != nil {
		uc.Log.Error("adminUsecase.UpdateStatus error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}

func (uc *adminUsecase) DeleteAppointment(ctx context.Context, appointmentID string, request *requests.AdminDeleteAppointment) (*backend_dto.MessageResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &requests.AdminDeleteAppointment{}
	}
	utils.SanitizeAdminDeleteRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := uc.AppointmentBackend.AdminDelete(ctx, appointmentID, &backend_dto.AdminDeleteRequest{
		Reason: request.Reason,
		Scope:  request.Scope,
	})
	if err != nil {
		uc.Log.Error("adminUsecase.DeleteAppointment error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("adminUsecase.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return result, nil
}
