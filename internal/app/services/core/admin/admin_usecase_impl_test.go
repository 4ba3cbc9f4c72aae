package admin

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts/mocks"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase() (*adminUsecase, *mocks.MockAppointmentBackend, *mocks.MockInvoiceBackend) {
	appointments := new(mocks.MockAppointmentBackend)
	invoices := new(mocks.MockInvoiceBackend)
	cfg := &config.InternalConfig{App: config.App{EndpointPrefix: "api", Version: "v1"}}
	uc := NewAdminUsecase(appointments, invoices, cfg, zap.NewNop()).(*adminUsecase)
	return uc, appointments, invoices
}

func TestAdminUsecase_ListAppointments(t *testing.T) {
	t.Run("defaults paging and links the next page", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()
		appointments.On("AdminList", mock.Anything, backend_dto.AppointmentListParams{
			Page:   1,
			Limit:  10,
			Status: "CONFIRMED",
		}).Return(&backend_dto.AppointmentListResponse{
			Total:        25,
			Appointments: []backend_dto.Appointment{{ID: "a-1"}, {ID: "a-2"}},
		}, nil)

		list, pagination, err := uc.ListAppointments(context.Background(), &requests.AdminAppointmentQuery{Status: "CONFIRMED"})
		require.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, 25, pagination.Total)
		assert.Equal(t, "/api/v1/admin/appointments?page=2&limit=10", pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()
		appointments.On("AdminList", mock.Anything, mock.Anything).
			Return(&backend_dto.AppointmentListResponse{Page: 3, Limit: 5, Total: 10}, nil)

		list, pagination, err := uc.ListAppointments(context.Background(), &requests.AdminAppointmentQuery{Page: 3, Limit: 5})
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		assert.Empty(t, pagination.NextURL)
		assert.Equal(t, "/api/v1/admin/appointments?page=2&limit=5", pagination.PrevURL)
	})

	t.Run("invalid filters never reach the backend", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()

		_, _, err := uc.ListAppointments(context.Background(), &requests.AdminAppointmentQuery{Status: "LOST"})
		require.Error(t, err)
		appointments.AssertNotCalled(t, "AdminList", mock.Anything, mock.Anything)
	})
}

func TestAdminUsecase_AppointmentDetail(t *testing.T) {
	t.Run("includes the invoice when there is one", func(t *testing.T) {
		uc, appointments, invoices := newTestUsecase()
		appointments.On("AdminDetail", mock.Anything, "a-1").
			Return(&backend_dto.AppointmentDetails{Appointment: backend_dto.Appointment{ID: "a-1"}}, nil)
		invoices.On("FindByAppointmentID", mock.Anything, "a-1").
			Return(&backend_dto.Invoice{InvoiceNumber: "INV-1"}, nil)

		detail, err := uc.AppointmentDetail(context.Background(), "a-1")
		require.NoError(t, err)
		assert.Equal(t, "a-1", detail.Appointment.ID)
		require.NotNil(t, detail.Invoice)
		assert.Equal(t, "INV-1", detail.Invoice.InvoiceNumber)
	})

	t.Run("missing invoice leaves it out", func(t *testing.T) {
		uc, appointments, invoices := newTestUsecase()
		appointments.On("AdminDetail", mock.Anything, "a-1").
			Return(&backend_dto.AppointmentDetails{Appointment: backend_dto.Appointment{ID: "a-1"}}, nil)
		invoices.On("FindByAppointmentID", mock.Anything, "a-1").
			Return(nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusNotFound, constvars.ErrClientInvoiceNotFound))

		detail, err := uc.AppointmentDetail(context.Background(), "a-1")
		require.NoError(t, err)
		assert.Nil(t, detail.Invoice)
	})

	t.Run("appointment failure fails the page", func(t *testing.T) {
		uc, appointments, invoices := newTestUsecase()
		appointments.On("AdminDetail", mock.Anything, "a-1").Return(nil, errors.New("boom"))
		invoices.On("FindByAppointmentID", mock.Anything, "a-1").Return(nil, errors.New("boom"))

		_, err := uc.AppointmentDetail(context.Background(), "a-1")
		assert.Error(t, err)
	})
}

func TestAdminUsecase_UpdateStatus(t *testing.T) {
	uc, appointments, _ := newTestUsecase()
	appointments.On("AdminUpdateStatus", mock.Anything, "a-1", &backend_dto.UpdateStatusRequest{Status: "COMPLETED"}).
		Return(&backend_dto.Appointment{ID: "a-1", Status: "COMPLETED"}, nil)

	appointment, err := uc.UpdateStatus(context.Background(), "a-1", &requests.UpdateAppointmentStatus{Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", appointment.Status)

	_, err = uc.UpdateStatus(context.Background(), "a-1", &requests.UpdateAppointmentStatus{Status: "DONE"})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.Fields, "status")
}

func TestAdminUsecase_DeleteAppointment(t *testing.T) {
	t.Run("scope is normalised before sending", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()
		appointments.On("AdminDelete", mock.Anything, "a-1", &backend_dto.AdminDeleteRequest{Reason: "duplicate", Scope: "global"}).
			Return(&backend_dto.MessageResponse{Success: true, Scope: "global"}, nil)

		result, err := uc.DeleteAppointment(context.Background(), "a-1", &requests.AdminDeleteAppointment{Reason: " duplicate ", Scope: " Global"})
		require.NoError(t, err)
		assert.Equal(t, "global", result.Scope)
	})

	t.Run("nil body is a plain delete", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()
		appointments.On("AdminDelete", mock.Anything, "a-1", &backend_dto.AdminDeleteRequest{}).
			Return(&backend_dto.MessageResponse{Success: true}, nil)

		_, err := uc.DeleteAppointment(context.Background(), "a-1", nil)
		require.NoError(t, err)
	})

	t.Run("unknown scope is rejected", func(t *testing.T) {
		uc, appointments, _ := newTestUsecase()

		_, err := uc.DeleteAppointment(context.Background(), "a-1", &requests.AdminDeleteAppointment{Scope: "everything"})
		require.Error(t, err)
		appointments.AssertNotCalled(t, "AdminDelete", mock.Anything, mock.Anything, mock.Anything)
	})
}
