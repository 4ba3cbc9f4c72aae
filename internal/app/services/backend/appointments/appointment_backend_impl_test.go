package appointments

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *appointmentBackend {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, TimeoutInSeconds: 5}}
	return NewAppointmentBackend(gateway.NewClient(cfg, zap.NewNop()), zap.NewNop()).(*appointmentBackend)
}

func TestAppointmentBackend_Create(t *testing.T) {
	t.Run("rejects unknown mode before calling", func(t *testing.T) {
		backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("backend must not be called")
		})

		_, err := backend.Create(context.Background(), &backend_dto.CreateAppointmentRequest{PatientID: "p1", AppointmentMode: "PHONE"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientAppointmentModeInvalid, customErr.ClientMessage)
	})

	t.Run("posts to the create endpoint", func(t *testing.T) {
		backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments/create", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":{"id":"apt-1","status":"PENDING"}}`))
		})

		appointment, err := backend.Create(context.Background(), &backend_dto.CreateAppointmentRequest{PatientID: "p1", AppointmentMode: constvars.AppointmentModeOnline})
		require.NoError(t, err)
		assert.Equal(t, "apt-1", appointment.ID)
	})
}

func TestAppointmentBackend_AdminDelete(t *testing.T) {
	tests := []struct {
		name           string
		request        *backend_dto.AdminDeleteRequest
		expectedMethod string
		expectedPath   string
	}{
		{"plain delete without options", nil, http.MethodDelete, "/admin/appointments/apt-1"},
		{"soft delete with reason", &backend_dto.AdminDeleteRequest{Reason: "duplicate"}, http.MethodPatch, "/admin/appointments/apt-1/admin-delete"},
		{"global scope", &backend_dto.AdminDeleteRequest{Scope: constvars.AdminDeleteScopeGlobal}, http.MethodPatch, "/admin/appointments/apt-1/admin-delete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expectedMethod, r.Method)
				assert.Equal(t, tt.expectedPath, r.URL.Path)
				if tt.request != nil {
					body, _ := io.ReadAll(r.Body)
					assert.NotEmpty(t, body)
				}
				w.Write([]byte(`{"success":true,"message":"deleted"}`))
			})

			response, err := backend.AdminDelete(context.Background(), "apt-1", tt.request)
			require.NoError(t, err)
			assert.True(t, response.Success)
		})
	}
}

func TestAppointmentBackend_ListPendingWithPatientFilter(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p1", r.URL.Query().Get("patientId"))
		w.Write([]byte(`{"success":true,"appointments":[{"id":"a1","bookingProgress":"SLOT"}]}`))
	})

	appointments, err := backend.ListPending(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "SLOT", *appointments[0].BookingProgress)
}

func TestAppointmentBackend_UpdateSlotRequiresIDs(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	})

	_, err := backend.UpdateSlot(context.Background(), "", &backend_dto.UpdateSlotRequest{SlotID: "s1"})
	assert.Error(t, err)
	_, err = backend.UpdateSlot(context.Background(), "apt-1", &backend_dto.UpdateSlotRequest{})
	assert.Error(t, err)
}
