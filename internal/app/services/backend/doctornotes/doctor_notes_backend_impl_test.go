package doctornotes

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
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoctorNotesBackend(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/doctor-notes/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Doctor notes not found"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/admin/doctor-notes/apt-1":
			w.Write([]byte(`{"success":true,"doctorNotes":{"id":"n-1","appointmentId":"apt-1","formData":{"notes":"server"},"isDraft":true}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/admin/doctor-notes":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "apt-1", r.FormValue("appointmentId"))
			assert.JSONEq(t, `{"notes":"final"}`, r.FormValue("formData"))
			assert.Equal(t, "false", r.FormValue("isDraft"))

			file, header, err := r.FormFile("dietChart")
			require.NoError(t, err)
			defer file.Close()
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "chart.pdf", header.Filename)
			assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
			assert.Equal(t, []byte("%PDF"), content)

			w.Write([]byte(`{"success":true,"doctorNotes":{"id":"n-1","appointmentId":"apt-1","isCompleted":true}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, TimeoutInSeconds: 5}}
	backend := NewDoctorNotesBackend(gateway.NewClient(cfg, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	t.Run("404 means no notes yet", func(t *testing.T) {
		notes, err := backend.FindByAppointmentID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, notes)
	})

	t.Run("existing notes", func(t *testing.T) {
		notes, err := backend.FindByAppointmentID(ctx, "apt-1")
		require.NoError(t, err)
		require.NotNil(t, notes)
		assert.True(t, notes.IsDraft)
		assert.JSONEq(t, `{"notes":"server"}`, string(notes.FormData))
	})

	t.Run("save sends form fields and the diet chart", func(t *testing.T) {
		notes, err := backend.Save(ctx, &backend_dto.SaveDoctorNotesRequest{
			AppointmentID: "apt-1",
			FormData:      json.RawMessage(`{"notes":"final"}`),
			DietChart: &backend_dto.FilePart{
				FileName:    "chart.pdf",
				ContentType: "application/pdf",
				Content:     []byte("%PDF"),
			},
		})
		require.NoError(t, err)
		assert.True(t, notes.IsCompleted)
	})

	t.Run("missing appointment id never reaches the backend", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		_, err := backend.Save(ctx, &backend_dto.SaveDoctorNotesRequest{})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, before, atomic.LoadInt32(&calls))
	})
}
