package gateway

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *observer.ObservedLogs) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.InfoLevel)
	cfg := &config.InternalConfig{
		Backend: config.Backend{
			BaseUrl:          server.URL + "/api",
			TimeoutInSeconds: 5,
		},
	}
	return NewClient(cfg, zap.New(core)), logs
}

func sessionContext() (context.Context, *models.Session) {
	session := models.NewSession("sid", time.Hour, time.Now())
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	return models.ContextWithSession(ctx, session), session
}

func TestClient_Do_DecodesAndRelaysCookies(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))
			http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "backend-cookie", Path: "/"})
			w.Write([]byte(`{"success":true,"user":{"id":"u1","name":"Asha","role":"USER"}}`))
		case "/api/auth/me":
			cookie, err := r.Cookie("connect.sid")
			require.NoError(t, err)
			assert.Equal(t, "backend-cookie", cookie.Value)
			w.Write([]byte(`{"success":true}`))
		}
	})
	ctx, session := sessionContext()

	var resp backend_dto.AuthResponse
	err := client.Do(ctx, &Request{Method: http.MethodPost, Path: "auth/login", Body: map[string]string{"identifier": "a"}}, &resp)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "backend-cookie", session.BackendCookies["connect.sid"])
	assert.True(t, session.IsDirty())

	err = client.Do(ctx, &Request{Method: http.MethodGet, Path: "auth/me"}, nil)
	require.NoError(t, err)
}

func TestClient_Do_UnauthorizedDispatch(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Unauthorized"}`))
	})
	ctx, _ := sessionContext()

	dispatched := 0
	client.OnUnauthorized(func(ctx context.Context) { dispatched++ })

	t.Run("regular endpoint dispatches logout", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: http.MethodGet, Path: "patients/me"}, nil)
		require.Error(t, err)
		assert.Equal(t, 1, dispatched)
		assert.Zero(t, logs.FilterMessage("gatewayClient.send backend rejected request").Len())
	})

	t.Run("auth me and logout are exempt", func(t *testing.T) {
		_ = client.Do(ctx, &Request{Method: http.MethodGet, Path: constvars.BackendAuthMe}, nil)
		_ = client.Do(ctx, &Request{Method: http.MethodPost, Path: constvars.BackendAuthLogout}, nil)
		assert.Equal(t, 1, dispatched)
	})
}

func TestClient_Do_ErrorMapping(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/verify-otp":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Invalid OTP","errors":{"otp":"Invalid OTP"}}`))
		case "/api/appointments/create":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Validation failed","errors":[{"path":["body","slotId"],"message":"Slot is required"}]}`))
		case "/api/patients":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Patient limit reached"}`))
		case "/api/slots/available":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"database down"}`))
		}
	})
	ctx, _ := sessionContext()

	t.Run("auth 400 with details is not logged", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: http.MethodPost, Path: constvars.BackendAuthLoginVerifyOTP}, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.FriendlyInvalidOTP, customErr.ClientMessage)
		assert.Equal(t, "Invalid OTP", customErr.Fields["otp"])
		assert.Zero(t, logs.FilterMessage("gatewayClient.send backend rejected request").Len())
	})

	t.Run("list style field errors", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: http.MethodPost, Path: constvars.BackendAppointmentsCreate}, nil)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Slot is required", apiErr.Fields["slotId"])
		assert.Zero(t, logs.FilterMessage("gatewayClient.send backend rejected request").Len())
	})

	t.Run("400 without field errors is logged", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: http.MethodPost, Path: constvars.BackendPatients}, nil)
		require.Error(t, err)
		assert.Equal(t, 1, logs.FilterMessage("gatewayClient.send backend rejected request").Len())
	})

	t.Run("5xx is logged and hidden", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: http.MethodGet, Path: constvars.BackendSlotsAvailable}, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, customErr.ClientMessage)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, 1, logs.FilterMessage("gatewayClient.send backend server error").Len())
	})
}

func TestClient_Do_Multipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "apt-1", r.FormValue("appointmentId"))
		assert.Equal(t, "true", r.FormValue("isDraft"))

		file, header, err := r.FormFile("dietChart")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "chart.pdf", header.Filename)
		assert.Equal(t, "pdf-bytes", string(content))

		w.Write([]byte(`{"success":true}`))
	})
	ctx, _ := sessionContext()

	err := client.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   constvars.BackendAdminDoctorNotes,
		Multipart: &Multipart{
			Fields: []Field{{Name: "appointmentId", Value: "apt-1"}, {Name: "isDraft", Value: "true"}},
			Files:  []backend_dto.FilePart{{FieldName: "dietChart", FileName: "chart.pdf", ContentType: "application/pdf", Content: []byte("pdf-bytes")}},
		},
	}, nil)
	require.NoError(t, err)
}

func TestClient_Download(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
		w.Header().Set(constvars.HeaderContentDisposition, `attachment; filename="INV-1.pdf"`)
		w.Write([]byte("%PDF"))
	})

	download, err := client.Download(context.Background(), &Request{Method: http.MethodGet, Path: "invoice/INV-1"})
	require.NoError(t, err)
	assert.Equal(t, "INV-1.pdf", download.FileName)
	assert.Equal(t, constvars.MIMEApplicationPDF, download.ContentType)
	assert.Equal(t, []byte("%PDF"), download.Content)
}

func TestClient_Do_TransportFailure(t *testing.T) {
	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: "http://127.0.0.1:1", TimeoutInSeconds: 1}}
	client := NewClient(cfg, zap.NewNop())

	err := client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "auth/me"}, nil)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientReloadPage, customErr.ClientMessage)
}
