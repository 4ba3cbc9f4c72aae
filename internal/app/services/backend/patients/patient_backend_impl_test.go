package patients

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

func TestPatientBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/patients/me":
			w.Write([]byte(`{"success":true,"patients":[{"id":"p-1","name":"Asha","phone":"9876543210"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/upload/image":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			files := r.MultipartForm.File["files"]
			require.Len(t, files, 2)
			assert.Equal(t, "report.png", files[0].Filename)
			assert.Equal(t, "scan.jpg", files[1].Filename)
			w.Write([]byte(`{"message":"Uploaded","files":[{"id":"f-1","fileName":"report.png"},{"id":"f-2","fileName":"scan.jpg"}]}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/patients/p-1/files":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"fileIds":["f-1","f-2"]}`, string(body))
			w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/patients/file/f-1":
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, TimeoutInSeconds: 5}}
	backend := NewPatientBackend(gateway.NewClient(cfg, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	t.Run("my patients", func(t *testing.T) {
		patients, err := backend.FindMine(ctx)
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "p-1", patients[0].ID)
	})

	t.Run("images upload under the files field", func(t *testing.T) {
		files, err := backend.UploadImages(ctx, []backend_dto.FilePart{
			{FileName: "report.png", ContentType: "image/png", Content: []byte{0x89}},
			{FieldName: "other", FileName: "scan.jpg", ContentType: "image/jpeg", Content: []byte{0xff}},
		})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "f-2", files[1].ID)
	})

	t.Run("attach and delete files", func(t *testing.T) {
		require.NoError(t, backend.AttachFiles(ctx, "p-1", &backend_dto.AttachFilesRequest{FileIDs: []string{"f-1", "f-2"}}))
		require.NoError(t, backend.DeleteFile(ctx, "f-1"))
	})

	t.Run("required inputs are checked first", func(t *testing.T) {
		var customErr *exceptions.CustomError

		_, err := backend.UploadImages(ctx, nil)
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientFilesRequired, customErr.ClientMessage)

		err = backend.AttachFiles(ctx, "p-1", &backend_dto.AttachFilesRequest{})
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientFileIDsRequired, customErr.ClientMessage)

		_, err = backend.CreateRecall(ctx, &backend_dto.CreateRecallRequest{PatientID: "p-1"})
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientRecallEntriesRequired, customErr.ClientMessage)
	})
}
