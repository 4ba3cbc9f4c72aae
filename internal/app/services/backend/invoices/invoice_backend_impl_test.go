package invoices

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInvoiceBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/invoice/appointment/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":"Invoice not found"}`))
		case "/invoice/appointment/apt-1":
			w.Write([]byte(`{"success":true,"invoice":{"invoiceNumber":"INV-1"}}`))
		case "/invoice/INV-1":
			w.Write([]byte("%PDF-1.4"))
		}
	}))
	defer server.Close()

	cfg := &config.InternalConfig{Backend: config.Backend{BaseUrl: server.URL, TimeoutInSeconds: 5}}
	backend := NewInvoiceBackend(gateway.NewClient(cfg, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	t.Run("404 maps to not found", func(t *testing.T) {
		_, err := backend.FindByAppointmentID(ctx, "missing")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvoiceNotFound, customErr.ClientMessage)
	})

	t.Run("found invoice", func(t *testing.T) {
		invoice, err := backend.FindByAppointmentID(ctx, "apt-1")
		require.NoError(t, err)
		assert.Equal(t, "INV-1", invoice.InvoiceNumber)
	})

	t.Run("download falls back to invoice number file name", func(t *testing.T) {
		pdf, err := backend.Download(ctx, "INV-1")
		require.NoError(t, err)
		assert.Equal(t, "INV-1.pdf", pdf.FileName)
		assert.Equal(t, []byte("%PDF-1.4"), pdf.Content)
	})
}
