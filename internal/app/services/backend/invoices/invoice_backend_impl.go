package invoices

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type invoiceBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewInvoiceBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.InvoiceBackend {
	return &invoiceBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

// FindByAppointmentID returns ErrNotFound while the invoice has not been generated yet.
func (b *invoiceBackend) FindByAppointmentID(ctx context.Context, appointmentID string) (*backend_dto.Invoice, error) {
	err := utils.RequireFields(constvars.ErrClientAppointmentIDRequired, appointmentID)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.InvoiceResponse{}
	err = b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendInvoiceAppointment, url.PathEscape(appointmentID)),
	}, response)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Status == constvars.StatusNotFound {
			return nil, exceptions.ErrClientCustomMessage(err, constvars.StatusNotFound, constvars.ErrClientInvoiceNotFound)
		}
		return nil, err
	}
	if response.Invoice == nil {
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusNotFound, constvars.ErrClientInvoiceNotFound)
	}
	return response.Invoice, nil
}

func (b *invoiceBackend) Download(ctx context.Context, invoiceNumber string) (*backend_dto.InvoicePDF, error) {
	err := utils.RequireFields(constvars.ErrClientInvoiceNumberRequired, invoiceNumber)
	if err != nil {
		return nil, err
	}

	download, err := b.Gateway.Download(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%s", constvars.BackendInvoice, url.PathEscape(invoiceNumber)),
	})
	if err != nil {
		return nil, err
	}

	pdf := &backend_dto.InvoicePDF{
		FileName:    download.FileName,
		ContentType: download.ContentType,
		Content:     download.Content,
	}
	if pdf.FileName == "" {
		pdf.FileName = invoiceNumber + ".pdf"
	}
	if pdf.ContentType == "" {
		pdf.ContentType = constvars.MIMEApplicationPDF
	}
	return pdf, nil
}
