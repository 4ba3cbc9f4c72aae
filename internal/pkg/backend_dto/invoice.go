package backend_dto

type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	AppointmentID string `json:"appointmentId"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

type InvoiceResponse struct {
	Success bool     `json:"success"`
	Invoice *Invoice `json:"invoice,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// InvoicePDF is the downloaded binary, streamed back to the browser unchanged.
type InvoicePDF struct {
	FileName    string
	ContentType string
	Content     []byte
}
