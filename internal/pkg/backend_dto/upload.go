package backend_dto

type UploadedFile struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	PublicID    string  `json:"publicId,omitempty"`
	FileName    string  `json:"fileName"`
	MimeType    string  `json:"mimeType"`
	SizeInBytes int64   `json:"sizeInBytes"`
	PatientID   *string `json:"patientId,omitempty"`
}

type UploadResponse struct {
	Message string         `json:"message"`
	Files   []UploadedFile `json:"files"`
}

// FilePart is one file of an outgoing multipart request.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}
