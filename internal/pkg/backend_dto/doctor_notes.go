package backend_dto

import "github.com/goccy/go-json"

type DoctorNotes struct {
	ID            string          `json:"id"`
	AppointmentID string          `json:"appointmentId"`
	FormData      json.RawMessage `json:"formData,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	IsDraft       bool            `json:"isDraft"`
	IsCompleted   bool            `json:"isCompleted"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

type DoctorNotesResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	DoctorNotes *DoctorNotes `json:"doctorNotes,omitempty"`
}

type SaveDoctorNotesRequest struct {
	AppointmentID string
	FormData      json.RawMessage
	IsDraft       bool
	DietChart     *FilePart
}
