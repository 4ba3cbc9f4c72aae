package models

import (
	"time"

	"github.com/goccy/go-json"
)

// DoctorNotesDraft is the persisted envelope under doctor_notes_draft_<appointmentId>.
type DoctorNotesDraft struct {
	FormData   json.RawMessage  `json:"formData"`
	LastSaved  time.Time        `json:"_lastSaved"`
	Attachment *DraftAttachment `json:"attachment,omitempty"`
}

type DraftAttachment struct {
	ObjectName  string `json:"objectName"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
