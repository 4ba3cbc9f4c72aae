package responses

import (
	"time"

	"github.com/goccy/go-json"
)

type DraftStatus struct {
	AppointmentID     string            `json:"appointmentId"`
	FormData          json.RawMessage   `json:"formData"`
	HasUnsavedChanges bool              `json:"hasUnsavedChanges"`
	IsAutoSaving      bool              `json:"isAutoSaving"`
	LastSaved         *time.Time        `json:"lastSaved,omitempty"`
	Attachment        *StagedAttachment `json:"attachment,omitempty"`
}

type StagedAttachment struct {
	ObjectName  string `json:"objectName"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type DraftValue struct {
	Path  []string        `json:"path"`
	Value json.RawMessage `json:"value"`
}
