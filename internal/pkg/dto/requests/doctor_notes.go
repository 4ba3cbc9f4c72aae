package requests

import "github.com/goccy/go-json"

type UpdateDraftValue struct {
	Path  []string        `json:"path" validate:"required,min=1,dive,required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type SubmitDoctorNotes struct {
	IsDraft bool `json:"isDraft"`
}
