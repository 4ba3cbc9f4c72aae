package backend_dto

type Slot struct {
	ID      string `json:"id"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Label   string `json:"label,omitempty"`
	Mode    string `json:"mode"`
}

type SlotListResponse struct {
	Success bool   `json:"success"`
	Data    []Slot `json:"data"`
}
