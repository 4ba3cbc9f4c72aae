package requests

type AdminAppointmentQuery struct {
	Page   int    `json:"page" validate:"gte=0"`
	Limit  int    `json:"limit" validate:"gte=0"`
	Status string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	Mode   string `json:"mode" validate:"omitempty,oneof=IN_PERSON ONLINE"`
	Date   string `json:"date" validate:"omitempty,date_ymd"`
	Query  string `json:"q"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// AdminDeleteAppointment with an empty body performs a plain delete.
type AdminDeleteAppointment struct {
	Reason string `json:"reason,omitempty"`
	Scope  string `json:"scope,omitempty" validate:"omitempty,oneof=admin global"`
}

type TestimonialForm struct {
	Name     string `json:"name" validate:"required"`
	Text     string `json:"text" validate:"required"`
	IsActive *bool  `json:"isActive,omitempty"`
}
