package requests

type CreateAppointment struct {
	PatientID       string  `json:"patientId" validate:"required"`
	SlotID          string  `json:"slotId,omitempty"`
	PlanSlug        string  `json:"planSlug" validate:"required"`
	PlanName        string  `json:"planName" validate:"required"`
	PlanPrice       float64 `json:"planPrice" validate:"required,gt=0"`
	PlanDuration    string  `json:"planDuration,omitempty"`
	PlanPackageName string  `json:"planPackageName,omitempty"`
	AppointmentMode string  `json:"appointmentMode" validate:"required,oneof=IN_PERSON ONLINE"`
	StartAt         string  `json:"startAt,omitempty"`
	EndAt           string  `json:"endAt,omitempty"`
	BookingProgress string  `json:"bookingProgress,omitempty" validate:"omitempty,oneof=USER_DETAILS RECALL SLOT PAYMENT"`
}

type UpdateAppointmentSlot struct {
	SlotID          string `json:"slotId" validate:"required"`
	BookingProgress string `json:"bookingProgress,omitempty" validate:"omitempty,oneof=USER_DETAILS RECALL SLOT PAYMENT"`
}

type UpdateBookingProgress struct {
	BookingProgress string `json:"bookingProgress" validate:"required,oneof=USER_DETAILS RECALL SLOT PAYMENT"`
}

type SlotQuery struct {
	Date string `json:"date" validate:"required,date_ymd"`
	Mode string `json:"mode" validate:"omitempty,oneof=IN_PERSON ONLINE"`
}

type RecallEntry struct {
	MealType string `json:"mealType" validate:"required"`
	Time     string `json:"time" validate:"required"`
	FoodItem string `json:"foodItem" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

type CreateRecall struct {
	PatientID     string        `json:"patientId" validate:"required"`
	Notes         string        `json:"notes,omitempty"`
	Entries       []RecallEntry `json:"entries" validate:"required,min=1,dive"`
	AppointmentID string        `json:"appointmentId,omitempty"`
}

type AttachFiles struct {
	FileIDs []string `json:"fileIds" validate:"required,min=1,dive,required"`
}
