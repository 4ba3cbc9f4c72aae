package backend_dto

type PatientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AppointmentSlot struct {
	ID      string `json:"id"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Mode    string `json:"mode"`
}

type Appointment struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patientId,omitempty"`
	SlotID          *string          `json:"slotId,omitempty"`
	Status          string           `json:"status"`
	BookingProgress *string          `json:"bookingProgress,omitempty"`
	StartAt         string           `json:"startAt"`
	EndAt           string           `json:"endAt"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
	Mode            string           `json:"mode,omitempty"`
	PlanSlug        string           `json:"planSlug,omitempty"`
	PlanName        string           `json:"planName,omitempty"`
	PlanPrice       float64          `json:"planPrice,omitempty"`
	PlanDuration    string           `json:"planDuration,omitempty"`
	PlanPackageName *string          `json:"planPackageName,omitempty"`
	PaymentStatus   string           `json:"paymentStatus,omitempty"`
	Amount          float64          `json:"amount,omitempty"`
	Patient         *PatientSummary  `json:"patient,omitempty"`
	Slot            *AppointmentSlot `json:"slot,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID       string  `json:"patientId"`
	SlotID          string  `json:"slotId,omitempty"`
	PlanSlug        string  `json:"planSlug"`
	PlanName        string  `json:"planName"`
	PlanPrice       float64 `json:"planPrice"`
	PlanDuration    string  `json:"planDuration"`
	PlanPackageName string  `json:"planPackageName,omitempty"`
	AppointmentMode string  `json:"appointmentMode"`
	StartAt         string  `json:"startAt,omitempty"`
	EndAt           string  `json:"endAt,omitempty"`
	BookingProgress string  `json:"bookingProgress,omitempty"`
}

type AppointmentResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Data        *Appointment `json:"data,omitempty"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

// Result returns whichever of data or appointment the endpoint populated.
func (r *AppointmentResponse) Result() *Appointment {
	if r.Data != nil {
		return r.Data
	}
	return r.Appointment
}

type UpdateSlotRequest struct {
	SlotID          string `json:"slotId"`
	BookingProgress string `json:"bookingProgress,omitempty"`
}

type UpdateProgressRequest struct {
	BookingProgress string `json:"bookingProgress"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AdminDeleteRequest struct {
	Reason string `json:"reason,omitempty"`
	Scope  string `json:"scope,omitempty"`
}

type AppointmentListResponse struct {
	Success      bool          `json:"success"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	Appointments []Appointment `json:"appointments"`
}

type AppointmentListParams struct {
	Page   int
	Limit  int
	Status string
	Mode   string
	Date   string
	Query  string
}

type AppointmentFile struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}

type RecallEntryDetail struct {
	ID       string  `json:"id"`
	MealType string  `json:"mealType"`
	Time     string  `json:"time"`
	FoodItem string  `json:"foodItem"`
	Quantity string  `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

type RecallDetail struct {
	ID        string              `json:"id"`
	Notes     *string             `json:"notes,omitempty"`
	CreatedAt string              `json:"createdAt"`
	Entries   []RecallEntryDetail `json:"entries"`
}

type PatientDetail struct {
	PatientSummary
	DateOfBirth         string            `json:"dateOfBirth,omitempty"`
	Age                 int               `json:"age,omitempty"`
	Gender              string            `json:"gender,omitempty"`
	Address             string            `json:"address,omitempty"`
	Weight              float64           `json:"weight,omitempty"`
	Height              float64           `json:"height,omitempty"`
	MedicalHistory      string            `json:"medicalHistory,omitempty"`
	AppointmentConcerns string            `json:"appointmentConcerns,omitempty"`
	Files               []AppointmentFile `json:"files,omitempty"`
	Recalls             []RecallDetail    `json:"recalls,omitempty"`
}

type AppointmentDetails struct {
	Appointment
	Patient *PatientDetail `json:"patient,omitempty"`
}

type AppointmentDetailsResponse struct {
	Success     bool                `json:"success"`
	Appointment *AppointmentDetails `json:"appointment"`
}

type PendingAppointmentsResponse struct {
	Success      bool          `json:"success"`
	Appointments []Appointment `json:"appointments"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Scope   string `json:"scope,omitempty"`
}
