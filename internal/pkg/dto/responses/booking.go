package responses

import "anubha-web/internal/pkg/backend_dto"

type BookingStep struct {
	Step                         string            `json:"step"`
	Valid                        bool              `json:"valid"`
	Errors                       map[string]string `json:"errors,omitempty"`
	RequiresDetailedMeasurements bool              `json:"requiresDetailedMeasurements"`
}

type PendingAppointment struct {
	backend_dto.Appointment
	StepLabel   string `json:"stepLabel"`
	NextStepURL string `json:"nextStepUrl"`
}

type CreatedAppointment struct {
	Appointment *backend_dto.Appointment `json:"appointment"`
	NextStepURL string                   `json:"nextStepUrl"`
}

type AdminAppointmentDetail struct {
	Appointment *backend_dto.AppointmentDetails `json:"appointment"`
	Invoice     *backend_dto.Invoice            `json:"invoice,omitempty"`
}
