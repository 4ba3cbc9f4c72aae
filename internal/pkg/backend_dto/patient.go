package backend_dto

type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type PatientListResponse struct {
	Success  bool      `json:"success"`
	Patients []Patient `json:"patients"`
}

// CreatePatientRequest is assembled from the booking form; measurements are sent as entered.
type CreatePatientRequest struct {
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email,omitempty"`
	DateOfBirth  string            `json:"dateOfBirth,omitempty"`
	Age          int               `json:"age,omitempty"`
	Gender       string            `json:"gender,omitempty"`
	Address      string            `json:"address,omitempty"`
	Weight       string            `json:"weight,omitempty"`
	Height       string            `json:"height,omitempty"`
	Measurements map[string]string `json:"measurements,omitempty"`
}

type CreatePatientResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Patient *Patient `json:"patient"`
}

type RecallEntry struct {
	MealType string `json:"mealType"`
	Time     string `json:"time"`
	FoodItem string `json:"foodItem"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type CreateRecallRequest struct {
	PatientID     string        `json:"patientId"`
	Notes         string        `json:"notes,omitempty"`
	Entries       []RecallEntry `json:"entries"`
	AppointmentID string        `json:"appointmentId,omitempty"`
}

type CreateRecallResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    *RecallDetail `json:"data,omitempty"`
}

type AttachFilesRequest struct {
	FileIDs []string `json:"fileIds"`
}
