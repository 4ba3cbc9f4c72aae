package models

// BookingForm is the in-progress booking, persisted under the bookingForm storage key.
// Measurements stay as typed by the visitor.
type BookingForm struct {
	PlanSlug        string  `json:"planSlug,omitempty"`
	PlanName        string  `json:"planName,omitempty"`
	PlanPrice       float64 `json:"planPrice,omitempty"`
	PlanPackageName string  `json:"planPackageName,omitempty"`
	PlanDuration    string  `json:"planDuration,omitempty"`
	AppointmentMode string  `json:"appointmentMode,omitempty"`

	PatientID     string `json:"patientId,omitempty"`
	AppointmentID string `json:"appointmentId,omitempty"`
	SlotID        string `json:"slotId,omitempty"`
	SlotStartAt   string `json:"slotStartAt,omitempty"`
	SlotEndAt     string `json:"slotEndAt,omitempty"`

	FullName string `json:"fullName,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Email    string `json:"email,omitempty"`
	DOB      string `json:"dob,omitempty"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`

	Weight             string `json:"weight,omitempty"`
	Height             string `json:"height,omitempty"`
	Neck               string `json:"neck,omitempty"`
	Waist              string `json:"waist,omitempty"`
	Hip                string `json:"hip,omitempty"`
	Chest              string `json:"chest,omitempty"`
	ChestFemale        string `json:"chestFemale,omitempty"`
	NormalChestLung    string `json:"normalChestLung,omitempty"`
	ExpandedChestLungs string `json:"expandedChestLungs,omitempty"`
	Arms               string `json:"arms,omitempty"`
	Forearms           string `json:"forearms,omitempty"`
	Wrist              string `json:"wrist,omitempty"`
	AbdomenUpper       string `json:"abdomenUpper,omitempty"`
	AbdomenLower       string `json:"abdomenLower,omitempty"`
	ThighUpper         string `json:"thighUpper,omitempty"`
	ThighLower         string `json:"thighLower,omitempty"`
	Calf               string `json:"calf,omitempty"`
	Ankle              string `json:"ankle,omitempty"`

	BookingProgress string `json:"bookingProgress,omitempty"`
}

// DetailedMeasurements lists the weight-loss only measurements by JSON name.
func (f *BookingForm) DetailedMeasurements() map[string]string {
	return map[string]string{
		"neck":               f.Neck,
		"waist":              f.Waist,
		"hip":                f.Hip,
		"chest":              f.Chest,
		"chestFemale":        f.ChestFemale,
		"normalChestLung":    f.NormalChestLung,
		"expandedChestLungs": f.ExpandedChestLungs,
		"arms":               f.Arms,
		"forearms":           f.Forearms,
		"wrist":              f.Wrist,
		"abdomenUpper":       f.AbdomenUpper,
		"abdomenLower":       f.AbdomenLower,
		"thighUpper":         f.ThighUpper,
		"thighLower":         f.ThighLower,
		"calf":               f.Calf,
		"ankle":              f.Ankle,
	}
}
