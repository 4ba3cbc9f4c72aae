package doctornotes

import (
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Document is the typed view of the intake form used to check choice fields before submission.
// Free text, quantities and times stay untyped; members not listed here pass through unchecked.
type Document struct {
	PreviousDietTaken string `json:"previousDietTaken" validate:"omitempty,oneof=Yes No"`
	TypeOfDietTaken   string `json:"typeOfDietTaken" validate:"omitempty,oneof='By Google' 'By Experts'"`
	MaritalStatus     string `json:"maritalStatus" validate:"omitempty,oneof=Married Unmarried"`
	DietPreference    string `json:"dietPreference" validate:"omitempty,oneof=Veg Non-Veg 'Egg & Veg'"`
	WorkoutTiming     string `json:"workoutTiming" validate:"omitempty,oneof=Morning Afternoon Evening Night"`
	WorkoutType       string `json:"workoutType" validate:"omitempty,oneof='Sport Type' Yoga Gym Homebase"`

	Breakfast     *Breakfast     `json:"breakfast"`
	Questionnaire *Questionnaire `json:"questionnaire"`
	FoodFrequency *FoodFrequency `json:"foodFrequency"`
	HealthProfile *HealthProfile `json:"healthProfile"`
}

type Breakfast struct {
	Roti *struct {
		Ghee string `json:"ghee" validate:"omitempty,oneof='With Ghee' 'Without Ghee'"`
	} `json:"roti"`
	Items []CheckedItem `json:"items" validate:"omitempty,dive"`
}

type CheckedItem struct {
	Name string `json:"name" validate:"required"`
}

type Questionnaire struct {
	FoodAllergies   string `json:"foodAllergies" validate:"omitempty,oneof=Yes No"`
	FoodIntolerance string `json:"foodIntolerance" validate:"omitempty,oneof=Yes No"`
	EatingSpeed     string `json:"eatingSpeed" validate:"omitempty,oneof=Quick Slow Moderate"`
	HungerPangs     string `json:"hungerPangs" validate:"omitempty,oneof=Yes No"`
	HungerPangsTime string `json:"hungerPangsTime" validate:"omitempty,oneof=Morning Afternoon Evening Night"`
	EmotionalEater  string `json:"emotionalEater" validate:"omitempty,oneof=Yes No"`
	MainMeal        string `json:"mainMeal" validate:"omitempty,oneof=Breakfast Lunch Dinner"`
	CraveSweets     string `json:"craveSweets" validate:"omitempty,oneof=Yes No"`
	FastingInWeek   string `json:"fastingInWeek" validate:"omitempty,oneof=Yes No"`
	FastingReason   string `json:"fastingReason" validate:"omitempty,oneof='Religious Based' 'Personal Based'"`
}

type FoodFrequency struct {
	Dairy *struct {
		CurdButtermilk string `json:"curdButtermilk" validate:"omitempty,oneof=Daily Weekly Monthly"`
	} `json:"dairy"`
	OilFat *struct {
		ReuseFriedOil string `json:"reuseFriedOil" validate:"omitempty,oneof=Yes No"`
	} `json:"oilFat"`
	NonVeg       []CheckedItem `json:"nonVeg" validate:"omitempty,dive"`
	Packaged     []CheckedItem `json:"packaged" validate:"omitempty,dive"`
	Sweeteners   []CheckedItem `json:"sweeteners" validate:"omitempty,dive"`
	Drinks       []CheckedItem `json:"drinks" validate:"omitempty,dive"`
	Lifestyle    []CheckedItem `json:"lifestyle" validate:"omitempty,dive"`
	HealthyFoods []CheckedItem `json:"healthyFoods" validate:"omitempty,dive"`
}

type HealthProfile struct {
	PhysicalActivityLevel string      `json:"physicalActivityLevel" validate:"omitempty,oneof=Sedentary Moderate Heavy"`
	SleepQuality          string      `json:"sleepQuality" validate:"omitempty,oneof=Normal Inadequate Disturbed Insomnia"`
	Pregnancy             string      `json:"pregnancy" validate:"omitempty,oneof=Yes No"`
	PlanningPregnancy     string      `json:"planningPregnancy" validate:"omitempty,oneof=Yes No"`
	Conditions            []Condition `json:"conditions" validate:"omitempty,dive"`
}

type Condition struct {
	Name         string `json:"name" validate:"required"`
	HasCondition string `json:"hasCondition" validate:"omitempty,oneof=Yes No"`
}

// ValidateDocument checks the choice fields of a form document.
func ValidateDocument(doc json.RawMessage) error {
	if len(doc) == 0 {
		return nil
	}

	document := &Document{}
	err := json.Unmarshal(doc, document)
	if err != nil {
		return exceptions.ErrDraftDocumentInvalid(err)
	}

	err = utils.ValidateStruct(document)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
