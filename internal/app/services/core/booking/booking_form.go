package booking

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const mobileDigits = 10

// RequiresDetailedMeasurements reports whether a plan asks for the full body measurement set.
func RequiresDetailedMeasurements(slug string) bool {
	return slug == constvars.PlanSlugWeightLoss
}

func (uc *bookingUsecase) RequiresDetailedMeasurements(slug string) bool {
	return RequiresDetailedMeasurements(slug)
}

func (uc *bookingUsecase) loadForm(ctx context.Context) (string, *models.BookingForm, error) {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return "", nil, err
	}

	form := &models.BookingForm{}
	_, err = uc.ClientStorage.Get(ctx, sessionID, constvars.StorageKeyBookingForm, form)
	if err != nil {
		return "", nil, err
	}
	return sessionID, form, nil
}

func (uc *bookingUsecase) saveForm(ctx context.Context, sessionID string, form *models.BookingForm) error {
	return uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyBookingForm, form)
}

func (uc *bookingUsecase) GetForm(ctx context.Context) (*models.BookingForm, error) {
	_, form, err := uc.loadForm(ctx)
	return form, err
}

// SetForm merges partial into the stored form; keys absent from partial keep their value
// and keys set to null are cleared.
func (uc *bookingUsecase) SetForm(ctx context.Context, partial map[string]interface{}) (*models.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if mobile, ok := partial["mobile"]; ok && mobile != nil {
		if len(utils.DigitsOnly(fmt.Sprint(mobile))) > mobileDigits {
			return nil, exceptions.ErrFieldValidation(map[string]string{"mobile": constvars.ErrClientMobileInvalid})
		}
	}

	sessionID, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           form,
	})
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	err = decoder.Decode(partial)
	if err != nil {
		uc.Log.Warn("bookingUsecase.SetForm cannot decode patch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if _, ok := partial["mobile"]; ok {
		form.Mobile = utils.DigitsOnly(form.Mobile)
	}
	if _, ok := partial["dob"]; ok {
		form.Age = utils.AgeFromDOB(form.DOB, uc.now())
	}

	err = uc.saveForm(ctx, sessionID, form)
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (uc *bookingUsecase) ResetForm(ctx context.Context) error {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return err
	}
	return uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyBookingForm)
}

// ValidateStep checks the fields a booking step needs before the visitor may continue.
func (uc *bookingUsecase) ValidateStep(ctx context.Context, step string) (*responses.BookingStep, error) {
	_, form, err := uc.loadForm(ctx)
	if err != nil {
		return nil, err
	}

	var fields map[string]string
	switch step {
	case constvars.BookingStepPersonal:
		fields = personalErrors(form)
	case constvars.BookingStepMeasurements:
		fields = measurementErrors(form)
	case constvars.BookingStepSlot:
		fields = make(map[string]string)
		if strings.TrimSpace(form.SlotID) == "" {
			fields["slotId"] = constvars.ErrClientSlotRequired
		}
	default:
		return nil, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientUnknownBookingStep)
	}

	result := &responses.BookingStep{
		Step:                         step,
		Valid:                        len(fields) == 0,
		RequiresDetailedMeasurements: RequiresDetailedMeasurements(form.PlanSlug),
	}
	if len(fields) > 0 {
		result.Errors = fields
	}
	return result, nil
}

func personalErrors(form *models.BookingForm) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(form.FullName) == "" {
		fields["fullName"] = constvars.ErrClientFullNameRequired
	}
	if !utils.IsValidMobile(form.Mobile) {
		fields["mobile"] = constvars.ErrClientMobileInvalid
	}
	switch email := strings.TrimSpace(form.Email); {
	case email == "":
		fields["email"] = constvars.ErrClientEmailRequired
	case !utils.IsValidEmail(email):
		fields["email"] = constvars.ErrClientEmailInvalid
	}
	return fields
}

func measurementErrors(form *models.BookingForm) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(form.Weight) == "" {
		fields["weight"] = constvars.ErrClientWeightRequired
	}
	if strings.TrimSpace(form.Height) == "" {
		fields["height"] = constvars.ErrClientHeightRequired
	}
	return fields
}

// advance moves the stored progress forward for the appointment the form tracks.
// Any other appointment takes the requested progress as is.
func advance(form *models.BookingForm, appointmentID, next string) (string, error) {
	if form.AppointmentID != appointmentID {
		return flows.AdvanceProgress("", next)
	}
	return flows.AdvanceProgress(form.BookingProgress, next)
}
