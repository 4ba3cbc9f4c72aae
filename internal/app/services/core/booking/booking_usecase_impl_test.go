package booking

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/contracts/mocks"
	"anubha-web/internal/app/models"
	"anubha-web/internal/app/services/shared/clientstorage"
	redisrepo "anubha-web/internal/app/services/shared/redis"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	usecase      *bookingUsecase
	appointments *mocks.MockAppointmentBackend
	slots        *mocks.MockSlotBackend
	patients     *mocks.MockPatientBackend
	invoices     *mocks.MockInvoiceBackend
	storage      contracts.ClientStorage
	ctx          context.Context
}

func newFixture(t *testing.T) *fixture {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &fixture{
		appointments: new(mocks.MockAppointmentBackend),
		slots:        new(mocks.MockSlotBackend),
		patients:     new(mocks.MockPatientBackend),
		invoices:     new(mocks.MockInvoiceBackend),
		storage:      clientstorage.NewClientStorage(redisrepo.NewRedisRepository(client), zap.NewNop(), time.Hour),
		ctx:          models.ContextWithSession(context.Background(), models.NewSession("sid-1", time.Hour, time.Now())),
	}
	f.usecase = NewBookingUsecase(f.appointments, f.slots, f.patients, f.invoices, f.storage, zap.NewNop()).(*bookingUsecase)
	f.usecase.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) seed(t *testing.T, form *models.BookingForm) {
	require.NoError(t, f.storage.Set(f.ctx, "sid-1", constvars.StorageKeyBookingForm, form))
}

func (f *fixture) stored(t *testing.T) (*models.BookingForm, bool) {
	form := &models.BookingForm{}
	found, err := f.storage.Get(f.ctx, "sid-1", constvars.StorageKeyBookingForm, form)
	require.NoError(t, err)
	return form, found
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr
}

func ptr(s string) *string { return &s }

func TestBookingUsecase_SetForm(t *testing.T) {
	f := newFixture(t)

	form, err := f.usecase.SetForm(f.ctx, map[string]interface{}{
		"fullName":  "Asha Verma",
		"mobile":    "98765-43210",
		"planSlug":  "weight-loss",
		"planPrice": 1000.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", form.Mobile)

	form, err = f.usecase.SetForm(f.ctx, map[string]interface{}{"dob": "1990-06-15", "weight": 72})
	require.NoError(t, err)
	assert.Equal(t, 33, form.Age)
	assert.Equal(t, "72", form.Weight)
	assert.Equal(t, "Asha Verma", form.FullName)
	assert.Equal(t, 1000.0, form.PlanPrice)

	stored, found := f.stored(t)
	require.True(t, found)
	assert.Equal(t, form, stored)

	require.NoError(t, f.usecase.ResetForm(f.ctx))
	_, found = f.stored(t)
	assert.False(t, found)
}

func TestBookingUsecase_SetForm_RejectsLongMobile(t *testing.T) {
	f := newFixture(t)

	_, err := f.usecase.SetForm(f.ctx, map[string]interface{}{"fullName": "Asha Verma", "mobile": "9876543210"})
	require.NoError(t, err)

	_, err = f.usecase.SetForm(f.ctx, map[string]interface{}{"fullName": "Asha V", "mobile": "98765432101"})
	customErr := customError(t, err)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientMobileInvalid, customErr.Fields["mobile"])

	stored, found := f.stored(t)
	require.True(t, found)
	assert.Equal(t, "9876543210", stored.Mobile)
	assert.Equal(t, "Asha Verma", stored.FullName)
}

func TestBookingUsecase_SetForm_NullClearsField(t *testing.T) {
	f := newFixture(t)

	_, err := f.usecase.SetForm(f.ctx, map[string]interface{}{"weight": "72", "height": "165"})
	require.NoError(t, err)

	form, err := f.usecase.SetForm(f.ctx, map[string]interface{}{"weight": nil})
	require.NoError(t, err)
	assert.Empty(t, form.Weight)
	assert.Equal(t, "165", form.Height)

	step, err := f.usecase.ValidateStep(f.ctx, constvars.BookingStepMeasurements)
	require.NoError(t, err)
	assert.False(t, step.Valid)
	assert.Contains(t, step.Errors, "weight")
}

func TestBookingUsecase_ValidateStep(t *testing.T) {
	tests := []struct {
		name   string
		form   *models.BookingForm
		step   string
		errors map[string]string
	}{
		{
			name: "personal details missing",
			form: &models.BookingForm{Mobile: "12345", Email: "asha@"},
			step: constvars.BookingStepPersonal,
			errors: map[string]string{
				"fullName": constvars.ErrClientFullNameRequired,
				"mobile":   constvars.ErrClientMobileInvalid,
				"email":    constvars.ErrClientEmailInvalid,
			},
		},
		{
			name: "personal details complete",
			form: &models.BookingForm{FullName: "Asha", Mobile: "9876543210", Email: "asha@example.com"},
			step: constvars.BookingStepPersonal,
		},
		{
			name: "measurements need weight and height",
			form: &models.BookingForm{Weight: "72"},
			step: constvars.BookingStepMeasurements,
			errors: map[string]string{
				"height": constvars.ErrClientHeightRequired,
			},
		},
		{
			name: "slot not chosen",
			form: &models.BookingForm{},
			step: constvars.BookingStepSlot,
			errors: map[string]string{
				"slotId": constvars.ErrClientSlotRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(t, tt.form)

			result, err := f.usecase.ValidateStep(f.ctx, tt.step)
			require.NoError(t, err)
			assert.Equal(t, len(tt.errors) == 0, result.Valid)
			assert.Equal(t, tt.errors, result.Errors)
		})
	}

	t.Run("unknown step", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.ValidateStep(f.ctx, "payment")
		assert.Equal(t, constvars.StatusBadRequest, customError(t, err).StatusCode)
	})
}

func TestBookingUsecase_RequiresDetailedMeasurements(t *testing.T) {
	assert.True(t, RequiresDetailedMeasurements("weight-loss"))
	assert.False(t, RequiresDetailedMeasurements("weight-gain"))
	assert.False(t, RequiresDetailedMeasurements(""))
}

func TestBookingUsecase_CreatePatient(t *testing.T) {
	base := models.BookingForm{
		FullName: "Asha",
		Mobile:   "9876543210",
		Email:    "asha@example.com",
		Weight:   "72",
		Height:   "160",
		Waist:    "80",
	}

	t.Run("weight loss sends detailed measurements", func(t *testing.T) {
		f := newFixture(t)
		form := base
		form.PlanSlug = constvars.PlanSlugWeightLoss
		f.seed(t, &form)

		f.patients.On("Create", mock.Anything, mock.MatchedBy(func(request *backend_dto.CreatePatientRequest) bool {
			return request.Measurements["waist"] == "80" && len(request.Measurements) == 1
		})).Return(&backend_dto.Patient{ID: "p-1"}, nil)

		patient, err := f.usecase.CreatePatient(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, "p-1", patient.ID)

		stored, _ := f.stored(t)
		assert.Equal(t, "p-1", stored.PatientID)
	})

	t.Run("other plans leave measurements out", func(t *testing.T) {
		f := newFixture(t)
		form := base
		form.PlanSlug = "pcos"
		f.seed(t, &form)

		f.patients.On("Create", mock.Anything, mock.MatchedBy(func(request *backend_dto.CreatePatientRequest) bool {
			return request.Measurements == nil
		})).Return(&backend_dto.Patient{ID: "p-2"}, nil)

		_, err := f.usecase.CreatePatient(f.ctx)
		require.NoError(t, err)
		f.patients.AssertExpectations(t)
	})

	t.Run("incomplete form never reaches the backend", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, &models.BookingForm{FullName: "Asha"})

		_, err := f.usecase.CreatePatient(f.ctx)
		customErr := customError(t, err)
		assert.Equal(t, constvars.ErrClientWeightRequired, customErr.Fields["weight"])
		f.patients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_CreateAppointment(t *testing.T) {
	f := newFixture(t)
	f.appointments.On("Create", mock.Anything, mock.MatchedBy(func(request *backend_dto.CreateAppointmentRequest) bool {
		return request.PlanDuration == constvars.DefaultPlanDuration &&
			request.BookingProgress == constvars.BookingProgressUserDetails
	})).Return(&backend_dto.Appointment{ID: "a-1", Status: "PENDING"}, nil)

	created, err := f.usecase.CreateAppointment(f.ctx, &requests.CreateAppointment{
		PatientID:       "p-1",
		PlanSlug:        "pcos",
		PlanName:        "PCOS Consultation",
		PlanPrice:       1000,
		AppointmentMode: constvars.AppointmentModeOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, "a-1", created.Appointment.ID)
	assert.Equal(t, "/book/recall", created.NextStepURL)

	stored, _ := f.stored(t)
	assert.Equal(t, "a-1", stored.AppointmentID)
	assert.Equal(t, constvars.BookingProgressUserDetails, stored.BookingProgress)

	t.Run("invalid mode is rejected", func(t *testing.T) {
		_, err := f.usecase.CreateAppointment(f.ctx, &requests.CreateAppointment{
			PatientID:       "p-1",
			PlanSlug:        "pcos",
			PlanName:        "PCOS Consultation",
			PlanPrice:       1000,
			AppointmentMode: "PHONE",
		})
		assert.Contains(t, customError(t, err).Fields, "appointmentMode")
		f.appointments.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestBookingUsecase_UpdateSlot(t *testing.T) {
	t.Run("moves forward to slot", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, &models.BookingForm{AppointmentID: "a-1", BookingProgress: constvars.BookingProgressRecall})
		f.appointments.On("UpdateSlot", mock.Anything, "a-1", &backend_dto.UpdateSlotRequest{
			SlotID:          "s-9",
			BookingProgress: constvars.BookingProgressSlot,
		}).Return(&backend_dto.Appointment{
			ID:   "a-1",
			Slot: &backend_dto.AppointmentSlot{ID: "s-9", StartAt: "2024-05-02T10:00:00Z", EndAt: "2024-05-02T10:40:00Z"},
		}, nil)

		created, err := f.usecase.UpdateSlot(f.ctx, "a-1", &requests.UpdateAppointmentSlot{SlotID: "s-9"})
		require.NoError(t, err)
		assert.Equal(t, "/book/payment", created.NextStepURL)

		stored, _ := f.stored(t)
		assert.Equal(t, "s-9", stored.SlotID)
		assert.Equal(t, "2024-05-02T10:00:00Z", stored.SlotStartAt)
		assert.Equal(t, constvars.BookingProgressSlot, stored.BookingProgress)
	})

	t.Run("never moves backwards", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, &models.BookingForm{AppointmentID: "a-1", BookingProgress: constvars.BookingProgressPayment})

		_, err := f.usecase.UpdateSlot(f.ctx, "a-1", &requests.UpdateAppointmentSlot{SlotID: "s-9"})
		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
		f.appointments.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_SubmitBooking(t *testing.T) {
	f := newFixture(t)
	f.seed(t, &models.BookingForm{AppointmentID: "a-1", SlotID: "s-9", BookingProgress: constvars.BookingProgressSlot})
	f.appointments.On("UpdateProgress", mock.Anything, "a-1", &backend_dto.UpdateProgressRequest{BookingProgress: constvars.BookingProgressPayment}).
		Return(&backend_dto.Appointment{ID: "a-1"}, nil)

	created, err := f.usecase.SubmitBooking(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "/book/payment", created.NextStepURL)

	_, found := f.stored(t)
	assert.False(t, found)
}

func TestBookingUsecase_SubmitRecall(t *testing.T) {
	f := newFixture(t)
	f.seed(t, &models.BookingForm{AppointmentID: "a-1", BookingProgress: constvars.BookingProgressUserDetails})
	f.patients.On("CreateRecall", mock.Anything, mock.MatchedBy(func(request *backend_dto.CreateRecallRequest) bool {
		return request.AppointmentID == "a-1" && len(request.Entries) == 1
	})).Return(&backend_dto.RecallDetail{ID: "r-1"}, nil)
	f.appointments.On("UpdateProgress", mock.Anything, "a-1", &backend_dto.UpdateProgressRequest{BookingProgress: constvars.BookingProgressRecall}).
		Return(&backend_dto.Appointment{ID: "a-1"}, nil)

	recall, err := f.usecase.SubmitRecall(f.ctx, &requests.CreateRecall{
		PatientID: "p-1",
		Entries: []requests.RecallEntry{
			{MealType: "Breakfast", Time: "08:00", FoodItem: "Poha", Quantity: "1 bowl"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", recall.ID)

	stored, _ := f.stored(t)
	assert.Equal(t, constvars.BookingProgressRecall, stored.BookingProgress)
}

func TestBookingUsecase_Pending(t *testing.T) {
	pending := []backend_dto.Appointment{
		{ID: "a-1", PatientID: "p-1", PlanSlug: "weight-loss", PlanName: "Weight Loss", BookingProgress: ptr(constvars.BookingProgressRecall)},
		{ID: "a-2", PatientID: "p-1", PlanSlug: "pcos", PlanPackageName: ptr("3 Months")},
	}

	t.Run("list labels each step", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.On("ListPending", mock.Anything, "p-1").Return(pending, nil)

		views, err := f.usecase.ListPending(f.ctx, "p-1")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Recall", views[0].StepLabel)
		assert.Equal(t, "/book/slot", views[0].NextStepURL)
		assert.Equal(t, "Start Booking", views[1].StepLabel)
	})

	t.Run("resume rebuilds the draft", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.On("ListPending", mock.Anything, "").Return(pending, nil)

		view, err := f.usecase.ResumePending(f.ctx, "a-2")
		require.NoError(t, err)
		assert.Equal(t, "/book/recall", view.NextStepURL)

		stored, _ := f.stored(t)
		assert.Equal(t, "a-2", stored.AppointmentID)
		assert.Equal(t, "3 Months", stored.PlanPackageName)

		_, err = f.usecase.ResumePending(f.ctx, "missing")
		assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
	})

	t.Run("delete drops the matching draft", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, &models.BookingForm{AppointmentID: "a-1"})
		f.appointments.On("Delete", mock.Anything, "a-1").Return(nil)

		require.NoError(t, f.usecase.DeletePending(f.ctx, "a-1"))
		_, found := f.stored(t)
		assert.False(t, found)
	})
}
