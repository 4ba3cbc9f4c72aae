package otp

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/contracts/mocks"
	"anubha-web/internal/app/models"
	"anubha-web/internal/app/services/core/auth"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/app/services/shared/clientstorage"
	"anubha-web/internal/app/services/shared/gateway"
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
	usecase *otpUsecase
	backend *mocks.MockAuthBackend
	storage contracts.ClientStorage
	ctx     context.Context
	clock   time.Time
}

func newFixture(t *testing.T) *fixture {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	storage := clientstorage.NewClientStorage(redisrepo.NewRedisRepository(client), zap.NewNop(), time.Hour)
	backend := new(mocks.MockAuthBackend)
	authUsecase := auth.NewAuthUsecase(backend, storage, zap.NewNop())
	cfg := &config.InternalConfig{Booking: config.Booking{OTPResendCooldownInSeconds: 60}}

	f := &fixture{
		backend: backend,
		storage: storage,
		ctx:     models.ContextWithSession(context.Background(), models.NewSession("sid-1", time.Hour, time.Now())),
		clock:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	f.usecase = NewOTPUsecase(backend, authUsecase, storage, cfg, zap.NewNop()).(*otpUsecase)
	f.usecase.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) cachedUser(t *testing.T) *backend_dto.User {
	user := &backend_dto.User{}
	found, err := f.storage.Get(f.ctx, "sid-1", constvars.StorageKeyUser, user)
	require.NoError(t, err)
	if !found {
		return nil
	}
	return user
}

func backendError(status int, message, path string) error {
	apiErr := &gateway.APIError{Status: status, Path: path, Message: message}
	return exceptions.ErrBackendResponse(apiErr, status, message, path)
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr
}

var patient = &backend_dto.User{ID: "u-1", Name: "Asha", Phone: "9876543210", Role: constvars.RoleUser}

func TestOTPUsecase_LoginWithExistingAccount(t *testing.T) {
	f := newFixture(t)
	f.backend.On("SendLoginOTP", mock.Anything, &backend_dto.PhoneOTPRequest{Phone: "9876543210"}).
		Return(&backend_dto.MessageResponse{Success: true}, nil)
	f.backend.On("VerifyLoginOTP", mock.Anything, &backend_dto.PhoneOTPRequest{Phone: "9876543210", OTP: "1234"}).
		Return(&backend_dto.AuthResponse{Success: true, User: patient}, nil)

	view, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: " 9876543210 "})
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginVerifyOTP), view.State)
	assert.Equal(t, 60, view.ResendCooldown)
	assert.False(t, view.CanResend)

	f.clock = f.clock.Add(18 * time.Second)
	view, err = f.usecase.LoginFlow(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, view.ResendCooldown)

	view, err = f.usecase.VerifyLoginOTP(f.ctx, &requests.VerifyOTP{OTP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginLoggedIn), view.State)
	assert.Equal(t, "/profile", view.RedirectTo)
	assert.Equal(t, patient, f.cachedUser(t))

	view, err = f.usecase.LoginFlow(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginEnterPhone), view.State)
	assert.True(t, view.CanResend)
}

func TestOTPUsecase_SendLoginOTP(t *testing.T) {
	t.Run("phone is validated before calling the backend", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{})
		assert.Equal(t, constvars.ErrClientPhoneRequired, customError(t, err).Fields["phone"])

		_, err = f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "98765-43210"})
		assert.Equal(t, constvars.ErrClientMobileInvalid, customError(t, err).Fields["phone"])

		f.backend.AssertNotCalled(t, "SendLoginOTP", mock.Anything, mock.Anything)
	})

	t.Run("resend is blocked during cooldown", func(t *testing.T) {
		f := newFixture(t)
		f.backend.On("SendLoginOTP", mock.Anything, mock.Anything).Return(&backend_dto.MessageResponse{Success: true}, nil).Once()

		_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
		require.NoError(t, err)

		f.clock = f.clock.Add(59 * time.Second)
		_, err = f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Equal(t, 1, customErr.RetryAfter)
		f.backend.AssertNumberOfCalls(t, "SendLoginOTP", 1)
	})

	t.Run("429 seeds the cooldown from the message", func(t *testing.T) {
		f := newFixture(t)
		f.backend.On("SendLoginOTP", mock.Anything, mock.Anything).
			Return(nil, backendError(429, "Please wait 42 seconds before requesting a new OTP", constvars.BackendAuthLoginSendOTP))

		_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
		customErr := customError(t, err)
		assert.Equal(t, 42, customErr.RetryAfter)
		assert.Equal(t, "Please wait 42 seconds before requesting a new OTP", customErr.Fields["phone"])

		view, err := f.usecase.LoginFlow(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, string(flows.LoginEnterPhone), view.State)
		assert.Equal(t, 42, view.ResendCooldown)
	})
}

func TestOTPUsecase_VerifyLoginOTP(t *testing.T) {
	t.Run("verify before send is illegal", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.VerifyLoginOTP(f.ctx, &requests.VerifyOTP{OTP: "1234"})
		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
	})

	t.Run("wrong otp stays on the step", func(t *testing.T) {
		f := newFixture(t)
		f.backend.On("SendLoginOTP", mock.Anything, mock.Anything).Return(&backend_dto.MessageResponse{Success: true}, nil)
		f.backend.On("VerifyLoginOTP", mock.Anything, mock.Anything).
			Return(nil, backendError(400, "Invalid OTP", constvars.BackendAuthLoginVerifyOTP))

		_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
		require.NoError(t, err)

		_, err = f.usecase.VerifyLoginOTP(f.ctx, &requests.VerifyOTP{OTP: "0000"})
		assert.Equal(t, constvars.FriendlyInvalidOTP, customError(t, err).Fields["otp"])

		view, err := f.usecase.LoginFlow(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, string(flows.LoginVerifyOTP), view.State)
	})
}

func TestOTPUsecase_LinkExistingAccount(t *testing.T) {
	f := newFixture(t)
	f.backend.On("SendLoginOTP", mock.Anything, mock.Anything).Return(&backend_dto.MessageResponse{Success: true}, nil)
	f.backend.On("VerifyLoginOTP", mock.Anything, mock.Anything).
		Return(&backend_dto.AuthResponse{Success: true, UserNotFound: true}, nil)
	f.backend.On("SendLinkPhoneEmailOTP", mock.Anything, &backend_dto.EmailOTPRequest{Email: "a@b.co", Phone: "9876543210"}).
		Return(&backend_dto.MessageResponse{Success: true}, nil)
	f.backend.On("VerifyLinkPhoneEmailOTP", mock.Anything, &backend_dto.EmailOTPRequest{Email: "a@b.co", Phone: "9876543210", OTP: "5678"}).
		Return(&backend_dto.AuthResponse{Success: true, User: patient}, nil)

	_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
	require.NoError(t, err)

	view, err := f.usecase.VerifyLoginOTP(f.ctx, &requests.VerifyOTP{OTP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginPhoneVerifiedNoAccount), view.State)
	assert.Nil(t, f.cachedUser(t))

	view, err = f.usecase.LinkExistingAccount(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginLinkExistingAccount), view.State)
	assert.True(t, view.CanResend)

	_, err = f.usecase.VerifyLinkEmailOTP(f.ctx, &requests.VerifyOTP{OTP: "5678"})
	assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)

	_, err = f.usecase.SendLinkEmailOTP(f.ctx, &requests.SendEmailOTP{Email: "not-an-email"})
	assert.Equal(t, constvars.ErrClientEmailInvalid, customError(t, err).Fields["email"])

	view, err = f.usecase.SendLinkEmailOTP(f.ctx, &requests.SendEmailOTP{Email: "a@b.co"})
	require.NoError(t, err)
	assert.True(t, view.EmailOTPSent)
	assert.Equal(t, 60, view.ResendCooldown)

	view, err = f.usecase.VerifyLinkEmailOTP(f.ctx, &requests.VerifyOTP{OTP: "5678"})
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginLoggedIn), view.State)
	assert.Equal(t, patient, f.cachedUser(t))
}

func TestOTPUsecase_ChangeLoginNumber(t *testing.T) {
	f := newFixture(t)
	f.backend.On("SendLoginOTP", mock.Anything, mock.Anything).Return(&backend_dto.MessageResponse{Success: true}, nil)

	_, err := f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9876543210"})
	require.NoError(t, err)

	view, err := f.usecase.ChangeLoginNumber(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, string(flows.LoginEnterPhone), view.State)
	assert.Empty(t, view.Phone)
	assert.True(t, view.CanResend)

	_, err = f.usecase.SendLoginOTP(f.ctx, &requests.SendPhoneOTP{Phone: "9123456789"})
	require.NoError(t, err)
}

func TestOTPUsecase_Register(t *testing.T) {
	f := newFixture(t)
	f.backend.On("SendRegisterOTP", mock.Anything, &backend_dto.PhoneOTPRequest{Name: "Asha", Phone: "9876543210"}).
		Return(&backend_dto.MessageResponse{Success: true}, nil)
	f.backend.On("VerifyRegisterOTP", mock.Anything, &backend_dto.PhoneOTPRequest{Name: "Asha", Phone: "9876543210", OTP: "1234"}).
		Return(&backend_dto.AuthResponse{Success: true, User: patient}, nil)

	_, err := f.usecase.SendRegisterOTP(f.ctx, &requests.SendRegisterOTP{Phone: "9876543210"})
	assert.Equal(t, constvars.ErrClientNameRequired, customError(t, err).Fields["name"])

	view, err := f.usecase.SendRegisterOTP(f.ctx, &requests.SendRegisterOTP{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, string(flows.RegisterVerifyOTP), view.State)
	assert.Equal(t, "Asha", view.Name)

	view, err = f.usecase.ChangeRegisterDetails(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, string(flows.RegisterEnterDetails), view.State)

	_, err = f.usecase.SendRegisterOTP(f.ctx, &requests.SendRegisterOTP{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	view, err = f.usecase.VerifyRegisterOTP(f.ctx, &requests.VerifyOTP{OTP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, string(flows.RegisterRegistered), view.State)
	assert.Equal(t, "/profile", view.RedirectTo)
	assert.Equal(t, patient, f.cachedUser(t))
}
