package otp

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type otpUsecase struct {
	AuthBackend     contracts.AuthBackend
	AuthUsecase     contracts.AuthUsecase
	ClientStorage   contracts.ClientStorage
	CooldownSeconds int
	Log             *zap.Logger
	now             func() time.Time
}

func NewOTPUsecase(
	authBackend contracts.AuthBackend,
	authUsecase contracts.AuthUsecase,
	clientStorage contracts.ClientStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OTPUsecase {
	cooldown := internalConfig.Booking.OTPResendCooldownInSeconds
	if cooldown <= 0 {
		cooldown = constvars.DefaultOTPResendCooldown
	}
	return &otpUsecase{
		AuthBackend:     authBackend,
		AuthUsecase:     authUsecase,
		ClientStorage:   clientStorage,
		CooldownSeconds: cooldown,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *otpUsecase) loadCooldown(ctx context.Context, sessionID, key string) (flows.Cooldown, error) {
	var cooldown flows.Cooldown
	_, err := uc.ClientStorage.Get(ctx, sessionID, key, &cooldown)
	return cooldown, err
}

func (uc *otpUsecase) startCooldown(ctx context.Context, sessionID, key string, seconds int) error {
	return uc.ClientStorage.Set(ctx, sessionID, key, flows.StartCooldown(uc.now(), seconds))
}

// sendFailed maps a failed send onto the form. A 429 seeds the cooldown with the seconds the backend asked for.
func (uc *otpUsecase) sendFailed(ctx context.Context, sessionID, cooldownKey, field string, err error) error {
	apiErr, ok := gateway.AsAPIError(err)
	if ok && apiErr.Status == constvars.StatusTooManyRequests {
		seconds := flows.CooldownSeconds(apiErr.Message, uc.CooldownSeconds)
		storeErr := uc.startCooldown(ctx, sessionID, cooldownKey, seconds)
		if storeErr != nil {
			return storeErr
		}
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			customErr.WithRetryAfter(seconds)
		}
	}
	return utils.AttachField(err, field)
}

func (uc *otpUsecase) view(state flows.State, cooldown flows.Cooldown) *responses.OTPFlow {
	now := uc.now()
	return &responses.OTPFlow{
		State:          string(state),
		ResendCooldown: cooldown.Remaining(now),
		CanResend:      cooldown.CanResend(now),
	}
}

func (uc *otpUsecase) remove(ctx context.Context, keys ...string) error {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return err
	}
	return uc.ClientStorage.Remove(ctx, sessionID, keys...)
}

// loggedIn caches the user and drops the finished flow.
func (uc *otpUsecase) loggedIn(ctx context.Context, user *backend_dto.User, flowKey, cooldownKey string) (*responses.OTPFlow, error) {
	err := uc.AuthUsecase.Login(ctx, user)
	if err != nil {
		return nil, err
	}
	err = uc.remove(ctx, flowKey, cooldownKey)
	if err != nil {
		return nil, err
	}
	return &responses.OTPFlow{
		State:      string(flows.LoginLoggedIn),
		CanResend:  true,
		User:       user,
		RedirectTo: user.HomePath(),
	}, nil
}

func verifiedAccount(response *backend_dto.AuthResponse) (*backend_dto.User, error) {
	user := response.Account()
	if !response.Success {
		return nil, exceptions.ErrFieldValidation(map[string]string{
			"otp": exceptions.FriendlyMessage(response.Message),
		})
	}
	if response.UserNotFound {
		return nil, nil
	}
	return user, nil
}
