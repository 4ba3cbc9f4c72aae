package otp

import (
	"anubha-web/internal/app/services/core/auth"
	"anubha-web/internal/app/services/core/flows"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

func (uc *otpUsecase) loadRegister(ctx context.Context) (string, *flows.RegisterFlow, flows.Cooldown, error) {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}

	flow := flows.NewRegisterFlow()
	_, err = uc.ClientStorage.Get(ctx, sessionID, constvars.StorageKeyRegisterFlow, flow)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}
	if flow.State == "" {
		flow.Reset()
	}

	cooldown, err := uc.loadCooldown(ctx, sessionID, constvars.StorageKeyRegisterOTPExpiry)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}
	return sessionID, flow, cooldown, nil
}

func (uc *otpUsecase) registerView(flow *flows.RegisterFlow, cooldown flows.Cooldown) *responses.OTPFlow {
	view := uc.view(flow.State, cooldown)
	view.Name = flow.Name
	view.Phone = flow.Phone
	return view
}

func (uc *otpUsecase) RegisterFlow(ctx context.Context) (*responses.OTPFlow, error) {
	_, flow, cooldown, err := uc.loadRegister(ctx)
	if err != nil {
		return nil, err
	}
	return uc.registerView(flow, cooldown), nil
}

func (uc *otpUsecase) SendRegisterOTP(ctx context.Context, request *requests.SendRegisterOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.SendRegisterOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, exceptions.ErrFieldValidation(map[string]string{"name": constvars.ErrClientNameRequired})
	}
	phone, err := auth.ValidatePhone(request.Phone)
	if err != nil {
		return nil, err
	}

	sessionID, flow, cooldown, err := uc.loadRegister(ctx)
	if err != nil {
		return nil, err
	}
	if flow.Phone == phone && !cooldown.CanResend(uc.now()) {
		return nil, exceptions.ErrResendCooldown(cooldown.Remaining(uc.now()))
	}

	next := *flow
	err = next.OTPSent(name, phone)
	if err != nil {
		return nil, err
	}

	_, err = uc.AuthBackend.SendRegisterOTP(ctx, &backend_dto.PhoneOTPRequest{Name: name, Phone: phone})
	if err != nil {
		return nil, uc.sendFailed(ctx, sessionID, constvars.StorageKeyRegisterOTPExpiry, "phone", err)
	}

	err = uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyRegisterFlow, &next)
	if err != nil {
		return nil, err
	}
	err = uc.startCooldown(ctx, sessionID, constvars.StorageKeyRegisterOTPExpiry, uc.CooldownSeconds)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("otpUsecase.SendRegisterOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.registerView(&next, flows.StartCooldown(uc.now(), uc.CooldownSeconds)), nil
}

func (uc *otpUsecase) VerifyRegisterOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.VerifyRegisterOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	otp, err := auth.ValidateOTP(request.OTP)
	if err != nil {
		return nil, err
	}

	_, flow, _, err := uc.loadRegister(ctx)
	if err != nil {
		return nil, err
	}
	probe := *flow
	err = probe.Registered()
	if err != nil {
		return nil, err
	}

	response, err := uc.AuthBackend.VerifyRegisterOTP(ctx, &backend_dto.PhoneOTPRequest{
		Name:  flow.Name,
		Phone: flow.Phone,
		OTP:   otp,
	})
	if err != nil {
		return nil, utils.AttachField(err, "otp")
	}
	user, err := verifiedAccount(response)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrFieldValidation(map[string]string{
			"otp": exceptions.FriendlyMessage(response.Message),
		})
	}

	view, err := uc.loggedIn(ctx, user, constvars.StorageKeyRegisterFlow, constvars.StorageKeyRegisterOTPExpiry)
	if err != nil {
		return nil, err
	}
	view.State = string(flows.RegisterRegistered)

	uc.Log.Info("otpUsecase.VerifyRegisterOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return view, nil
}

func (uc *otpUsecase) ChangeRegisterDetails(ctx context.Context) (*responses.OTPFlow, error) {
	sessionID, flow, _, err := uc.loadRegister(ctx)
	if err != nil {
		return nil, err
	}
	err = flow.ChangeDetails()
	if err != nil {
		return nil, err
	}
	err = uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyRegisterFlow, flow)
	if err != nil {
		return nil, err
	}
	err = uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyRegisterOTPExpiry)
	if err != nil {
		return nil, err
	}
	return uc.registerView(flow, flows.Cooldown{}), nil
}
