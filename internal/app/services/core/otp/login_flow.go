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

func (uc *otpUsecase) loadLogin(ctx context.Context) (string, *flows.LoginFlow, flows.Cooldown, error) {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}

	flow := flows.NewLoginFlow()
	_, err = uc.ClientStorage.Get(ctx, sessionID, constvars.StorageKeyLoginFlow, flow)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}
	if flow.State == "" {
		flow.Reset()
	}

	cooldown, err := uc.loadCooldown(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry)
	if err != nil {
		return "", nil, flows.Cooldown{}, err
	}
	return sessionID, flow, cooldown, nil
}

func (uc *otpUsecase) loginView(flow *flows.LoginFlow, cooldown flows.Cooldown) *responses.OTPFlow {
	view := uc.view(flow.State, cooldown)
	view.Phone = flow.Phone
	view.Email = flow.Email
	view.EmailOTPSent = flow.EmailOTPSent
	return view
}

func (uc *otpUsecase) saveLogin(ctx context.Context, sessionID string, flow *flows.LoginFlow) error {
	return uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyLoginFlow, flow)
}

func (uc *otpUsecase) LoginFlow(ctx context.Context) (*responses.OTPFlow, error) {
	_, flow, cooldown, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	return uc.loginView(flow, cooldown), nil
}

func (uc *otpUsecase) SendLoginOTP(ctx context.Context, request *requests.SendPhoneOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.SendLoginOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	phone, err := auth.ValidatePhone(request.Phone)
	if err != nil {
		return nil, err
	}

	sessionID, flow, cooldown, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	if flow.Phone == phone && !cooldown.CanResend(uc.now()) {
		return nil, exceptions.ErrResendCooldown(cooldown.Remaining(uc.now()))
	}

	next := *flow
	err = next.OTPSent(phone)
	if err != nil {
		return nil, err
	}

	_, err = uc.AuthBackend.SendLoginOTP(ctx, &backend_dto.PhoneOTPRequest{Phone: phone})
	if err != nil {
		uc.Log.Warn("otpUsecase.SendLoginOTP backend rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
			zap.Error(err),
		)
		return nil, uc.sendFailed(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry, "phone", err)
	}

	err = uc.saveLogin(ctx, sessionID, &next)
	if err != nil {
		return nil, err
	}
	err = uc.startCooldown(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry, uc.CooldownSeconds)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("otpUsecase.SendLoginOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowStateKey, string(next.State)),
	)
	return uc.loginView(&next, flows.StartCooldown(uc.now(), uc.CooldownSeconds)), nil
}

func (uc *otpUsecase) VerifyLoginOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.VerifyLoginOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	otp, err := auth.ValidateOTP(request.OTP)
	if err != nil {
		return nil, err
	}

	sessionID, flow, cooldown, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	if flow.State != flows.LoginVerifyOTP {
		return nil, exceptions.ErrIllegalTransition(string(flows.EventOTPVerified), string(flow.State))
	}

	response, err := uc.AuthBackend.VerifyLoginOTP(ctx, &backend_dto.PhoneOTPRequest{Phone: flow.Phone, OTP: otp})
	if err != nil {
		return nil, utils.AttachField(err, "otp")
	}
	user, err := verifiedAccount(response)
	if err != nil {
		return nil, err
	}

	err = flow.OTPVerified(user != nil)
	if err != nil {
		return nil, err
	}
	if user != nil {
		uc.Log.Info("otpUsecase.VerifyLoginOTP succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return uc.loggedIn(ctx, user, constvars.StorageKeyLoginFlow, constvars.StorageKeyLoginOTPExpiry)
	}

	err = uc.saveLogin(ctx, sessionID, flow)
	if err != nil {
		return nil, err
	}
	uc.Log.Info("otpUsecase.VerifyLoginOTP phone verified without account",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.loginView(flow, cooldown), nil
}

func (uc *otpUsecase) ChangeLoginNumber(ctx context.Context) (*responses.OTPFlow, error) {
	sessionID, flow, _, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	err = flow.ChangeNumber()
	if err != nil {
		return nil, err
	}
	err = uc.saveLogin(ctx, sessionID, flow)
	if err != nil {
		return nil, err
	}
	err = uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry)
	if err != nil {
		return nil, err
	}
	return uc.loginView(flow, flows.Cooldown{}), nil
}

func (uc *otpUsecase) LinkExistingAccount(ctx context.Context) (*responses.OTPFlow, error) {
	sessionID, flow, _, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	err = flow.LinkExisting()
	if err != nil {
		return nil, err
	}
	err = uc.saveLogin(ctx, sessionID, flow)
	if err != nil {
		return nil, err
	}
	err = uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry)
	if err != nil {
		return nil, err
	}
	return uc.loginView(flow, flows.Cooldown{}), nil
}

func (uc *otpUsecase) BackFromLink(ctx context.Context) (*responses.OTPFlow, error) {
	sessionID, flow, cooldown, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	err = flow.Back()
	if err != nil {
		return nil, err
	}
	err = uc.saveLogin(ctx, sessionID, flow)
	if err != nil {
		return nil, err
	}
	return uc.loginView(flow, cooldown), nil
}

// SendLinkEmailOTP proves ownership of an existing account's email for the verified phone.
func (uc *otpUsecase) SendLinkEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.SendLinkEmailOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.TrimSpace(request.Email)
	switch {
	case email == "":
		return nil, exceptions.ErrFieldValidation(map[string]string{"email": constvars.ErrClientEmailRequired})
	case !utils.IsValidEmail(email):
		return nil, exceptions.ErrFieldValidation(map[string]string{"email": constvars.ErrClientEmailInvalid})
	}

	sessionID, flow, cooldown, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	if flow.EmailOTPSent && flow.Email == email && !cooldown.CanResend(uc.now()) {
		return nil, exceptions.ErrResendCooldown(cooldown.Remaining(uc.now()))
	}

	next := *flow
	err = next.EmailOTPSentTo(email)
	if err != nil {
		return nil, err
	}

	_, err = uc.AuthBackend.SendLinkPhoneEmailOTP(ctx, &backend_dto.EmailOTPRequest{Email: email, Phone: flow.Phone})
	if err != nil {
		return nil, uc.sendFailed(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry, "email", err)
	}

	err = uc.saveLogin(ctx, sessionID, &next)
	if err != nil {
		return nil, err
	}
	err = uc.startCooldown(ctx, sessionID, constvars.StorageKeyLoginOTPExpiry, uc.CooldownSeconds)
	if err != nil {
		return nil, err
	}
	return uc.loginView(&next, flows.StartCooldown(uc.now(), uc.CooldownSeconds)), nil
}

func (uc *otpUsecase) VerifyLinkEmailOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.OTPFlow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.VerifyLinkEmailOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	otp, err := auth.ValidateOTP(request.OTP)
	if err != nil {
		return nil, err
	}

	_, flow, _, err := uc.loadLogin(ctx)
	if err != nil {
		return nil, err
	}
	next := *flow
	err = next.AccountLinked()
	if err != nil {
		return nil, err
	}

	response, err := uc.AuthBackend.VerifyLinkPhoneEmailOTP(ctx, &backend_dto.EmailOTPRequest{
		Email: flow.Email,
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

	uc.Log.Info("otpUsecase.VerifyLinkEmailOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.loggedIn(ctx, user, constvars.StorageKeyLoginFlow, constvars.StorageKeyLoginOTPExpiry)
}

func (uc *otpUsecase) ResetLoginFlow(ctx context.Context) (*responses.OTPFlow, error) {
	err := uc.remove(ctx, constvars.StorageKeyLoginFlow, constvars.StorageKeyLoginOTPExpiry)
	if err != nil {
		return nil, err
	}
	return uc.loginView(flows.NewLoginFlow(), flows.Cooldown{}), nil
}
