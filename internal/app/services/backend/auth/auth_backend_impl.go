package auth

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type authBackend struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewAuthBackend(gatewayClient *gateway.Client, logger *zap.Logger) contracts.AuthBackend {
	return &authBackend{
		Gateway: gatewayClient,
		Log:     logger,
	}
}

func (b *authBackend) post(ctx context.Context, path string, body, out interface{}) error {
	return b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodPost,
		Path:   path,
		Body:   body,
	}, out)
}

func (b *authBackend) Login(ctx context.Context, request *backend_dto.PasswordLoginRequest) (*backend_dto.AuthResponse, error) {
	response := &backend_dto.AuthResponse{}
	err := b.post(ctx, constvars.BackendAuthLogin, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) Signup(ctx context.Context, request *backend_dto.SignupRequest) (*backend_dto.AuthResponse, error) {
	response := &backend_dto.AuthResponse{}
	err := b.post(ctx, constvars.BackendAuthSignup, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) Logout(ctx context.Context) error {
	return b.post(ctx, constvars.BackendAuthLogout, nil, nil)
}

func (b *authBackend) Me(ctx context.Context) (*backend_dto.AuthResponse, error) {
	response := &backend_dto.AuthResponse{}
	err := b.Gateway.Do(ctx, &gateway.Request{
		Method: constvars.MethodGet,
		Path:   constvars.BackendAuthMe,
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) ForgotPassword(ctx context.Context, request *backend_dto.ForgotPasswordRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientEmailRequired, request.Email)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.MessageResponse{}
	err = b.post(ctx, constvars.BackendAuthForgotPassword, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) SendLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientPhoneRequired, request.Phone)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.MessageResponse{}
	err = b.post(ctx, constvars.BackendAuthLoginSendOTP, &backend_dto.PhoneOTPRequest{Phone: request.Phone}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) VerifyLoginOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error) {
	err := utils.RequireFields(constvars.ErrClientPhoneOTPRequired, request.Phone, request.OTP)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AuthResponse{}
	err = b.post(ctx, constvars.BackendAuthLoginVerifyOTP, &backend_dto.PhoneOTPRequest{Phone: request.Phone, OTP: request.OTP}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) SendRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientNamePhoneRequired, request.Name, request.Phone)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.MessageResponse{}
	err = b.post(ctx, constvars.BackendAuthRegisterSendOTP, &backend_dto.PhoneOTPRequest{Name: request.Name, Phone: request.Phone}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) VerifyRegisterOTP(ctx context.Context, request *backend_dto.PhoneOTPRequest) (*backend_dto.AuthResponse, error) {
	err := utils.RequireFields(constvars.ErrClientNamePhoneOTPRequired, request.Name, request.Phone, request.OTP)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AuthResponse{}
	err = b.post(ctx, constvars.BackendAuthRegisterVerifyOTP, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) SendLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientEmailPhoneRequired, request.Email, request.Phone)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.MessageResponse{}
	err = b.post(ctx, constvars.BackendAuthLinkPhoneSendOTP, &backend_dto.EmailOTPRequest{Email: request.Email, Phone: request.Phone}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) VerifyLinkPhoneEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error) {
	err := utils.RequireFields(constvars.ErrClientEmailPhoneOTPRequired, request.Email, request.Phone, request.OTP)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AuthResponse{}
	err = b.post(ctx, constvars.BackendAuthLinkPhoneVerifyOTP, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) SendAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.MessageResponse, error) {
	err := utils.RequireFields(constvars.ErrClientEmailRequired, request.Email)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.MessageResponse{}
	err = b.post(ctx, constvars.BackendAuthAddEmailSendOTP, &backend_dto.EmailOTPRequest{Email: request.Email}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (b *authBackend) VerifyAddEmailOTP(ctx context.Context, request *backend_dto.EmailOTPRequest) (*backend_dto.AuthResponse, error) {
	err := utils.RequireFields(constvars.ErrClientEmailOTPRequired, request.Email, request.OTP)
	if err != nil {
		return nil, err
	}

	response := &backend_dto.AuthResponse{}
	err = b.post(ctx, constvars.BackendAuthAddEmailVerifyOTP, &backend_dto.EmailOTPRequest{Email: request.Email, OTP: request.OTP}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
