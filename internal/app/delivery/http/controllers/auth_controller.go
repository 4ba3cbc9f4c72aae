package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) State(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AuthUsecase.Hydrate(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionHydratedMessage, state)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.PasswordLogin)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizePasswordLoginRequest(request)

	// Send it to be processed by usecase
	state, err := ctrl.AuthUsecase.PasswordLogin(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, state)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Signup)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeSignupRequest(request)

	// Send it to be processed by usecase
	state, err := ctrl.AuthUsecase.Signup(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, state)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AuthUsecase.Logout(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, state)
}

func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ForgotPassword)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeForgotPasswordRequest(request)

	// Send it to be processed by usecase
	message, err := ctrl.AuthUsecase.ForgotPassword(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

func (ctrl *AuthController) SendAddEmailOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SendEmailOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeEmailOTPRequest(request)

	// Send it to be processed by usecase
	message, err := ctrl.AuthUsecase.SendAddEmailOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

func (ctrl *AuthController) VerifyAddEmailOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.VerifyEmailOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeVerifyEmailOTPRequest(request)

	// Send it to be processed by usecase
	state, err := ctrl.AuthUsecase.VerifyAddEmailOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EmailAddedSuccessMessage, state)
}
