package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type OTPController struct {
	Log        *zap.Logger
	OTPUsecase contracts.OTPUsecase
}

func NewOTPController(logger *zap.Logger, otpUsecase contracts.OTPUsecase) *OTPController {
	return &OTPController{
		Log:        logger,
		OTPUsecase: otpUsecase,
	}
}

type flowStep func(ctx context.Context) (*responses.OTPFlow, error)

// respondFlow runs a body-less transition and returns the resulting flow state.
func (ctrl *OTPController) respondFlow(w http.ResponseWriter, r *http.Request, step flowStep, message string) {
	flow, err := step(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, flow)
}

func (ctrl *OTPController) LoginFlow(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.LoginFlow, constvars.FlowStateMessage)
}

func (ctrl *OTPController) SendLoginOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SendPhoneOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeSendPhoneOTPRequest(request)

	flow, err := ctrl.OTPUsecase.SendLoginOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPSentSuccessMessage, flow)
}

func (ctrl *OTPController) VerifyLoginOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.VerifyOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeVerifyOTPRequest(request)

	flow, err := ctrl.OTPUsecase.VerifyLoginOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPVerifiedSuccessMessage, flow)
}

func (ctrl *OTPController) ChangeLoginNumber(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.ChangeLoginNumber, constvars.FlowStateMessage)
}

func (ctrl *OTPController) LinkExistingAccount(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.LinkExistingAccount, constvars.FlowStateMessage)
}

func (ctrl *OTPController) BackFromLink(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.BackFromLink, constvars.FlowStateMessage)
}

func (ctrl *OTPController) SendLinkEmailOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SendEmailOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeEmailOTPRequest(request)

	flow, err := ctrl.OTPUsecase.SendLinkEmailOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPSentSuccessMessage, flow)
}

func (ctrl *OTPController) VerifyLinkEmailOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.VerifyOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeVerifyOTPRequest(request)

	flow, err := ctrl.OTPUsecase.VerifyLinkEmailOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AccountLinkedSuccessMessage, flow)
}

func (ctrl *OTPController) ResetLoginFlow(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.ResetLoginFlow, constvars.FlowStateMessage)
}

func (ctrl *OTPController) RegisterFlow(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.RegisterFlow, constvars.FlowStateMessage)
}

func (ctrl *OTPController) SendRegisterOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SendRegisterOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeSendRegisterOTPRequest(request)

	flow, err := ctrl.OTPUsecase.SendRegisterOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPSentSuccessMessage, flow)
}

func (ctrl *OTPController) VerifyRegisterOTP(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.VerifyOTP)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	utils.SanitizeVerifyOTPRequest(request)

	flow, err := ctrl.OTPUsecase.VerifyRegisterOTP(r.Context(), request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationSuccessMessage, flow)
}

func (ctrl *OTPController) ChangeRegisterDetails(w http.ResponseWriter, r *http.Request) {
	ctrl.respondFlow(w, r, ctrl.OTPUsecase.ChangeRegisterDetails, constvars.FlowStateMessage)
}
