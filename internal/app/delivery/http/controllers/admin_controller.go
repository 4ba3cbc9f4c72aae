package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := &requests.AdminAppointmentQuery{
		Page:   queryInt(r, constvars.URLQueryParamPage),
		Limit:  queryInt(r, constvars.URLQueryParamLimit),
		Status: values.Get(constvars.URLQueryParamStatus),
		Mode:   values.Get(constvars.URLQueryParamMode),
		Date:   values.Get(constvars.URLQueryParamDate),
		Query:  values.Get(constvars.URLQueryParamQuery),
	}

	result, paginationData, err := ctrl.AdminUsecase.ListAppointments(r.Context(), query)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, paginationData, result)
}

func (ctrl *AdminController) AppointmentDetail(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	detail, err := ctrl.AdminUsecase.AppointmentDetail(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, detail)
}

func (ctrl *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	// Bind body to request
	request := new(requests.UpdateAppointmentStatus)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.AdminUsecase.UpdateStatus(r.Context(), appointmentID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentStatusUpdatedMessage, appointment)
}

// DeleteAppointment takes an optional body with reason and scope.
func (ctrl *AdminController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.AdminDeleteAppointment)
	err := decodeOptionalJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AdminUsecase.DeleteAppointment(r.Context(), appointmentID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeletedMessage, result)
}
