package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorNotesController struct {
	Log                *zap.Logger
	DoctorNotesUsecase contracts.DoctorNotesUsecase
}

func NewDoctorNotesController(logger *zap.Logger, doctorNotesUsecase contracts.DoctorNotesUsecase) *DoctorNotesController {
	return &DoctorNotesController{
		Log:                logger,
		DoctorNotesUsecase: doctorNotesUsecase,
	}
}

func (ctrl *DoctorNotesController) Load(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	status, err := ctrl.DoctorNotesUsecase.Load(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesDraftMessage, status)
}

func (ctrl *DoctorNotesController) Status(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	status, err := ctrl.DoctorNotesUsecase.Status(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesDraftMessage, status)
}

func (ctrl *DoctorNotesController) UpdateFormData(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	// Bind body to request
	request := new(requests.UpdateDraftValue)
	err := decodeJSON(r, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	status, err := ctrl.DoctorNotesUsecase.UpdateFormData(r.Context(), appointmentID, request)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesUpdatedMessage, status)
}

// GetFormValue reads ?path=a&path=b; segments may contain dots, so the path is never split.
func (ctrl *DoctorNotesController) GetFormValue(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	fieldPath := r.URL.Query()[constvars.URLQueryParamPath]

	value, err := ctrl.DoctorNotesUsecase.GetFormValue(r.Context(), appointmentID, fieldPath)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesDraftMessage, value)
}

// Flush is also the target of the page-hide beacon.
func (ctrl *DoctorNotesController) Flush(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	status, err := ctrl.DoctorNotesUsecase.Flush(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesFlushedMessage, status)
}

func (ctrl *DoctorNotesController) Clear(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	err := ctrl.DoctorNotesUsecase.ClearFormData(r.Context(), appointmentID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesClearedMessage, nil)
}

func (ctrl *DoctorNotesController) StageAttachment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	err := parseMultipart(r)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	file, err := readFile(r, constvars.MultipartFieldDietChart)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}
	if file == nil {
		buildError(ctrl.Log, w, exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, constvars.ErrClientFilesRequired))
		return
	}

	status, err := ctrl.DoctorNotesUsecase.StageAttachment(r.Context(), appointmentID, file)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesStagedMessage, status)
}

// Submit accepts either a JSON body or a multipart form carrying isDraft and an optional dietChart.
func (ctrl *DoctorNotesController) Submit(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.SubmitDoctorNotes)
	var dietChart *backend_dto.FilePart

	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		err := parseMultipart(r)
		if err != nil {
			buildError(ctrl.Log, w, err)
			return
		}
		if isDraft := formBool(r, constvars.MultipartFieldIsDraft); isDraft != nil {
			request.IsDraft = *isDraft
		}
		dietChart, err = readFile(r, constvars.MultipartFieldDietChart)
		if err != nil {
			buildError(ctrl.Log, w, err)
			return
		}
	} else {
		// Bind body to request
		err := decodeOptionalJSON(r, request)
		if err != nil {
			buildError(ctrl.Log, w, err)
			return
		}
	}

	notes, err := ctrl.DoctorNotesUsecase.Submit(r.Context(), appointmentID, request, dietChart)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorNotesSubmittedMessage, notes)
}
