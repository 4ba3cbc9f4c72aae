package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TestimonialController struct {
	Log                *zap.Logger
	TestimonialUsecase contracts.TestimonialUsecase
}

func NewTestimonialController(logger *zap.Logger, testimonialUsecase contracts.TestimonialUsecase) *TestimonialController {
	return &TestimonialController{
		Log:                logger,
		TestimonialUsecase: testimonialUsecase,
	}
}

func (ctrl *TestimonialController) FindActive(w http.ResponseWriter, r *http.Request) {
	testimonials := ctrl.TestimonialUsecase.FindActive(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestimonialsSuccessMessage, testimonials)
}

func (ctrl *TestimonialController) FindAll(w http.ResponseWriter, r *http.Request) {
	testimonials, err := ctrl.TestimonialUsecase.FindAll(r.Context())
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestimonialsSuccessMessage, testimonials)
}

func (ctrl *TestimonialController) Create(w http.ResponseWriter, r *http.Request) {
	request, image, err := bindTestimonialForm(r)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	testimonial, err := ctrl.TestimonialUsecase.Create(r.Context(), request, image)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTestimonialSuccessMessage, testimonial)
}

func (ctrl *TestimonialController) Update(w http.ResponseWriter, r *http.Request) {
	testimonialID := chi.URLParam(r, constvars.URLParamID)

	request, image, err := bindTestimonialForm(r)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	testimonial, err := ctrl.TestimonialUsecase.Update(r.Context(), testimonialID, request, image)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTestimonialSuccessMessage, testimonial)
}

func (ctrl *TestimonialController) Delete(w http.ResponseWriter, r *http.Request) {
	testimonialID := chi.URLParam(r, constvars.URLParamID)

	err := ctrl.TestimonialUsecase.Delete(r.Context(), testimonialID)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTestimonialSuccessMessage, nil)
}

func bindTestimonialForm(r *http.Request) (*requests.TestimonialForm, *backend_dto.FilePart, error) {
	err := parseMultipart(r)
	if err != nil {
		return nil, nil, err
	}

	request := &requests.TestimonialForm{
		Name:     r.FormValue(constvars.MultipartFieldName),
		Text:     r.FormValue(constvars.MultipartFieldText),
		IsActive: formBool(r, constvars.MultipartFieldIsActive),
	}

	image, err := readFile(r, constvars.MultipartFieldImage)
	if err != nil {
		return nil, nil, err
	}
	return request, image, nil
}
