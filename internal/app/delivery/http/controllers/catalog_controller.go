package controllers

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, ctrl.CatalogUsecase.Services())
}

func (ctrl *CatalogController) FindBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamSlug)

	service, err := ctrl.CatalogUsecase.FindBySlug(slug)
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, service)
}
