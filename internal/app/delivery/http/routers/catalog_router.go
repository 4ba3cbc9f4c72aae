package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAll)
	router.Get("/{slug}", catalogController.FindBySlug)
}
