package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTestimonialRoutes(router chi.Router, testimonialController *controllers.TestimonialController) {
	router.Get("/", testimonialController.FindActive)
}
