package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController, testimonialController *controllers.TestimonialController) {
	router.Use(middlewares.RequireLogin)
	router.Use(middlewares.RequireAdmin)

	router.Route("/appointments", func(r chi.Router) {
		r.Get("/", adminController.ListAppointments)
		r.Get("/{appointment_id}", adminController.AppointmentDetail)
		r.Patch("/{appointment_id}/status", adminController.UpdateStatus)
		r.Delete("/{appointment_id}", adminController.DeleteAppointment)
	})

	router.Route("/testimonials", func(r chi.Router) {
		r.Get("/", testimonialController.FindAll)
		r.Post("/", testimonialController.Create)
		r.Put("/{id}", testimonialController.Update)
		r.Delete("/{id}", testimonialController.Delete)
	})
}
