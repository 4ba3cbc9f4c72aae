package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorNotesRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorNotesController *controllers.DoctorNotesController) {
	router.Use(middlewares.RequireLogin)
	router.Use(middlewares.RequireAdmin)

	router.Route("/{appointment_id}", func(r chi.Router) {
		r.Get("/", doctorNotesController.Status)
		r.Patch("/", doctorNotesController.UpdateFormData)
		r.Delete("/", doctorNotesController.Clear)
		r.Post("/load", doctorNotesController.Load)
		r.Get("/value", doctorNotesController.GetFormValue)
		r.Post("/flush", doctorNotesController.Flush)
		r.Post("/attachment", doctorNotesController.StageAttachment)
		r.Post("/submit", doctorNotesController.Submit)
	})
}
