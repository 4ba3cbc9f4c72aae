package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	// the form lives in the visitor session, so it is usable before login
	router.Get("/form", bookingController.GetForm)
	router.Patch("/form", bookingController.SetForm)
	router.Delete("/form", bookingController.ResetForm)
	router.Post("/form/steps/{step}/validate", bookingController.ValidateStep)
	router.Get("/plans/{slug}/measurements", bookingController.RequiresDetailedMeasurements)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireLogin)

		r.Get("/patients", bookingController.ListPatients)
		r.Post("/patients", bookingController.CreatePatient)
		r.Post("/patients/{patient_id}/files", bookingController.AttachFiles)

		r.Post("/files", bookingController.UploadFiles)
		r.Delete("/files/{file_id}", bookingController.DeleteFile)

		r.Get("/slots", bookingController.ListSlots)
		r.Post("/recall", bookingController.SubmitRecall)
		r.Post("/submit", bookingController.SubmitBooking)

		r.Post("/appointments", bookingController.CreateAppointment)
		r.Patch("/appointments/{appointment_id}/slot", bookingController.UpdateSlot)

		r.Get("/pending", bookingController.ListPending)
		r.Post("/pending/{appointment_id}/resume", bookingController.ResumePending)
		r.Patch("/pending/{appointment_id}/progress", bookingController.UpdateProgress)
		r.Delete("/pending/{appointment_id}", bookingController.DeletePending)

		r.Get("/invoices/{appointment_id}", bookingController.FindInvoice)
		r.Get("/invoices/download/{invoice_number}", bookingController.DownloadInvoice)
	})
}
