package routers

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"
	"anubha-web/internal/app/delivery/http/views"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	pageController *controllers.PageController,
	catalogController *controllers.CatalogController,
	authController *controllers.AuthController,
	otpController *controllers.OTPController,
	bookingController *controllers.BookingController,
	doctorNotesController *controllers.DoctorNotesController,
	testimonialController *controllers.TestimonialController,
	adminController *controllers.AdminController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())

	// static assets skip the session entirely
	router.Handle("/static/*", http.StripPrefix("/static/", views.Static()))
	router.Get("/robots.txt", pageController.Robots)
	router.Get("/sitemap.xml", pageController.Sitemap)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequestTimeout)
		r.Use(middlewares.BodyLimit)
		r.Use(middlewares.Session)
		r.Use(middlewares.CSRF())

		endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
		versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

		r.Route(endpointPrefix, func(r chi.Router) {
			r.Route(versionPrefix, func(r chi.Router) {
				r.Route("/auth", func(r chi.Router) {
					attachAuthRoutes(r, middlewares, authController, otpController)
				})

				r.Route("/services", func(r chi.Router) {
					attachCatalogRoutes(r, catalogController)
				})

				r.Route("/booking", func(r chi.Router) {
					attachBookingRoutes(r, middlewares, bookingController)
				})

				r.Route("/testimonials", func(r chi.Router) {
					attachTestimonialRoutes(r, testimonialController)
				})

				r.Route("/doctor-notes", func(r chi.Router) {
					attachDoctorNotesRoutes(r, middlewares, doctorNotesController)
				})

				r.Route("/admin", func(r chi.Router) {
					attachAdminRoutes(r, middlewares, adminController, testimonialController)
				})
			})
		})

		r.Group(func(r chi.Router) {
			attachPageRoutes(r, middlewares, pageController)
		})
	})

	// unmatched API paths answer with the JSON envelope, everything else gets the 404 page
	apiPrefix := fmt.Sprintf("/%s/", internalConfig.App.EndpointPrefix)
	pageNotFound := middlewares.Session(middlewares.HydrateAuth(http.HandlerFunc(pageController.NotFound)))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			utils.BuildErrorResponse(pageController.Log, w, exceptions.ErrNotFound(nil))
			return
		}
		pageNotFound.ServeHTTP(w, r)
	})
}
