package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, pageController *controllers.PageController) {
	router.Use(middlewares.HydrateAuth)

	router.Get("/", pageController.Home)
	router.Get("/services", pageController.Services)
	router.Get("/explore-plans/{slug}", pageController.Plan)
	router.Get("/logout", pageController.Shell("logout", "Logout"))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RedirectIfLoggedIn)
		r.Get("/login", pageController.Shell("login", "Login"))
		r.Get("/register", pageController.Shell("register", "Register"))
		r.Get("/forgot-password", pageController.Shell("forgot-password", "Forgot password"))
	})

	// booking starts anonymous; later steps ask the browser to log in
	router.Get("/book", pageController.Shell("book", "Book an appointment"))
	router.Get("/book/*", pageController.Shell("book", "Book an appointment"))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireLogin)
		r.Get("/profile", pageController.Shell("profile", "Profile"))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAdmin)
			r.Get("/admin", pageController.Shell("admin", "Admin"))
			r.Get("/admin/*", pageController.Shell("admin", "Admin"))
		})
	})
}
