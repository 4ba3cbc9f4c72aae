package routers

import (
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController, otpController *controllers.OTPController) {
	router.Get("/state", authController.State)
	router.Post("/login", authController.Login)
	router.Post("/signup", authController.Signup)
	router.Post("/logout", authController.Logout)
	router.Post("/forgot-password", authController.ForgotPassword)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireLogin)
		r.With(middlewares.OTPRateLimit()).Post("/email/otp", authController.SendAddEmailOTP)
		r.Post("/email/verify", authController.VerifyAddEmailOTP)
	})

	router.Route("/otp/login", func(r chi.Router) {
		r.Get("/", otpController.LoginFlow)
		r.With(middlewares.OTPRateLimit()).Post("/send", otpController.SendLoginOTP)
		r.Post("/verify", otpController.VerifyLoginOTP)
		r.Post("/change-number", otpController.ChangeLoginNumber)
		r.Post("/link", otpController.LinkExistingAccount)
		r.Post("/link/back", otpController.BackFromLink)
		r.With(middlewares.OTPRateLimit()).Post("/link/send", otpController.SendLinkEmailOTP)
		r.Post("/link/verify", otpController.VerifyLinkEmailOTP)
		r.Post("/reset", otpController.ResetLoginFlow)
	})

	router.Route("/otp/register", func(r chi.Router) {
		r.Get("/", otpController.RegisterFlow)
		r.With(middlewares.OTPRateLimit()).Post("/send", otpController.SendRegisterOTP)
		r.Post("/verify", otpController.VerifyRegisterOTP)
		r.Post("/change-details", otpController.ChangeRegisterDetails)
	})
}
