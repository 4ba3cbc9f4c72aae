package config

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"log"

	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{constvars.SiteDefaultURL}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			CSRFEnabled:                utils.GetEnvBool("APP_CSRF_ENABLED", true),
			CSRFKey:                    utils.GetEnvString("APP_CSRF_KEY", ""),
		},
		Backend: Backend{
			BaseUrl:              utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api/"),
			TimeoutInSeconds:     utils.GetEnvInt("BACKEND_TIMEOUT", 15),
			MaxRequestsPerSecond: utils.GetEnvFloat("BACKEND_MAX_REQUESTS_PER_SECOND", 50),
			MaxBurst:             utils.GetEnvInt("BACKEND_MAX_BURST", 20),
		},
		Session: Session{
			Secret:                 utils.GetEnvString("SESSION_SECRET", ""),
			CookieName:             utils.GetEnvString("SESSION_COOKIE_NAME", constvars.SessionCookieName),
			CookieDomain:           utils.GetEnvString("SESSION_COOKIE_DOMAIN", ""),
			CookieSecure:           utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			ExpiredTimeInHours:     utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 24*7),
			DraftExpiredTimeInDays: utils.GetEnvInt("SESSION_DRAFT_EXPIRED_TIME_IN_DAYS", 30),
		},
		Site: Site{
			BaseUrl: utils.GetEnvString("SITE_BASE_URL", constvars.SiteDefaultURL),
			Name:    utils.GetEnvString("SITE_NAME", constvars.SiteName),
		},
		Booking: Booking{
			OTPResendCooldownInSeconds:  utils.GetEnvInt("BOOKING_OTP_RESEND_COOLDOWN", constvars.DefaultOTPResendCooldown),
			DoctorNotesAutoSaveInMillis: utils.GetEnvInt("BOOKING_DOCTOR_NOTES_AUTO_SAVE_IN_MILLIS", int(constvars.DoctorNotesAutoSaveDelay.Milliseconds())),
		},
		Minio: AppMinio{
			BucketDraftAttachments: utils.GetEnvString("MINIO_BUCKET_DRAFT_ATTACHMENTS", "doctor-notes-drafts"),
		},
	}
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
