package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
		Minio  Minio
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App     App      `mapstructure:"app"`
	Backend Backend  `mapstructure:"backend"`
	Session Session  `mapstructure:"session"`
	Site    Site     `mapstructure:"site"`
	Booking Booking  `mapstructure:"booking"`
	Minio   AppMinio `mapstructure:"minio"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	CSRFEnabled                bool     `mapstructure:"csrf_enabled"`
	CSRFKey                    string   `mapstructure:"csrf_key"`
}

type Backend struct {
	BaseUrl              string  `mapstructure:"base_url"`
	TimeoutInSeconds     int     `mapstructure:"timeout_in_seconds"`
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
	MaxBurst             int     `mapstructure:"max_burst"`
}

type Session struct {
	Secret                 string `mapstructure:"secret"`
	CookieName             string `mapstructure:"cookie_name"`
	CookieDomain           string `mapstructure:"cookie_domain"`
	CookieSecure           bool   `mapstructure:"cookie_secure"`
	ExpiredTimeInHours     int    `mapstructure:"expired_time_in_hours"`
	DraftExpiredTimeInDays int    `mapstructure:"draft_expired_time_in_days"`
}

type Site struct {
	BaseUrl string `mapstructure:"base_url"`
	Name    string `mapstructure:"name"`
}

type Booking struct {
	OTPResendCooldownInSeconds  int `mapstructure:"otp_resend_cooldown_in_seconds"`
	DoctorNotesAutoSaveInMillis int `mapstructure:"doctor_notes_auto_save_in_millis"`
}

type AppMinio struct {
	BucketDraftAttachments string `mapstructure:"bucket_draft_attachments"`
}
