package middlewares

import (
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

const otpRequestsPerMinute = 5

// RateLimit caps requests per client IP across the whole site.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.MaxRequests, time.Second, "site")
}

// OTPRateLimit is the stricter cap for endpoints that send an OTP by SMS or email.
func (m *Middlewares) OTPRateLimit() func(next http.Handler) http.Handler {
	return m.limitByIP(otpRequestsPerMinute, time.Minute, "otp")
}

func (m *Middlewares) limitByIP(requests int, window time.Duration, name string) func(next http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimited(name).WithRetryAfter(int(window.Seconds())))
		}),
	)
}
