package middlewares

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"crypto/sha256"
	"errors"
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRF guards state-changing requests made with the session cookie. The token travels in the X-CSRF-Token header.
func (m *Middlewares) CSRF() func(next http.Handler) http.Handler {
	if !m.InternalConfig.App.CSRFEnabled {
		return func(next http.Handler) http.Handler { return next }
	}

	secret := m.InternalConfig.App.CSRFKey
	if secret == "" {
		secret = m.InternalConfig.Session.Secret
	}
	// gorilla/csrf wants exactly 32 bytes
	key := sha256.Sum256([]byte(secret))

	return csrf.Protect(key[:],
		csrf.CookieName(constvars.CSRFCookieName),
		csrf.RequestHeader(constvars.HeaderXCSRFToken),
		csrf.Path("/"),
		csrf.Secure(m.InternalConfig.Session.CookieSecure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := csrf.FailureReason(r)
			if reason == nil {
				reason = errors.New("csrf check failed")
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCSRFInvalid(reason))
		})),
	)
}
