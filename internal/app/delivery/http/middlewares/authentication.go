package middlewares

import (
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// RequireLogin lets the request through when the visitor session carries a logged in user.
func (m *Middlewares) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*backend_dto.User)
		if user == nil {
			var err error
			user, err = m.AuthUsecase.CurrentUser(r.Context())
			if err != nil {
				m.deny(w, r, err, constvars.PathLogin)
				return
			}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_KEY, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after RequireLogin. Non-admins are sent to their own home page.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*backend_dto.User)
		if user == nil {
			m.deny(w, r, exceptions.ErrNotLoggedIn(nil), constvars.PathLogin)
			return
		}
		if !user.IsAdmin() {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Warn("Middlewares.RequireAdmin denied",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String("role", user.Role),
			)
			m.deny(w, r, exceptions.ErrPermissionDenied(nil), user.HomePath())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HydrateAuth refreshes the visitor's auth state from the backend for page renders.
// A failed refresh renders the page logged out instead of failing it.
func (m *Middlewares) HydrateAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, err := m.AuthUsecase.Hydrate(r.Context())
		if err != nil {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Warn("Middlewares.HydrateAuth falling back to logged out",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			state = &responses.AuthState{}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_STATE_KEY, state)
		if state.User != nil {
			ctx = context.WithValue(ctx, constvars.CONTEXT_USER_KEY, state.User)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectIfLoggedIn keeps logged in visitors off the login and register pages.
func (m *Middlewares) RedirectIfLoggedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*backend_dto.User)
		if user != nil {
			http.Redirect(w, r, user.HomePath(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
