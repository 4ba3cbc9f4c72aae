package middlewares

import (
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// sessionWriter saves the visitor session right before the response headers go out,
// so a new session's cookie is part of the first write.
type sessionWriter struct {
	http.ResponseWriter
	save  func()
	saved bool
}

func (w *sessionWriter) flushSession() {
	if w.saved {
		return
	}
	w.saved = true
	w.save()
}

func (w *sessionWriter) WriteHeader(code int) {
	w.flushSession()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flushSession()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Session loads the visitor session into the request context and persists it when the handler is done.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		session, err := m.SessionManager.Load(r.Context(), r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := models.ContextWithSession(r.Context(), session)
		// a client hanging up must not lose the session write
		saveCtx := context.WithoutCancel(ctx)
		save := func() {
			err := m.SessionManager.Save(saveCtx, w, session)
			if err != nil {
				m.Log.Error("Middlewares.Session error saving session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, session.ID),
					zap.Error(err),
				)
			}
		}

		sw := &sessionWriter{ResponseWriter: w, save: save}
		next.ServeHTTP(sw, r.WithContext(ctx))

		if !sw.saved {
			sw.flushSession()
			return
		}
		if session.IsDirty() {
			save()
		}
	})
}
