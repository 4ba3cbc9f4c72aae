package middlewares

import (
	"anubha-web/internal/pkg/constvars"
	"net/http"
)

// BodyLimit caps request bodies; multipart uploads included.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * constvars.AppRequestBodyLimitFactor
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
