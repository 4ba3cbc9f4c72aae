package middlewares

import (
	"anubha-web/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"
)

func (m *Middlewares) apiPrefix() string {
	return fmt.Sprintf("/%s/", m.InternalConfig.App.EndpointPrefix)
}

// isAPIRequest tells JSON API calls apart from page visits.
func (m *Middlewares) isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, m.apiPrefix())
}

// deny answers API calls with the error envelope and sends page visits to target.
func (m *Middlewares) deny(w http.ResponseWriter, r *http.Request, err error, target string) {
	if m.isAPIRequest(r) {
		utils.BuildErrorResponse(m.Log, w, err)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
