package controllers

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/delivery/http/views"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// PageController renders the server side pages and the app shells the browser code takes over.
type PageController struct {
	Log                *zap.Logger
	Renderer           *views.Renderer
	CatalogUsecase     contracts.CatalogUsecase
	TestimonialUsecase contracts.TestimonialUsecase
	SEOUsecase         contracts.SEOUsecase
	InternalConfig     *config.InternalConfig
}

func NewPageController(
	logger *zap.Logger,
	renderer *views.Renderer,
	catalogUsecase contracts.CatalogUsecase,
	testimonialUsecase contracts.TestimonialUsecase,
	seoUsecase contracts.SEOUsecase,
	internalConfig *config.InternalConfig,
) *PageController {
	return &PageController{
		Log:                logger,
		Renderer:           renderer,
		CatalogUsecase:     catalogUsecase,
		TestimonialUsecase: testimonialUsecase,
		SEOUsecase:         seoUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *PageController) pageData(r *http.Request, title, description string) *views.PageData {
	user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*backend_dto.User)
	siteName := ctrl.InternalConfig.Site.Name
	if siteName == "" {
		siteName = constvars.SiteName
	}
	baseURL := strings.TrimRight(ctrl.InternalConfig.Site.BaseUrl, "/")
	if baseURL == "" {
		baseURL = constvars.SiteDefaultURL
	}

	return &views.PageData{
		Title:        title,
		Description:  description,
		SiteName:     siteName,
		CanonicalURL: baseURL + r.URL.Path,
		Year:         time.Now().Year(),
		User:         user,
	}
}

func (ctrl *PageController) render(w http.ResponseWriter, r *http.Request, status int, page string, data *views.PageData) {
	err := ctrl.Renderer.Render(w, status, page, data)
	if err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Error("PageController.render error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPageKey, page),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	data := ctrl.pageData(r, "", "Personalised diet plans for weight loss, medical conditions, kids and more.")
	data.Services = ctrl.CatalogUsecase.Services()
	data.Testimonials = ctrl.TestimonialUsecase.FindActive(r.Context())

	ctrl.render(w, r, constvars.StatusOK, views.PageHome, data)
}

func (ctrl *PageController) Services(w http.ResponseWriter, r *http.Request) {
	data := ctrl.pageData(r, "Services", "Explore the nutrition plans offered by the clinic.")
	data.Services = ctrl.CatalogUsecase.Services()

	ctrl.render(w, r, constvars.StatusOK, views.PageServices, data)
}

func (ctrl *PageController) Plan(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamSlug)

	service, err := ctrl.CatalogUsecase.FindBySlug(slug)
	if err != nil {
		ctrl.NotFound(w, r)
		return
	}

	data := ctrl.pageData(r, service.Title, service.Summary)
	data.Service = service
	ctrl.render(w, r, constvars.StatusOK, views.PagePlan, data)
}

// Shell renders an app shell page seeded with the visitor's auth state and CSRF token.
func (ctrl *PageController) Shell(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, _ := r.Context().Value(constvars.CONTEXT_AUTH_STATE_KEY).(*responses.AuthState)
		if auth == nil {
			auth = &responses.AuthState{}
		}

		data := ctrl.pageData(r, title, "")
		data.Shell = &responses.ShellState{
			Auth:      *auth,
			CSRFToken: csrf.Token(r),
			APIPrefix: fmt.Sprintf("/%s/%s", ctrl.InternalConfig.App.EndpointPrefix, ctrl.InternalConfig.App.Version),
			Page:      page,
		}
		ctrl.render(w, r, constvars.StatusOK, views.PageShell, data)
	}
}

func (ctrl *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	data := ctrl.pageData(r, "Page not found", "")
	ctrl.render(w, r, constvars.StatusNotFound, views.PageNotFound, data)
}

func (ctrl *PageController) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write([]byte(ctrl.SEOUsecase.Robots()))
}

func (ctrl *PageController) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := ctrl.SEOUsecase.Sitemap()
	if err != nil {
		buildError(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationXMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write(sitemap)
}
