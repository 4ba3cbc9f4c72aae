package routers

import (
	"anubha-web/internal/app/contracts/mocks"
	"anubha-web/internal/app/delivery/http/controllers"
	"anubha-web/internal/app/delivery/http/middlewares"
	"anubha-web/internal/app/delivery/http/views"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type appFixture struct {
	router       *chi.Mux
	auth         *mocks.MockAuthUsecase
	catalog      *mocks.MockCatalogUsecase
	testimonials *mocks.MockTestimonialUsecase
	admin        *mocks.MockAdminUsecase
	seo          *mocks.MockSEOUsecase
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := testConfig()

	f := &appFixture{
		router:       chi.NewRouter(),
		auth:         new(mocks.MockAuthUsecase),
		catalog:      new(mocks.MockCatalogUsecase),
		testimonials: new(mocks.MockTestimonialUsecase),
		admin:        new(mocks.MockAdminUsecase),
		seo:          new(mocks.MockSEOUsecase),
	}

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	middlewareInstance := middlewares.NewMiddlewares(logger, newSessionManager(), f.auth, internalConfig)
	SetupRoutes(f.router, internalConfig, middlewareInstance,
		controllers.NewPageController(logger, renderer, f.catalog, f.testimonials, f.seo, internalConfig),
		controllers.NewCatalogController(logger, f.catalog),
		controllers.NewAuthController(logger, f.auth),
		controllers.NewOTPController(logger, new(mocks.MockOTPUsecase)),
		controllers.NewBookingController(logger, new(mocks.MockBookingUsecase)),
		controllers.NewDoctorNotesController(logger, new(mocks.MockDoctorNotesUsecase)),
		controllers.NewTestimonialController(logger, f.testimonials),
		controllers.NewAdminController(logger, f.admin),
	)
	return f
}

// as makes every auth lookup answer with user, nil meaning a logged out visitor.
func (f *appFixture) as(user *backend_dto.User) {
	f.auth.On("Hydrate", mock.Anything).Return(&responses.AuthState{User: user}, nil)
	if user == nil {
		f.auth.On("CurrentUser", mock.Anything).Return(nil, exceptions.ErrNotLoggedIn(nil))
		return
	}
	f.auth.On("CurrentUser", mock.Anything).Return(user, nil)
}

func (f *appFixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

var (
	patient = &backend_dto.User{ID: "u-1", Name: "Asha", Role: constvars.RoleUser}
	admin   = &backend_dto.User{ID: "u-2", Name: "Anubha", Role: constvars.RoleAdmin}
)

func TestRouter_HomePage(t *testing.T) {
	t.Run("renders services and testimonials", func(t *testing.T) {
		f := newAppFixture(t)
		f.as(nil)
		f.catalog.On("Services").Return([]responses.Service{{Slug: "weight-loss", Title: "Weight Loss Program", FeeLabel: "₹1000"}})
		f.testimonials.On("FindActive", mock.Anything).Return([]backend_dto.Testimonial{{Name: "Priya", Text: "Lost 8 kg", IsActive: true}})

		rr := f.get("/")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), "Weight Loss Program")
		assert.Contains(t, rr.Body.String(), "Lost 8 kg")
		assert.Contains(t, rr.Body.String(), `href="/login"`)
	})

	t.Run("empty testimonials render no section", func(t *testing.T) {
		f := newAppFixture(t)
		f.as(patient)
		f.catalog.On("Services").Return([]responses.Service{})
		f.testimonials.On("FindActive", mock.Anything).Return([]backend_dto.Testimonial{})

		rr := f.get("/")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), `class="testimonials"`)
		assert.Contains(t, rr.Body.String(), `href="/profile"`)
	})
}

func TestRouter_PlanPage(t *testing.T) {
	f := newAppFixture(t)
	f.as(nil)
	f.catalog.On("FindBySlug", "unknown").Return(nil, exceptions.ErrPlanNotFound(nil))

	rr := f.get("/explore-plans/unknown")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "404 - Page Not Found")
}

func TestRouter_PageGuards(t *testing.T) {
	tests := []struct {
		name     string
		user     *backend_dto.User
		path     string
		code     int
		location string
	}{
		{name: "anonymous visitor is sent to login", path: "/admin", code: http.StatusSeeOther, location: "/login"},
		{name: "patient is sent to the profile", user: patient, path: "/admin/testimonials", code: http.StatusSeeOther, location: "/profile"},
		{name: "admin reaches the admin shell", user: admin, path: "/admin", code: http.StatusOK},
		{name: "anonymous profile visit is sent to login", path: "/profile", code: http.StatusSeeOther, location: "/login"},
		{name: "logged in admin skips the login page", user: admin, path: "/login", code: http.StatusSeeOther, location: "/admin"},
		{name: "anonymous visitor sees the login page", path: "/login", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppFixture(t)
			f.as(tt.user)

			rr := f.get(tt.path)

			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get(constvars.HeaderLocation))
		})
	}
}

func TestRouter_ShellCarriesState(t *testing.T) {
	f := newAppFixture(t)
	f.as(admin)

	rr := f.get("/admin")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-page="admin"`)
	assert.Contains(t, rr.Body.String(), `"apiPrefix":"/api/v1"`)
	assert.Contains(t, rr.Body.String(), `"role":"ADMIN"`)
}

func TestRouter_AdminAPI(t *testing.T) {
	t.Run("patients are forbidden", func(t *testing.T) {
		f := newAppFixture(t)
		f.as(patient)

		rr := f.get("/api/v1/admin/appointments")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		f.admin.AssertNotCalled(t, "ListAppointments", mock.Anything, mock.Anything)
	})

	t.Run("admins get a paged list", func(t *testing.T) {
		f := newAppFixture(t)
		f.as(admin)
		f.admin.On("ListAppointments", mock.Anything, mock.MatchedBy(func(query *requests.AdminAppointmentQuery) bool {
			return query.Page == 2 && query.Limit == 5 && query.Status == "PENDING"
		})).Return(
			[]backend_dto.Appointment{{ID: "a-1"}},
			&responses.Pagination{Total: 6, Page: 2, PageSize: 5, PrevURL: "/api/v1/admin/appointments?page=1&page_size=5"},
			nil,
		)

		rr := f.get("/api/v1/admin/appointments?page=2&limit=5&status=PENDING")

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeEnvelope(t, rr)
		pagination, _ := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(6), pagination["total"])
		f.admin.AssertExpectations(t)
	})
}

func TestRouter_NotFound(t *testing.T) {
	f := newAppFixture(t)
	f.as(nil)

	rr := f.get("/api/v1/nothing-here")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, decodeEnvelope(t, rr)["success"])

	rr = f.get("/nothing-here")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "404 - Page Not Found")
}

func TestRouter_SEO(t *testing.T) {
	f := newAppFixture(t)
	f.seo.On("Robots").Return("User-Agent: *\nAllow: /\n")
	f.seo.On("Sitemap").Return([]byte(`<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`), nil)

	rr := f.get("/robots.txt")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User-Agent: *\nAllow: /\n", rr.Body.String())

	rr = f.get("/sitemap.xml")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationXMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
}
