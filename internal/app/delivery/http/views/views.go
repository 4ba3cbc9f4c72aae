package views

import (
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	PageHome     = "home"
	PageServices = "services"
	PagePlan     = "plan"
	PageShell    = "shell"
	PageNotFound = "not_found"
)

var pages = []string{PageHome, PageServices, PagePlan, PageShell, PageNotFound}

// shared partials parsed into every page
var partials = []string{"templates/layout.html", "templates/service_card.html"}

type PageData struct {
	Title          string
	Description    string
	SiteName       string
	CanonicalURL   string
	CurrencySymbol string
	Year           int
	User           *backend_dto.User
	Services       []responses.Service
	Service        *responses.Service
	Testimonials   []backend_dto.Testimonial
	Shell          *responses.ShellState
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		files := append([]string{"templates/" + page + ".html"}, partials...)
		tmpl, err := template.New(page).ParseFS(templateFS, files...)
		if err != nil {
			return nil, exceptions.ErrRenderTemplate(err, page)
		}
		renderer.pages[page] = tmpl
	}
	return renderer, nil
}

// Render executes the page into a buffer first so a template failure never leaves a half written response.
func (v *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) error {
	tmpl, ok := v.pages[page]
	if !ok {
		return exceptions.ErrRenderTemplate(nil, page)
	}
	if data.CurrencySymbol == "" {
		data.CurrencySymbol = constvars.CurrencySymbol
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		return exceptions.ErrRenderTemplate(err, page)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet and script.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
