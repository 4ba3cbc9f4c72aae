package seo

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"encoding/xml"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type seoUsecase struct {
	baseURL string
	now     func() time.Time
}

func NewSEOUsecase(internalConfig *config.InternalConfig) contracts.SEOUsecase {
	baseURL := strings.TrimSuffix(internalConfig.Site.BaseUrl, "/")
	if baseURL == "" {
		baseURL = constvars.SiteDefaultURL
	}
	return &seoUsecase{
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (uc *seoUsecase) Robots() string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range constvars.RobotsDisallow {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\nSitemap: " + uc.baseURL + "/sitemap.xml\n")
	return b.String()
}

// Sitemap lists the public routes; the home page changes weekly, the rest monthly.
func (uc *seoUsecase) Sitemap() ([]byte, error) {
	lastModified := uc.now().UTC().Format(time.RFC3339)

	set := urlSet{Xmlns: sitemapNamespace}
	for _, route := range constvars.SitemapRoutes {
		entry := sitemapURL{
			Loc:        uc.baseURL + route,
			LastMod:    lastModified,
			ChangeFreq: constvars.ChangeFreqMonth,
			Priority:   "0.8",
		}
		if route == "" {
			entry.ChangeFreq = constvars.ChangeFreqWeek
			entry.Priority = "1.0"
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, exceptions.ErrCannotMarshalXML(err)
	}
	return append([]byte(xml.Header), body...), nil
}
