package constvars

const (
	SiteName        = "Anubha Nutrition Clinic"
	SiteDefaultURL  = "https://anubhanutrition.in"
	CurrencySymbol  = "₹"
	ChangeFreqWeek  = "weekly"
	ChangeFreqMonth = "monthly"
)

// Route segments published in the sitemap, relative to the site URL.
var SitemapRoutes = []string{"", "/services", "/login", "/register", "/profile", "/book"}

// Path prefixes disallowed for crawlers.
var RobotsDisallow = []string{"/admin/", "/api/", "/test/"}
