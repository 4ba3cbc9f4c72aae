package responses

import "html/template"

type Service struct {
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Summary         string        `json:"summary"`
	Image           string        `json:"image"`
	DescriptionHTML template.HTML `json:"descriptionHtml"`
	Fee             int           `json:"fee"`
	FeeLabel        string        `json:"feeLabel"`
	Duration        string        `json:"duration"`
	Programs        []Program     `json:"programs,omitempty"`
}

type Program struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Outcome  string `json:"outcome"`
	Price    int    `json:"price"`
}

// ShellState is embedded into app-shell pages so the browser starts hydrated.
type ShellState struct {
	Auth      AuthState `json:"auth"`
	CSRFToken string    `json:"csrfToken,omitempty"`
	APIPrefix string    `json:"apiPrefix"`
	Page      string    `json:"page"`
}
