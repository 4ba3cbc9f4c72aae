package models

type Catalog struct {
	Services []Service `yaml:"services"`
}

type Service struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Summary     string    `yaml:"summary"`
	Image       string    `yaml:"image"`
	Description string    `yaml:"description"`
	Fee         int       `yaml:"fee"`
	Duration    string    `yaml:"duration"`
	Programs    []Program `yaml:"programs"`
}

type Program struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
	Outcome  string `yaml:"outcome"`
	Price    int    `yaml:"price"`
}
