package models

const (
	DefaultPageWidth  = 500
	DefaultPageHeight = 700
)

type Worksheet struct {
	Title    string   `yaml:"title"`
	Folder   string   `yaml:"folder"`
	Problems []string `yaml:"problems"`
	Answers  []string `yaml:"answers"`
	Page     PageSize `yaml:"page"`
}

// PageSize is in points.
type PageSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Activity struct {
	Name   string          `yaml:"name"`
	Fields []ActivityField `yaml:"fields"`
}

type ActivityField struct {
	Placeholder string     `yaml:"placeholder"`
	Value       string     `yaml:"value"`
	Format      TextFormat `yaml:"format"`
}
