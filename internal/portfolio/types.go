// Package portfolio loads and validates the portfolio data document.
//
// At render time the document is kept as raw JSON and traversed with gjson so
// that technicalSkills iterates in the author's key order and a malformed
// section degrades per-builder instead of failing the whole decode. The typed
// structs below exist for authoring: `folio init` marshals a starter document
// from them.
package portfolio

import "encoding/json"

// Personal holds the free-text introduction shown under the page header.
// The summary may contain inline markdown.
type Personal struct {
	Summary string `json:"summary"`
}

// Job is one experience entry.
type Job struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Period     string   `json:"period"`
	StartDate  string   `json:"startDate"`
	Highlights []string `json:"highlights"`
}

// Certificate is one education/certification entry.
type Certificate struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	Date     string `json:"date"`
	DateTime string `json:"dateTime"`
}

// Project is one key-project entry.
type Project struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Document is the full portfolio data shape.
type Document struct {
	Personal        Personal          `json:"personal"`
	Experience      []Job             `json:"experience"`
	Education       []Certificate     `json:"education"`
	TechnicalSkills map[string]string `json:"technicalSkills"`
	Projects        []Project         `json:"projects"`
}

// Marshal renders the document as indented JSON suitable for hand-editing.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// StarterDocument returns a minimal document that renders every section,
// meant as a template for the author to fill in.
func StarterDocument() *Document {
	return &Document{
		Personal: Personal{
			Summary: "A short introduction about yourself. Inline *markdown* is supported.",
		},
		Experience: []Job{
			{
				Company:   "Example Corp",
				Title:     "Senior Engineer",
				Period:    "2022 - Present",
				StartDate: "2022-01",
				Highlights: []string{
					"Describe a concrete achievement here.",
					"And another one here.",
				},
			},
		},
		Education: []Certificate{
			{
				Name:     "BSc Computer Science",
				Issuer:   "Example University",
				Date:     "2018",
				DateTime: "2018-06",
			},
		},
		TechnicalSkills: map[string]string{
			"Languages": "Go, Python, SQL",
			"Tooling":   "Docker, Terraform, GitHub Actions",
		},
		Projects: []Project{
			{
				Name:        "you/your-project",
				URL:         "https://github.com/you/your-project",
				Description: "One sentence about what the project does.",
			},
		},
	}
}
