package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

//go:embed templates
var templateFS embed.FS

// IndexData feeds the form page: the municipality choices, the field
// definitions rendered as paired inputs and the applicant title radio
// options.
type IndexData struct {
	Municipalities []string
	Fields         []fields.Entry
	Titles         []string
}

// Views renders the HTML pages from the embedded template set.
type Views struct {
	index *pongo2.Template
}

// NewViews compiles the embedded templates.
func NewViews() (*Views, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("httpapi: template fs: %w", err)
	}
	set := pongo2.NewSet("wzgen", pongo2.NewFSLoader(sub))
	index, err := set.FromFile("index.html")
	if err != nil {
		return nil, fmt.Errorf("httpapi: compile index: %w", err)
	}
	return &Views{index: index}, nil
}

// indexField is one form row: application-only fields render a single input
// because the findings side is copied from the application, never typed.
type indexField struct {
	Key             string
	Label           string
	ApplicationOnly bool
}

// Index renders the form page.
func (v *Views) Index(data IndexData) ([]byte, error) {
	rows := make([]indexField, 0, len(data.Fields))
	for _, entry := range data.Fields {
		rows = append(rows, indexField{
			Key:             entry.Key,
			Label:           entry.Label,
			ApplicationOnly: fields.IsApplicationOnly(entry.Key),
		})
	}
	var buf bytes.Buffer
	err := v.index.ExecuteWriter(pongo2.Context{
		"municipalities": data.Municipalities,
		"fields":         rows,
		"titles":         data.Titles,
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("httpapi: render index: %w", err)
	}
	return buf.Bytes(), nil
}
