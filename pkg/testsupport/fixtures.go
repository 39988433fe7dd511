// Package testsupport provides fixture helpers shared by the package tests.
package testsupport

import (
	"testing"
	"time"

	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/template"
)

// FixedNow is the pinned clock used by tests that exercise date defaults.
var FixedNow = time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC)

// ParseTemplate parses template XML source and fails the test on error.
func ParseTemplate(t *testing.T, source string) *template.Document {
	t.Helper()

	doc, err := template.Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	return doc
}

// ApplicationFixture returns a filled application map covering the required
// keys, patched with the provided overrides.
func ApplicationFixture(overrides fields.FieldMap) fields.FieldMap {
	m := fields.FieldMap{
		"wnioskodawca_mianownik":  "Pan Jan Kowalski",
		"wnioskodawca_dopelniacz": "Pana Jan Kowalski",
		"wnioskodawca_adres":      "ul. Lipowa 5, 21-030 Motycz",
		"gmina":                   "Konopnica",
		"obreb":                   "Motycz",
		"dzialki":                 "123/4",
		"data_wykonania_analizy":  "10.06.2024",
		"data_zlozenia_wniosku":   "05.03.2024",
	}
	for k, v := range overrides {
		m[k] = v
	}
	return m
}
