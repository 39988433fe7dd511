// Package casefile persists case snapshots: both field maps plus the case
// identity, as a single JSON document that can be reloaded later.
package casefile

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

// Case is a saved snapshot of a single proceeding.
type Case struct {
	Gmina      string          `json:"gmina"`
	CaseNumber string          `json:"case_number"`
	Wniosek    fields.FieldMap `json:"wniosek"`
	Analiza    fields.FieldMap `json:"analiza"`
	SavedAt    time.Time       `json:"saved_at,omitempty"`
}

// envelope accepts older snapshots that stored the maps under left/right.
type envelope struct {
	Gmina      string          `json:"gmina"`
	CaseNumber string          `json:"case_number"`
	Wniosek    fields.FieldMap `json:"wniosek"`
	Analiza    fields.FieldMap `json:"analiza"`
	Left       fields.FieldMap `json:"left"`
	Right      fields.FieldMap `json:"right"`
	SavedAt    time.Time       `json:"saved_at"`
}

// Encode serialises the case with stable, indented formatting.
func Encode(c Case) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("casefile: encode: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot, tolerating the legacy left/right map names. Nil
// maps come back as empty maps so callers can index without checking.
func Decode(data []byte) (Case, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Case{}, fmt.Errorf("casefile: decode: %w", err)
	}
	c := Case{
		Gmina:      env.Gmina,
		CaseNumber: env.CaseNumber,
		Wniosek:    env.Wniosek,
		Analiza:    env.Analiza,
		SavedAt:    env.SavedAt,
	}
	if c.Wniosek == nil {
		c.Wniosek = env.Left
	}
	if c.Analiza == nil {
		c.Analiza = env.Right
	}
	if c.Wniosek == nil {
		c.Wniosek = fields.FieldMap{}
	}
	if c.Analiza == nil {
		c.Analiza = fields.FieldMap{}
	}
	return c, nil
}

// SanitizeCaseNumber makes a case number safe for file names by replacing
// dots with underscores: "WZ.1234.2024" becomes "WZ_1234_2024".
func SanitizeCaseNumber(caseNumber string) string {
	return strings.ReplaceAll(strings.TrimSpace(caseNumber), ".", "_")
}

// Filename builds a download name for a generated document. When the case
// number is blank a timestamp stands in for it.
func Filename(prefix, caseNumber, ext string, now time.Time) string {
	id := SanitizeCaseNumber(caseNumber)
	if id == "" {
		id = now.Format("20060102_150405")
	}
	return prefix + id + ext
}

// AnalysisPrefix and DecisionPrefix name the two generated document kinds.
const (
	AnalysisPrefix = "analiza_urbanistyczna_"
	DecisionPrefix = "decyzja_"
)
