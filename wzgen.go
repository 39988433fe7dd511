// Package wzgen generates Polish building-conditions documents: it compares
// application and analysis field maps, fills XML document templates and
// renders them to DOCX or PDF.
//
// The root package is a thin facade over pkg/orchestrator and pkg/fields for
// callers that want the default wiring.
package wzgen

import (
	"context"

	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/orchestrator"
)

// Generate runs one document generation with the default orchestrator
// wiring. Long-lived callers should build their own orchestrator instead of
// paying the setup cost per call.
func Generate(ctx context.Context, req orchestrator.Request) (*orchestrator.Result, error) {
	return orchestrator.New().Generate(ctx, req)
}

// Compare diffs the two field maps over the default registry and returns the
// per-key comparison keyed by field.
func Compare(wniosek, analiza fields.FieldMap) map[string]fields.Comparison {
	return fields.Compare(wniosek, analiza)
}
