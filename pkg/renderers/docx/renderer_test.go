package docx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/urzadlab/go-wzgen/pkg/render"
	"github.com/urzadlab/go-wzgen/pkg/renderers/docx"
)

func TestRenderProducesDocxArchive(t *testing.T) {
	r := docx.New()
	events := []render.Event{
		{Kind: render.EventTitle, Text: "ANALIZA URBANISTYCZNA", Align: render.AlignCenter},
		{Kind: render.EventHeading, Text: "III. Wyniki analizy"},
		{Kind: render.EventParagraph, Text: "1. Linia zabudowy", Bold: true},
		{Kind: render.EventParagraph, Text: "6 m od krawędzi jezdni"},
		{Kind: render.EventListItem, Text: "- wysokość: do 9 m"},
		{Kind: render.EventSpacer},
		{Kind: render.EventTable, Columns: []string{"Pole", "Wartość"}, Rows: [][]string{
			{"Numery działek", "123/4"},
			{"Obręb", "Motycz"},
		}},
	}

	got, err := r.Render(context.Background(), events)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// A .docx file is a zip archive; check the magic instead of unpacking.
	if !bytes.HasPrefix(got, []byte("PK")) {
		t.Fatalf("output does not look like a zip archive, first bytes %q", got[:min(4, len(got))])
	}
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := docx.New().Render(ctx, nil); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRendererMetadata(t *testing.T) {
	r := docx.New()
	if r.Name() != "docx" {
		t.Errorf("name = %q", r.Name())
	}
	if r.FileExtension() != ".docx" {
		t.Errorf("extension = %q", r.FileExtension())
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
