package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/urzadlab/go-wzgen/pkg/render"
	"github.com/urzadlab/go-wzgen/pkg/renderers/pdf"
)

func TestRenderProducesPDF(t *testing.T) {
	r := pdf.New()
	events := []render.Event{
		{Kind: render.EventTitle, Text: "DECYZJA O WARUNKACH ZABUDOWY", Bold: true, Align: render.AlignCenter},
		{Kind: render.EventParagraph, Text: "Znak: WZ.7.2024", Bold: true},
		{Kind: render.EventParagraph, Text: "Konopnica, dnia 12.06.2024 r.", Bold: true, Align: render.AlignRight},
		{Kind: render.EventSpacer},
		{Kind: render.EventListItem, Text: "a) linia zabudowy: 6 m"},
		{Kind: render.EventTable, Columns: []string{"Pole", "Wartość"}, Rows: [][]string{
			{"Numery działek", "123/4"},
		}},
	}

	got, err := r.Render(context.Background(), events)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Fatal("output does not start with the PDF magic")
	}
}

func TestRenderMissingFontDirFallsBackToCoreFonts(t *testing.T) {
	r := pdf.New(pdf.WithFontDir(t.TempDir()))
	got, err := r.Render(context.Background(), []render.Event{
		{Kind: render.EventParagraph, Text: "brak czcionek DejaVu"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("empty output")
	}
}

func TestRendererMetadata(t *testing.T) {
	r := pdf.New()
	if r.Name() != "pdf" {
		t.Errorf("name = %q", r.Name())
	}
	if r.ContentType() != "application/pdf" {
		t.Errorf("content type = %q", r.ContentType())
	}
}
