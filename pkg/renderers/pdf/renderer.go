// Package pdf renders the neutral emission stream directly into a PDF. It is
// the in-process path used when no external DOCX-to-PDF converter is
// available.
package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/urzadlab/go-wzgen/pkg/render"
)

const (
	fontRegular = "DejaVuSans.ttf"
	fontBold    = "DejaVuSans-Bold.ttf"

	marginMM   = 12.7
	lineHeight = 5.5
	labelColMM = 62.0
)

// Renderer writes events onto A4 pages. When a DejaVu Sans pair is present
// in the configured font directory it is embedded so Polish diacritics
// survive; otherwise the core Helvetica fonts are used.
type Renderer struct {
	fontDir string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFontDir points the renderer at a directory holding DejaVuSans.ttf and
// DejaVuSans-Bold.ttf.
func WithFontDir(dir string) Option {
	return func(r *Renderer) { r.fontDir = dir }
}

// New returns a ready-to-register PDF renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string          { return "pdf" }
func (r *Renderer) ContentType() string   { return "application/pdf" }
func (r *Renderer) FileExtension() string { return ".pdf" }

// Render lays the event stream out on A4 pages and returns the PDF bytes.
func (r *Renderer) Render(ctx context.Context, events []render.Event) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	family := r.installFonts(doc)
	doc.AddPage()

	width, _ := doc.GetPageSize()
	usable := width - 2*marginMM

	for _, ev := range events {
		switch ev.Kind {
		case render.EventTitle:
			doc.SetFont(family, "B", 16)
			doc.MultiCell(usable, 8, ev.Text, "", alignString(ev.Align, "C"), false)
			doc.Ln(2)
		case render.EventHeading:
			doc.SetFont(family, "B", 13)
			doc.MultiCell(usable, 7, ev.Text, "", "L", false)
			doc.Ln(1)
		case render.EventParagraph, render.EventListItem:
			doc.SetFont(family, styleString(ev.Bold, ev.Italic), 11)
			doc.MultiCell(usable, lineHeight, ev.Text, "", alignString(ev.Align, "L"), false)
		case render.EventSpacer:
			doc.Ln(lineHeight)
		case render.EventTable:
			r.table(doc, family, usable, ev)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// installFonts embeds the DejaVu pair when both files exist and returns the
// family name to use for the whole document.
func (r *Renderer) installFonts(doc *fpdf.Fpdf) string {
	if r.fontDir == "" {
		return "Helvetica"
	}
	regular := filepath.Join(r.fontDir, fontRegular)
	bold := filepath.Join(r.fontDir, fontBold)
	if !fileExists(regular) || !fileExists(bold) {
		return "Helvetica"
	}
	doc.AddUTF8Font("DejaVuSans", "", regular)
	doc.AddUTF8Font("DejaVuSans", "B", bold)
	// The embedded pair has no italic face; italic runs fall back to the
	// regular style.
	doc.AddUTF8Font("DejaVuSans", "I", regular)
	doc.AddUTF8Font("DejaVuSans", "BI", bold)
	return "DejaVuSans"
}

// table draws a bordered two-column layout with row heights driven by the
// taller of the wrapped cells.
func (r *Renderer) table(doc *fpdf.Fpdf, family string, usable float64, ev render.Event) {
	valueCol := usable - labelColMM
	if len(ev.Columns) == 2 {
		doc.SetFont(family, "B", 11)
		doc.SetFillColor(230, 230, 230)
		doc.CellFormat(labelColMM, 7, ev.Columns[0], "1", 0, "L", true, 0, "")
		doc.CellFormat(valueCol, 7, ev.Columns[1], "1", 1, "L", true, 0, "")
	}
	for _, row := range ev.Rows {
		if len(row) < 2 {
			continue
		}
		doc.SetFont(family, "B", 10)
		labelLines := doc.SplitText(row[0], labelColMM-2)
		doc.SetFont(family, "", 10)
		valueLines := doc.SplitText(row[1], valueCol-2)
		lines := len(labelLines)
		if len(valueLines) > lines {
			lines = len(valueLines)
		}
		height := float64(lines) * 5.0
		if height < 6 {
			height = 6
		}
		// Keep the row on one page so the two cells stay side by side.
		_, pageHeight := doc.GetPageSize()
		if doc.GetY()+height > pageHeight-marginMM {
			doc.AddPage()
		}
		x, y := doc.GetXY()
		doc.SetFont(family, "B", 10)
		doc.MultiCell(labelColMM, 5, row[0], "1", "L", false)
		doc.SetXY(x+labelColMM, y)
		doc.SetFont(family, "", 10)
		doc.MultiCell(valueCol, 5, row[1], "1", "L", false)
		if endY := doc.GetY(); endY < y+height {
			doc.SetY(y + height)
		}
		doc.SetX(marginMM)
	}
	doc.Ln(2)
}

func alignString(a render.Alignment, fallback string) string {
	switch a {
	case render.AlignCenter:
		return "C"
	case render.AlignRight:
		return "R"
	default:
		return fallback
	}
}

func styleString(bold, italic bool) string {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	return style
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
