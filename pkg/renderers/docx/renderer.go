// Package docx renders the neutral emission stream into an OOXML word
// processing document.
package docx

import (
	"bytes"
	"context"

	godocx "github.com/fumiama/go-docx"

	"github.com/urzadlab/go-wzgen/pkg/render"
)

// Font sizes expressed in half-points, matching OOXML run properties.
const (
	titleSize   = "32"
	headingSize = "26"
)

// Renderer writes events into a .docx body. It holds no state between calls
// and is safe for concurrent use.
type Renderer struct{}

// New returns a ready-to-register DOCX renderer.
func New() *Renderer { return &Renderer{} }

func (r *Renderer) Name() string          { return "docx" }
func (r *Renderer) ContentType() string   { return "application/vnd.openxmlformats-officedocument.wordprocessingml.document" }
func (r *Renderer) FileExtension() string { return ".docx" }

// Render serialises the event stream into a complete document archive.
func (r *Renderer) Render(ctx context.Context, events []render.Event) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := godocx.New().WithDefaultTheme()
	for _, ev := range events {
		switch ev.Kind {
		case render.EventTitle:
			p := doc.AddParagraph()
			applyAlignment(p, ev.Align)
			p.AddText(ev.Text).Size(titleSize).Bold()
		case render.EventHeading:
			p := doc.AddParagraph()
			p.AddText(ev.Text).Size(headingSize).Bold()
		case render.EventParagraph, render.EventListItem:
			p := doc.AddParagraph()
			applyAlignment(p, ev.Align)
			run := p.AddText(ev.Text)
			if ev.Bold {
				run.Bold()
			}
			if ev.Italic {
				run.Italic()
			}
		case render.EventSpacer:
			doc.AddParagraph()
		case render.EventTable:
			addTable(doc, ev)
		}
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func applyAlignment(p *godocx.Paragraph, align render.Alignment) {
	switch align {
	case render.AlignCenter:
		p.Justification("center")
	case render.AlignRight:
		p.Justification("right")
	}
}

func addTable(doc *godocx.Docx, ev render.Event) {
	rows := len(ev.Rows)
	cols := len(ev.Columns)
	if cols == 0 && rows > 0 {
		cols = len(ev.Rows[0])
	}
	if cols == 0 {
		return
	}
	header := 0
	if len(ev.Columns) > 0 {
		header = 1
	}
	tbl := doc.AddTable(rows+header, cols, 0, nil)
	if header == 1 {
		for c, label := range ev.Columns {
			tbl.TableRows[0].TableCells[c].AddParagraph().AddText(label).Bold()
		}
	}
	for ri, row := range ev.Rows {
		cells := tbl.TableRows[ri+header].TableCells
		for ci, text := range row {
			if ci >= len(cells) {
				break
			}
			cells[ci].AddParagraph().AddText(text)
		}
	}
}
