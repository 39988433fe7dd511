// Package render defines the neutral emission stream between the template
// walker and the output sinks. The walker flattens a template tree into a
// linear sequence of events; every renderer consumes the same sequence, so
// all output formats carry the same content in the same order and none can
// drift from the others.
package render

// EventKind classifies one unit of document output.
type EventKind string

const (
	// EventTitle is the document title line.
	EventTitle EventKind = "title"
	// EventHeading is a section heading.
	EventHeading EventKind = "heading"
	// EventParagraph is a body paragraph.
	EventParagraph EventKind = "paragraph"
	// EventListItem is one pre-formatted list line, marker included.
	EventListItem EventKind = "list-item"
	// EventSpacer is deliberate vertical whitespace.
	EventSpacer EventKind = "spacer"
	// EventTable is a full table with optional header columns.
	EventTable EventKind = "table"
)

// Alignment positions a text event on the line. The zero value is left.
type Alignment string

const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Event is one unit of the emission stream. Text events use Text with the
// style flags; EventTable uses Columns and Rows instead.
type Event struct {
	Kind   EventKind
	Text   string
	Bold   bool
	Italic bool
	Align  Alignment

	Columns []string
	Rows    [][]string
}
