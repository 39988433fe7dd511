package render

import (
	"fmt"
	"time"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

// FallbackInput carries the municipality-specific narrative blocks used by
// the tabular rendering when no analysis template exists.
type FallbackInput struct {
	Municipality string
	Header       string
	Intro        string
	Footer       string
	Now          time.Time
}

// Tabular builds the two-column fallback document for an analysis: every
// registry field in registry order, labelled, with the raw analysis value.
// No placeholder substitution happens here; the values are presented as
// entered.
func Tabular(reg *fields.Registry, analiza fields.FieldMap, in FallbackInput) []Event {
	events := []Event{
		{Kind: EventTitle, Text: in.Header, Bold: true, Align: AlignCenter},
	}
	if in.Intro != "" {
		events = append(events,
			Event{Kind: EventParagraph, Text: in.Intro},
			Event{Kind: EventSpacer},
		)
	}
	rows := make([][]string, 0, reg.Len())
	for _, entry := range reg.Entries() {
		rows = append(rows, []string{entry.Label, analiza.Get(entry.Key)})
	}
	events = append(events, Event{
		Kind:    EventTable,
		Columns: []string{"Pole", "Wartość"},
		Rows:    rows,
	})
	events = append(events, Event{Kind: EventSpacer})
	for _, section := range []struct {
		title string
		key   string
	}{
		{"Wyniki analizy", "wyniki_analizy"},
		{"Uzasadnienie", "uzasadnienie"},
		{"Podstawy prawne", "podstawy_prawne"},
	} {
		text := analiza.Get(section.key)
		if text == "" {
			continue
		}
		events = append(events,
			Event{Kind: EventHeading, Text: section.title, Bold: true},
			Event{Kind: EventParagraph, Text: text},
			Event{Kind: EventSpacer},
		)
	}
	if in.Municipality != "" {
		events = append(events, Event{Kind: EventParagraph, Text: "Gmina: " + in.Municipality, Bold: true})
	}
	if in.Footer != "" {
		events = append(events, Event{Kind: EventParagraph, Text: in.Footer})
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	events = append(events, Event{
		Kind:   EventParagraph,
		Text:   fmt.Sprintf("Data generacji: %s", now.Format("02.01.2006 15:04")),
		Italic: true,
	})
	return events
}
