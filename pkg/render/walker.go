package render

import (
	"fmt"

	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/template"
)

// Walk traverses the template tree in document order and produces the neutral
// emission stream both sinks consume. Every text body runs through
// placeholder substitution before the emptiness check: a unit whose filled
// text is empty is suppressed, which is the template format's only
// conditional mechanism. Unrecognised node kinds contribute nothing.
func Walk(doc *template.Document, ctx fields.Context) []Event {
	w := &walker{ctx: ctx}
	for _, node := range doc.Nodes() {
		w.node(node)
	}
	return w.events
}

type walker struct {
	ctx    fields.Context
	events []Event
}

func (w *walker) fill(text string) string {
	return fields.Fill(text, w.ctx)
}

func (w *walker) emit(ev Event) {
	w.events = append(w.events, ev)
}

// paragraph emits a body paragraph unless the filled text is empty.
func (w *walker) paragraph(raw string, bold, italic bool, align Alignment) bool {
	text := w.fill(raw)
	if text == "" {
		return false
	}
	w.emit(Event{Kind: EventParagraph, Text: text, Bold: bold, Italic: italic, Align: align})
	return true
}

func (w *walker) node(n *template.Node) {
	switch n.Kind {
	case template.KindHeader:
		w.header(n)
	case template.KindCase:
		w.caseBlock(n)
	case template.KindSection:
		w.section(n)
	case template.KindAnnex:
		w.annex(n)
	case template.KindLegalBase, template.KindApplicants, template.KindInvestment,
		template.KindLocation:
		w.paragraph(n.Text, false, false, AlignLeft)
	case template.KindDecisionIntro:
		if w.paragraph(n.Text, false, false, AlignLeft) {
			w.emit(Event{Kind: EventSpacer})
		}
	case template.KindDecisionTitle:
		if text := w.fill(n.Text); text != "" {
			w.emit(Event{Kind: EventTitle, Text: text, Bold: true, Align: AlignCenter})
			w.emit(Event{Kind: EventSpacer})
		}
	case template.KindConditions:
		w.conditions(n)
	case template.KindJustification, template.KindInstruction:
		w.titledTexts(n)
	case template.KindAdditionalInfo, template.KindAnnexes, template.KindRecipients:
		w.titledItems(n, "%s. %s")
	case template.KindAgreement:
		w.agreement(n)
	case template.KindFooter:
		w.footer(n)
	}
}

// header handles both template families: analysis headers carry
// Title/Subtitle/LegalBase, decision headers ReferenceNumber/PlaceDate/Title.
// The reference number and place-date line identify a decision header and
// switch the title treatment to the centered bold form.
func (w *walker) header(n *template.Node) {
	refNum := w.fill(n.ChildText(template.KindReferenceNumber))
	placeDate := w.fill(n.ChildText(template.KindPlaceDate))
	decision := n.Child(template.KindReferenceNumber) != nil || n.Child(template.KindPlaceDate) != nil

	if refNum != "" {
		w.emit(Event{Kind: EventParagraph, Text: refNum, Bold: true})
	}
	if placeDate != "" {
		w.emit(Event{Kind: EventParagraph, Text: placeDate, Bold: true, Align: AlignRight})
	}
	if title := w.fill(n.ChildText(template.KindTitle)); title != "" {
		if decision {
			w.emit(Event{Kind: EventTitle, Text: title, Bold: true, Align: AlignCenter})
		} else {
			w.emit(Event{Kind: EventTitle, Text: title})
		}
	}
	if subtitle := w.fill(n.ChildText(template.KindSubtitle)); subtitle != "" {
		w.emit(Event{Kind: EventParagraph, Text: subtitle, Bold: true})
	}
	w.paragraph(n.ChildText(template.KindLegalBase), false, false, AlignLeft)
	w.emit(Event{Kind: EventSpacer})
}

func (w *walker) caseBlock(n *template.Node) {
	if nr := w.fill(n.ChildText(template.KindCaseNum)); nr != "" {
		w.emit(Event{Kind: EventParagraph, Text: "Numer sprawy: " + nr, Bold: true})
	}
	w.paragraph(n.ChildText(template.KindPlots), false, false, AlignLeft)
	w.emit(Event{Kind: EventSpacer})
}

func (w *walker) section(n *template.Node) {
	if title := w.fill(n.Title); title != "" {
		w.emit(Event{Kind: EventHeading, Text: title})
	}
	for _, child := range n.Children {
		switch child.Kind {
		case template.KindParagraph:
			w.paragraph(child.Text, false, false, AlignLeft)
		case template.KindPoint:
			w.point(child)
		}
	}
	w.emit(Event{Kind: EventSpacer})
}

// point renders "{index}. {title}" in bold, then its Text and Subpoint
// children in document order. The index attribute is presentation only; it
// never reorders points.
func (w *walker) point(n *template.Node) {
	if title := w.fill(n.Title); title != "" {
		w.emit(Event{Kind: EventParagraph, Text: fmt.Sprintf("%s. %s", n.Index, title), Bold: true})
	}
	for _, child := range n.Children {
		switch child.Kind {
		case template.KindText:
			w.paragraph(child.Text, false, false, AlignLeft)
		case template.KindSubpoint:
			w.subpoint(child, "%s) %s")
		}
	}
}

func (w *walker) subpoint(n *template.Node, format string) {
	if title := w.fill(n.Title); title != "" {
		w.emit(Event{Kind: EventParagraph, Text: fmt.Sprintf(format, n.Index, title), Bold: true})
	}
	for _, child := range n.Children {
		switch child.Kind {
		case template.KindText:
			w.paragraph(child.Text, false, false, AlignLeft)
		case template.KindList:
			w.list(child)
		case template.KindItem:
			w.conditionItem(child)
		}
	}
}

func (w *walker) list(n *template.Node) {
	for _, item := range n.ChildrenOf(template.KindItem) {
		label := w.fill(item.Label)
		value := w.fill(item.Text)
		if label == "" && value == "" {
			continue
		}
		w.emit(Event{Kind: EventListItem, Text: fmt.Sprintf("- %s: %s", label, value)})
	}
}

// conditionItem is the decision-conditions item form: an indexed line with a
// Label child and a Text child.
func (w *walker) conditionItem(n *template.Node) {
	label := w.fill(n.ChildText(template.KindLabel))
	text := w.fill(n.ChildText(template.KindText))
	if text == "" {
		return
	}
	w.emit(Event{Kind: EventListItem, Text: fmt.Sprintf("%s) %s: %s", n.Index, label, text)})
}

func (w *walker) annex(n *template.Node) {
	if title := w.fill(n.Title); title != "" {
		w.emit(Event{Kind: EventHeading, Text: title})
	}
	for _, child := range n.ChildrenOf(template.KindText) {
		w.paragraph(child.Text, false, false, AlignLeft)
	}
}

func (w *walker) conditions(n *template.Node) {
	for _, point := range n.ChildrenOf(template.KindPoint) {
		if title := w.fill(point.Title); title != "" {
			w.emit(Event{Kind: EventParagraph, Text: fmt.Sprintf("%s. %s", point.Index, title), Bold: true})
		}
		for _, child := range point.Children {
			switch child.Kind {
			case template.KindText:
				w.paragraph(child.Text, false, false, AlignLeft)
			case template.KindSubpoint:
				w.subpoint(child, "%s) %s")
			}
		}
		w.emit(Event{Kind: EventSpacer})
	}
}

// titledTexts renders blocks shaped as an optional bold title followed by
// plain text paragraphs (Justification, Instruction).
func (w *walker) titledTexts(n *template.Node) {
	if title := w.fill(n.ChildText(template.KindTitle)); title != "" {
		w.emit(Event{Kind: EventHeading, Text: title, Bold: true})
	}
	for _, text := range n.ChildrenOf(template.KindText) {
		w.paragraph(text.Text, false, false, AlignLeft)
	}
	w.emit(Event{Kind: EventSpacer})
}

// titledItems renders blocks shaped as an optional bold title followed by
// indexed items, each an Item node with an index attribute and a Text child.
func (w *walker) titledItems(n *template.Node, format string) {
	if title := w.fill(n.ChildText(template.KindTitle)); title != "" {
		w.emit(Event{Kind: EventHeading, Text: title, Bold: true})
	}
	for _, item := range n.ChildrenOf(template.KindItem) {
		text := w.fill(item.ChildText(template.KindText))
		if text == "" {
			continue
		}
		w.emit(Event{Kind: EventListItem, Text: fmt.Sprintf(format, item.Index, text)})
	}
	w.emit(Event{Kind: EventSpacer})
}

// agreement is titledItems plus an optional italic note and a closing text
// paragraph, with the decision ")"-style item numbering.
func (w *walker) agreement(n *template.Node) {
	if title := w.fill(n.ChildText(template.KindTitle)); title != "" {
		w.emit(Event{Kind: EventHeading, Text: title, Bold: true})
	}
	for _, item := range n.ChildrenOf(template.KindItem) {
		text := w.fill(item.ChildText(template.KindText))
		if text == "" {
			continue
		}
		w.emit(Event{Kind: EventListItem, Text: fmt.Sprintf("%s) %s", item.Index, text)})
	}
	if note := w.fill(n.ChildText(template.KindNote)); note != "" {
		w.emit(Event{Kind: EventParagraph, Text: note, Italic: true})
	}
	w.paragraph(n.ChildText(template.KindText), false, false, AlignLeft)
	w.emit(Event{Kind: EventSpacer})
}

func (w *walker) footer(n *template.Node) {
	w.emit(Event{Kind: EventSpacer})
	w.paragraph(n.ChildText(template.KindSignLine), false, false, AlignLeft)
	w.paragraph(n.ChildText(template.KindSignHint), false, false, AlignRight)
}
