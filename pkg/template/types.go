// Package template holds the in-memory model of a municipality markup
// template and its XML loader. A template is a tree of typed nodes; element
// names map 1:1 to node kinds and unknown elements are kept in the tree but
// ignored by the walker, so newer template files keep working against older
// binaries.
package template

// NodeKind identifies the structural role of a template node. The value is
// the literal XML element name.
type NodeKind string

// Node kinds shared by both document types.
const (
	KindHeader    NodeKind = "Header"
	KindTitle     NodeKind = "Title"
	KindSubtitle  NodeKind = "Subtitle"
	KindLegalBase NodeKind = "LegalBase"
	KindCase      NodeKind = "Case"
	KindCaseNum   NodeKind = "CaseNumber"
	KindPlots     NodeKind = "Plots"
	KindSection   NodeKind = "Section"
	KindParagraph NodeKind = "Paragraph"
	KindPoint     NodeKind = "Point"
	KindSubpoint  NodeKind = "Subpoint"
	KindText      NodeKind = "Text"
	KindList      NodeKind = "List"
	KindItem      NodeKind = "Item"
	KindLabel     NodeKind = "Label"
	KindAnnex     NodeKind = "Annex"
	KindFooter    NodeKind = "Footer"
	KindSignLine  NodeKind = "SignLine"
	KindSignHint  NodeKind = "SignHint"
)

// Node kinds specific to decision templates.
const (
	KindReferenceNumber NodeKind = "ReferenceNumber"
	KindPlaceDate       NodeKind = "PlaceDate"
	KindApplicants      NodeKind = "Applicants"
	KindInvestment      NodeKind = "Investment"
	KindLocation        NodeKind = "Location"
	KindDecisionTitle   NodeKind = "DecisionTitle"
	KindDecisionIntro   NodeKind = "DecisionIntro"
	KindConditions      NodeKind = "Conditions"
	KindJustification   NodeKind = "Justification"
	KindInstruction     NodeKind = "Instruction"
	KindAdditionalInfo  NodeKind = "AdditionalInfo"
	KindAgreement       NodeKind = "Agreement"
	KindNote            NodeKind = "Note"
	KindAnnexes         NodeKind = "Annexes"
	KindRecipients      NodeKind = "Recipients"
)

// Node is one structural unit of a template: an optional literal text body
// (which may contain {{key}} placeholder tokens), the recognised string
// attributes, and an ordered list of children. Nodes are read-only once the
// tree is built.
type Node struct {
	Kind     NodeKind
	Text     string
	Index    string
	Title    string
	Label    string
	Children []*Node
}

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind NodeKind) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// ChildText returns the text body of the first direct child of the given
// kind, or "" when no such child exists.
func (n *Node) ChildText(kind NodeKind) string {
	if child := n.Child(kind); child != nil {
		return child.Text
	}
	return ""
}

// ChildrenOf returns all direct children of the given kind in document order.
func (n *Node) ChildrenOf(kind NodeKind) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			out = append(out, child)
		}
	}
	return out
}

// Document is a parsed template tree. Each generation request loads its own
// instance; there is no shared mutable state between requests.
type Document struct {
	Root *Node
}

// Nodes returns the top-level nodes in document order.
func (d *Document) Nodes() []*Node {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Children
}
