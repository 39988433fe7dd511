package template

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse builds a template tree from raw XML. Parsing is purely structural:
// every element becomes a node whose kind is the element name, and only the
// index/title/label attributes are retained. No schema validation happens
// here; nesting that makes no sense simply produces nodes the walker skips.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("template: document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("template: parse: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root, err := parseNode(dec, start)
		if err != nil {
			return nil, fmt.Errorf("template: parse: %w", err)
		}
		return &Document{Root: root}, nil
	}
}

func parseNode(dec *xml.Decoder, start xml.StartElement) (*Node, error) {
	node := &Node{Kind: NodeKind(start.Name.Local)}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "index":
			node.Index = attr.Value
		case "title":
			node.Title = attr.Value
		case "label":
			node.Label = attr.Value
		}
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseNode(dec, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			node.Text = strings.TrimSpace(text.String())
			return node, nil
		}
	}
}
