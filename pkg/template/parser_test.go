package template_test

import (
	"testing"

	"github.com/urzadlab/go-wzgen/pkg/template"
)

const miniTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<AnalysisTemplate>
  <Header>
    <Title>ANALIZA URBANISTYCZNA</Title>
    <LegalBase>art. 61 ustawy</LegalBase>
  </Header>
  <Section title="I. Przedmiot analizy">
    <Paragraph>Wniosek {{wnioskodawca_dopelniacz}}.</Paragraph>
    <Point index="1" title="Linia zabudowy">
      <Text>{{linia_zabudowy}}</Text>
    </Point>
  </Section>
  <Unknown>ignored by the walker</Unknown>
</AnalysisTemplate>`

func TestParseBuildsTree(t *testing.T) {
	doc, err := template.Parse([]byte(miniTemplate))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	nodes := doc.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("top-level nodes = %d, want 3", len(nodes))
	}

	header := nodes[0]
	if header.Kind != template.KindHeader {
		t.Fatalf("first node kind = %q", header.Kind)
	}
	if got := header.ChildText(template.KindTitle); got != "ANALIZA URBANISTYCZNA" {
		t.Errorf("title = %q", got)
	}

	section := nodes[1]
	if section.Title != "I. Przedmiot analizy" {
		t.Errorf("section title = %q", section.Title)
	}
	point := section.Child(template.KindPoint)
	if point == nil {
		t.Fatal("point missing")
	}
	if point.Index != "1" || point.Title != "Linia zabudowy" {
		t.Errorf("point attrs = %q/%q", point.Index, point.Title)
	}
	if got := point.ChildText(template.KindText); got != "{{linia_zabudowy}}" {
		t.Errorf("point text = %q, placeholder must survive parsing", got)
	}

	if nodes[2].Kind != template.NodeKind("Unknown") {
		t.Errorf("unknown element kind = %q, want literal name", nodes[2].Kind)
	}
}

func TestParsePreservesChildOrder(t *testing.T) {
	source := `<T><Section title="s"><Paragraph>a</Paragraph><Point index="1" title="p"><Text>b</Text></Point><Paragraph>c</Paragraph></Section></T>`
	doc, err := template.Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	children := doc.Nodes()[0].Children
	kinds := []template.NodeKind{template.KindParagraph, template.KindPoint, template.KindParagraph}
	if len(children) != len(kinds) {
		t.Fatalf("children = %d, want %d", len(children), len(kinds))
	}
	for i, want := range kinds {
		if children[i].Kind != want {
			t.Errorf("child %d kind = %q, want %q", i, children[i].Kind, want)
		}
	}
}

func TestParseRejectsMalformedXML(t *testing.T) {
	if _, err := template.Parse([]byte("<T><Header></T>")); err == nil {
		t.Fatal("expected error for mismatched elements")
	}
}
