package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

func TestCompareTrimsAndIgnoresCase(t *testing.T) {
	left := fields.FieldMap{
		"dzialki": "  123/4  ",
		"obreb":   "Motycz",
		"woda":    "wodociąg gminny",
	}
	right := fields.FieldMap{
		"dzialki": "123/4",
		"obreb":   "MOTYCZ",
		"woda":    "studnia",
	}

	got := fields.Compare(left, right)
	want := map[string]fields.Comparison{
		"dzialki": {Left: "123/4", Right: "123/4", Match: true},
		"obreb":   {Left: "Motycz", Right: "MOTYCZ", Match: true},
		"woda":    {Left: "wodociąg gminny", Right: "studnia", Match: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("comparison mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareCoversKeyUnion(t *testing.T) {
	left := fields.FieldMap{"gaz": "brak"}
	right := fields.FieldMap{"ogrzewanie": "pompa ciepła"}

	got := fields.Compare(left, right)

	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
	if got["gaz"].Match {
		t.Error("one-sided key gaz reported as match")
	}
	if got["ogrzewanie"].Right != "pompa ciepła" {
		t.Errorf("ogrzewanie right = %q", got["ogrzewanie"].Right)
	}
}

func TestCompareOneSidedApplication(t *testing.T) {
	wniosek := fields.FieldMap{"gmina": "Konopnica", "dzialki": "12/3"}
	analiza := fields.FieldMap{}

	got := fields.Compare(wniosek, analiza)

	want := fields.Comparison{Left: "12/3", Right: "", Match: false}
	if diff := cmp.Diff(want, got["dzialki"]); diff != "" {
		t.Fatalf("dzialki mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareBothEmptyMatches(t *testing.T) {
	got := fields.Compare(fields.FieldMap{"uwagi": "   "}, fields.FieldMap{"uwagi": ""})
	if !got["uwagi"].Match {
		t.Error("two blank values should compare equal")
	}
}

func TestOrderedKeysRegistryFirstThenSorted(t *testing.T) {
	reg := fields.NewRegistry([]fields.Entry{
		{Key: "dzialki", Label: "Numery działek"},
		{Key: "obreb", Label: "Obręb"},
	})
	result := fields.Compare(
		fields.FieldMap{"zzz_extra": "1", "obreb": "Motycz", "aaa_extra": "2"},
		fields.FieldMap{"dzialki": "123/4"},
	)

	got := fields.OrderedKeys(result, reg)
	want := []string{"dzialki", "obreb", "aaa_extra", "zzz_extra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}
