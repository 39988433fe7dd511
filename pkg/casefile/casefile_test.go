package casefile_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/urzadlab/go-wzgen/pkg/casefile"
	"github.com/urzadlab/go-wzgen/pkg/fields"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := casefile.Case{
		Gmina:      "Konopnica",
		CaseNumber: "WZ.1234.2024",
		Wniosek:    fields.FieldMap{"dzialki": "123/4"},
		Analiza:    fields.FieldMap{"dzialki": "123/4, 123/5"},
		SavedAt:    time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC),
	}

	data, err := casefile.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := casefile.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAcceptsLegacyLeftRightNames(t *testing.T) {
	data := []byte(`{
  "gmina": "Konopnica",
  "case_number": "WZ.7.2024",
  "left": {"obreb": "Motycz"},
  "right": {"obreb": "Motycz Józefin"}
}`)

	out, err := casefile.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Wniosek.Get("obreb") != "Motycz" {
		t.Errorf("wniosek = %v", out.Wniosek)
	}
	if out.Analiza.Get("obreb") != "Motycz Józefin" {
		t.Errorf("analiza = %v", out.Analiza)
	}
}

func TestDecodeFillsNilMaps(t *testing.T) {
	out, err := casefile.Decode([]byte(`{"gmina": "Konopnica"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Wniosek == nil || out.Analiza == nil {
		t.Fatal("maps must never be nil after decoding")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := casefile.Decode([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSanitizeCaseNumber(t *testing.T) {
	tests := []struct{ in, want string }{
		{"WZ.1234.2024", "WZ_1234_2024"},
		{"  WZ.7.2024 ", "WZ_7_2024"},
		{"bez-kropek", "bez-kropek"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := casefile.SanitizeCaseNumber(tc.in); got != tc.want {
			t.Errorf("SanitizeCaseNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 45, 0, time.UTC)

	got := casefile.Filename(casefile.AnalysisPrefix, "WZ.1234.2024", ".docx", now)
	if got != "analiza_urbanistyczna_WZ_1234_2024.docx" {
		t.Errorf("filename = %q", got)
	}

	got = casefile.Filename(casefile.DecisionPrefix, "", ".pdf", now)
	if got != "decyzja_20240612_103045.pdf" {
		t.Errorf("timestamp filename = %q", got)
	}
}
