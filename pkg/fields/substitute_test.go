package fields_test

import (
	"testing"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

func TestFill(t *testing.T) {
	ctx := fields.Context{
		"dzialki": "123/4",
		"obreb":   "Motycz",
		"loop":    "{{loop}}",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single token", "działki nr {{dzialki}}", "działki nr 123/4"},
		{"repeated token", "{{obreb}} / {{obreb}}", "Motycz / Motycz"},
		{"unknown token kept", "obręb {{nieznany}}", "obręb {{nieznany}}"},
		{"no tokens", "tekst bez znaczników", "tekst bez znaczników"},
		{"empty input", "", ""},
		{"value with token is not re-expanded", "{{loop}}", "{{loop}}"},
		{"unterminated token kept", "działki {{dzialki", "działki {{dzialki"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fields.Fill(tc.in, ctx); got != tc.want {
				t.Errorf("Fill(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// A value carrying another key's token must come through untouched: the pass
// runs over the template text only, never over substituted values.
func TestFillDoesNotExpandSubstitutedValues(t *testing.T) {
	ctx := fields.Context{
		"a": "{{b}}",
		"b": "X",
	}

	for i := 0; i < 50; i++ {
		if got := fields.Fill("{{a}} i {{b}}", ctx); got != "{{b}} i X" {
			t.Fatalf("Fill = %q, want %q", got, "{{b}} i X")
		}
	}
}
