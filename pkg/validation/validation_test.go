package validation_test

import (
	"strings"
	"testing"

	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/testsupport"
	"github.com/urzadlab/go-wzgen/pkg/validation"
)

func TestCheckAcceptsCompleteApplication(t *testing.T) {
	errs := validation.Check(testsupport.ApplicationFixture(nil), fields.DefaultRegistry())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestCheckCollectsAllMissingFields(t *testing.T) {
	m := testsupport.ApplicationFixture(fields.FieldMap{
		"dzialki": "",
		"obreb":   "   ",
	})

	errs := validation.Check(m, fields.DefaultRegistry())

	if len(errs) != 2 {
		t.Fatalf("errors = %v, want both missing fields reported", errs)
	}
	joined := errs.Error()
	for _, label := range []string{"Numery działek", "Obręb"} {
		if !strings.Contains(joined, label) {
			t.Errorf("error for %q missing from %q", label, joined)
		}
	}
}

func TestCheckRequiresApplicantTitle(t *testing.T) {
	m := testsupport.ApplicationFixture(fields.FieldMap{
		"wnioskodawca_mianownik": "Jan Kowalski",
	})

	errs := validation.Check(m, fields.DefaultRegistry())

	if len(errs) != 1 || !strings.Contains(errs[0], "tytułu") {
		t.Fatalf("errors = %v, want single title error", errs)
	}
}

func TestCheckSupplementDateOrdering(t *testing.T) {
	tests := []struct {
		name       string
		supplement string
		wantErrors int
	}{
		{"date inside window accepted", "10.04.2024", 0},
		{"same day as application accepted", "05.03.2024", 0},
		{"before application rejected", "01.02.2024", 1},
		{"after analysis rejected", "01.07.2024", 1},
		{"ordered sequence accepted", "10.04.2024, 20.05.2024", 0},
		{"unordered sequence rejected", "20.05.2024, 10.04.2024", 1},
		{"out of window and out of order", "10.04.2024, 01.01.2024", 2},
		{"malformed date skipped", "2024-04-10", 0},
		{"empty skipped", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := testsupport.ApplicationFixture(fields.FieldMap{
				"data_uzupelnienia_wniosku": tc.supplement,
			})
			errs := validation.Check(m, fields.DefaultRegistry())
			if len(errs) != tc.wantErrors {
				t.Fatalf("errors = %v, want %d", errs, tc.wantErrors)
			}
		})
	}
}

func TestCheckSkipsDateOrderingWhenApplicationDateMalformed(t *testing.T) {
	m := testsupport.ApplicationFixture(fields.FieldMap{
		"data_zlozenia_wniosku":     "marzec 2024",
		"data_uzupelnienia_wniosku": "01.01.2020",
	})
	errs := validation.Check(m, fields.DefaultRegistry())
	if len(errs) != 0 {
		t.Fatalf("errors = %v, malformed application date must disable ordering check", errs)
	}
}
