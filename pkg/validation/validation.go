// Package validation checks field maps before document generation and
// reports every problem at once, with messages written for the clerk filling
// in the form.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

const dateLayout = "02.01.2006"

// Errors collects human-readable validation messages.
type Errors []string

// Error joins all messages; Errors satisfies the error interface so a
// non-empty list can be returned directly.
func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// Check validates an application field map against the registry. It returns
// every failed check rather than stopping at the first one; an empty result
// means the map is acceptable.
func Check(m fields.FieldMap, reg *fields.Registry) Errors {
	var errs Errors
	for _, key := range fields.RequiredKeys() {
		if m.Get(key) != "" {
			continue
		}
		label := reg.Label(key)
		if label == "" {
			label = key
		}
		errs = append(errs, fmt.Sprintf("Pole '%s' jest wymagane", label))
	}
	if applicant := m.Get("wnioskodawca_mianownik"); applicant != "" && !fields.HasApplicantTitle(applicant) {
		errs = append(errs, fmt.Sprintf(
			"Pole 'Wnioskodawca' musi zaczynać się od tytułu (%s)",
			strings.Join(fields.ApplicantTitles(), ", ")))
	}
	errs = append(errs, checkDates(m)...)
	return errs
}

// checkDates verifies the case chronology: the application precedes the
// analysis, every supplement falls between the two, and supplements do not
// go backwards. The supplement field may carry several dates separated by
// ", ". Values that do not parse as DD.MM.YYYY silently disable only the
// checks that need them; format problems are not this check's concern.
func checkDates(m fields.FieldMap) Errors {
	var errs Errors

	applied, appliedOK := parseDate(m.Get("data_zlozenia_wniosku"))
	analysed, analysedOK := parseDate(m.Get("data_wykonania_analizy"))

	if appliedOK && analysedOK && analysed.Before(applied) {
		errs = append(errs, fmt.Sprintf(
			"Data wykonania analizy (%s) nie może być wcześniejsza niż data złożenia wniosku (%s)",
			m.Get("data_wykonania_analizy"), m.Get("data_zlozenia_wniosku")))
	}

	var previous time.Time
	var havePrevious bool
	for _, raw := range strings.Split(m.Get("data_uzupelnienia_wniosku"), ", ") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		supplement, ok := parseDate(raw)
		if !ok {
			continue
		}
		if appliedOK && supplement.Before(applied) {
			errs = append(errs, fmt.Sprintf(
				"Data uzupełnienia (%s) nie może być wcześniejsza niż data złożenia wniosku (%s)",
				raw, m.Get("data_zlozenia_wniosku")))
		}
		if analysedOK && supplement.After(analysed) {
			errs = append(errs, fmt.Sprintf(
				"Data uzupełnienia (%s) nie może być późniejsza niż data wykonania analizy (%s)",
				raw, m.Get("data_wykonania_analizy")))
		}
		if havePrevious && supplement.Before(previous) {
			errs = append(errs, fmt.Sprintf(
				"Daty uzupełnień muszą być podane w kolejności chronologicznej (%s)", raw))
		}
		previous = supplement
		havePrevious = true
	}
	return errs
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
