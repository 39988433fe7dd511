package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

// maxRepeatedFields bounds the scan over numbered form inputs when no count
// field accompanies them.
const maxRepeatedFields = 50

// CollectFieldMap extracts one side's field map from a posted form. Inputs
// are named "<side>_<key>"; the repeated plot and supplement-date inputs are
// merged into their single canonical keys and the applicant title radio is
// folded into the name fields.
func CollectFieldMap(form url.Values, side string, reg *fields.Registry) fields.FieldMap {
	m := fields.FieldMap{}
	prefix := side + "_"
	for _, key := range reg.Keys() {
		if value := strings.TrimSpace(form.Get(prefix + key)); value != "" {
			m[key] = value
		}
	}
	mergePlots(form, prefix, m)
	mergeSupplementDates(form, prefix, m)
	applyApplicantTitle(form, prefix, m)
	return m
}

// mergePlots joins the numbered plot inputs into the dzialki key when the
// multiple-plots checkbox is set; otherwise the single input already
// collected stands.
func mergePlots(form url.Values, prefix string, m fields.FieldMap) {
	if !checkboxSet(form.Get(prefix + "dzialki_multiple")) {
		return
	}
	count := repeatCount(form.Get(prefix + "dzialki_count"))
	var plots []string
	for i := 1; i <= count; i++ {
		plot := strings.TrimSpace(form.Get(fmt.Sprintf("%sdzialki_%d", prefix, i)))
		if plot != "" {
			plots = append(plots, plot)
		}
	}
	if len(plots) > 0 {
		m["dzialki"] = strings.Join(plots, ", ")
	}
}

// mergeSupplementDates joins the numbered supplement-date inputs with ", ",
// the separator the date-ordering validation splits on.
func mergeSupplementDates(form url.Values, prefix string, m fields.FieldMap) {
	var dates []string
	for i := 1; i <= maxRepeatedFields; i++ {
		name := fmt.Sprintf("%sdata_uzupelnienia_wniosku_%d", prefix, i)
		if !form.Has(name) {
			break
		}
		if date := strings.TrimSpace(form.Get(name)); date != "" {
			dates = append(dates, date)
		}
	}
	if len(dates) > 0 {
		m["data_uzupelnienia_wniosku"] = strings.Join(dates, ", ")
	}
}

// applyApplicantTitle folds the title radio into the applicant name fields:
// the nominative gets the selected title prefixed when it lacks one, and the
// genitive is derived from the nominative when left blank.
func applyApplicantTitle(form url.Values, prefix string, m fields.FieldMap) {
	title := strings.TrimSpace(form.Get(prefix + "tytul"))
	name := m.Get("wnioskodawca_mianownik")
	if title != "" && name != "" && !fields.HasApplicantTitle(name) {
		name = title + " " + name
		m["wnioskodawca_mianownik"] = name
	}
	if name != "" && m.Get("wnioskodawca_dopelniacz") == "" {
		m["wnioskodawca_dopelniacz"] = fields.ApplicantGenitive(name)
	}
}

func checkboxSet(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "tak":
		return true
	}
	return false
}

func repeatCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return maxRepeatedFields
	}
	if n > maxRepeatedFields {
		return maxRepeatedFields
	}
	return n
}
