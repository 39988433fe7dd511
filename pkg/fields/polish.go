package fields

import "strings"

// titleGenitive maps the applicant title in the nominative case to its
// genitive form, as required by decision wording ("na wniosek Pana ...").
var titleGenitive = map[string]string{
	"Pan":     "Pana",
	"Pani":    "Pani",
	"Państwo": "Państwa",
	"Podmiot": "Podmiotu",
}

// ApplicantTitles lists the accepted applicant titles in form order.
func ApplicantTitles() []string {
	return []string{"Pan", "Pani", "Państwo", "Podmiot"}
}

// TitleGenitive converts an applicant title to the genitive case. Unrecognised
// titles pass through unchanged.
func TitleGenitive(title string) string {
	if title == "" {
		return ""
	}
	if genitive, ok := titleGenitive[title]; ok {
		return genitive
	}
	return title
}

// ApplicantGenitive rewrites a full nominative applicant designation
// ("Pan Jan Kowalski") into the genitive ("Pana Jan Kowalski") by swapping the
// leading title. Values without a recognised title are returned unchanged.
func ApplicantGenitive(nominative string) string {
	if nominative == "" {
		return ""
	}
	for title, genitive := range titleGenitive {
		if strings.HasPrefix(nominative, title+" ") {
			return genitive + strings.TrimPrefix(nominative, title)
		}
	}
	return nominative
}

// HasApplicantTitle reports whether value starts with one of the accepted
// applicant titles.
func HasApplicantTitle(value string) bool {
	for _, title := range ApplicantTitles() {
		if strings.HasPrefix(value, title) {
			return true
		}
	}
	return false
}
