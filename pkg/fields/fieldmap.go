package fields

import "strings"

// FieldMap is a flat, string-to-string mapping of form-entered field values.
// Two named instances exist per case: wniosek (the application facts) and
// analiza (the analyst findings).
type FieldMap map[string]string

// Get returns the trimmed value for key, or "" when the key is absent.
func (m FieldMap) Get(key string) string {
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[key])
}

// Clone returns a shallow copy so callers can mutate without aliasing.
func (m FieldMap) Clone() FieldMap {
	if m == nil {
		return FieldMap{}
	}
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ApplicationOnlyPrefix marks application-only values when they are carried
// into a substitution context alongside analyst findings.
const ApplicationOnlyPrefix = "wniosek_"

// applicationOnly lists the keys whose values are entered once on the
// application side and mechanically copied into the findings map, never
// independently filled by the analyst.
var applicationOnly = []string{
	"wnioskodawca_mianownik",
	"wnioskodawca_dopelniacz",
	"wnioskodawca_adres",
	"gmina",
	"obreb",
	"dzialki",
	"teren_obejmuje",
	"data_wykonania_analizy",
	"data_zlozenia_wniosku",
	"data_uzupelnienia_wniosku",
	"rodzaj_inwestycji",
	"opis_inwestycji",
	"linia_zabudowy",
	"szerokosc_elewacji_frontowej",
	"wysokosc_zabudowy",
	"liczba_kondygnacji",
	"kat_nachylenia_dachu",
	"powierzchnia_zabudowy",
	"powierzchnia_biologicznie_czynna",
	"intensywnosc_zabudowy",
	"miejsca_parkingowe",
	"dostep_droga_publiczna",
	"woda",
	"scieki",
	"odwodnienie",
	"energia_elektr",
	"gaz",
	"ogrzewanie",
	"odpady",
	"uwagi",
	"data",
	"podpis",
	"rodzaj_zabudowy",
}

var applicationOnlySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(applicationOnly))
	for _, key := range applicationOnly {
		set[key] = struct{}{}
	}
	return set
}()

// ApplicationOnlyKeys returns the keys sourced solely from the application
// map. The slice is a copy; callers may reorder it freely.
func ApplicationOnlyKeys() []string {
	out := make([]string, len(applicationOnly))
	copy(out, applicationOnly)
	return out
}

// IsApplicationOnly reports whether key is filled on the application side
// only.
func IsApplicationOnly(key string) bool {
	_, ok := applicationOnlySet[key]
	return ok
}

// CopyApplicationOnly forces the findings map to mirror the application map
// on every application-only key: present values are copied over, absent ones
// removed. After the call analiza[k] == wniosek[k] holds for each such key.
func CopyApplicationOnly(wniosek, analiza FieldMap) {
	if analiza == nil {
		return
	}
	for _, key := range applicationOnly {
		if v, ok := wniosek[key]; ok {
			analiza[key] = v
		} else {
			delete(analiza, key)
		}
	}
}

// LongTextKeys returns the narrative keys rendered as free paragraphs by the
// tabular fallback.
func LongTextKeys() []string {
	return []string{"wyniki_analizy", "uzasadnienie", "podstawy_prawne"}
}

// RequiredKeys returns the keys a case cannot be generated without.
func RequiredKeys() []string {
	return []string{
		"wnioskodawca_mianownik",
		"wnioskodawca_dopelniacz",
		"wnioskodawca_adres",
		"gmina",
		"obreb",
		"dzialki",
		"data_wykonania_analizy",
		"data_zlozenia_wniosku",
	}
}
