package fields

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry pairs a field key with its human-readable label.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Registry is the ordered field-label registry. It defines the set of valid
// field keys, the label shown for each, and the enumeration order used by the
// tabular fallback and the comparison view.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a registry from entries, skipping blanks and duplicates
// while preserving first-seen order.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		key := strings.TrimSpace(entry.Key)
		if key == "" {
			continue
		}
		if _, exists := r.index[key]; exists {
			continue
		}
		r.index[key] = len(r.entries)
		r.entries = append(r.entries, Entry{Key: key, Label: strings.TrimSpace(entry.Label)})
	}
	return r
}

// LoadRegistry reads an ordered YAML list of {key, label} entries.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fields: read registry: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("fields: parse registry %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("fields: registry %s defines no fields", path)
	}
	return NewRegistry(entries), nil
}

// Keys returns the field keys in registry order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.Key
	}
	return out
}

// Entries returns a copy of the ordered entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Label returns the human label for key, falling back to the key itself so a
// missing registry row never blanks a display.
func (r *Registry) Label(key string) string {
	if i, ok := r.index[key]; ok && r.entries[i].Label != "" {
		return r.entries[i].Label
	}
	return key
}

// Has reports whether key belongs to the registry.
func (r *Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Position returns the enumeration position of key, or -1 when absent.
func (r *Registry) Position(key string) int {
	if i, ok := r.index[key]; ok {
		return i
	}
	return -1
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.entries)
}

// DefaultRegistry returns the built-in field set used when no registry file
// is deployed alongside the binary.
func DefaultRegistry() *Registry {
	return NewRegistry([]Entry{
		{Key: "wnioskodawca_mianownik", Label: "Wnioskodawca - Mianownik"},
		{Key: "wnioskodawca_dopelniacz", Label: "Wnioskodawca - Dopełniacz"},
		{Key: "wnioskodawca_adres", Label: "Adres wnioskodawcy"},
		{Key: "gmina", Label: "Gmina"},
		{Key: "obreb", Label: "Obręb"},
		{Key: "dzialki", Label: "Numery działek"},
		{Key: "teren_obejmuje", Label: "Teren obejmuje"},
		{Key: "data_wykonania_analizy", Label: "Data wykonania analizy"},
		{Key: "data_zlozenia_wniosku", Label: "Data złożenia wniosku"},
		{Key: "data_uzupelnienia_wniosku", Label: "Data uzupełnienia wniosku"},
		{Key: "rodzaj_inwestycji", Label: "Rodzaj inwestycji"},
		{Key: "opis_inwestycji", Label: "Opis inwestycji"},
		{Key: "rodzaj_zabudowy", Label: "Rodzaj zabudowy"},
		{Key: "linia_zabudowy", Label: "Linia zabudowy"},
		{Key: "szerokosc_elewacji_frontowej", Label: "Szerokość elewacji frontowej"},
		{Key: "wysokosc_zabudowy", Label: "Wysokość zabudowy"},
		{Key: "liczba_kondygnacji", Label: "Liczba kondygnacji"},
		{Key: "kat_nachylenia_dachu", Label: "Kąt nachylenia dachu"},
		{Key: "powierzchnia_zabudowy", Label: "Powierzchnia zabudowy"},
		{Key: "powierzchnia_biologicznie_czynna", Label: "Powierzchnia biologicznie czynna"},
		{Key: "intensywnosc_zabudowy", Label: "Intensywność zabudowy"},
		{Key: "miejsca_parkingowe", Label: "Miejsca parkingowe"},
		{Key: "dostep_droga_publiczna", Label: "Dostęp do drogi publicznej"},
		{Key: "woda", Label: "Zaopatrzenie w wodę"},
		{Key: "scieki", Label: "Odprowadzanie ścieków"},
		{Key: "odwodnienie", Label: "Odwodnienie"},
		{Key: "energia_elektr", Label: "Energia elektryczna"},
		{Key: "gaz", Label: "Gaz"},
		{Key: "ogrzewanie", Label: "Ogrzewanie"},
		{Key: "odpady", Label: "Gospodarka odpadami"},
		{Key: "uwagi", Label: "Uwagi"},
		{Key: "data", Label: "Data"},
		{Key: "podpis", Label: "Podpis"},
		{Key: "wyniki_analizy", Label: "Wyniki analizy (tekst)"},
		{Key: "uzasadnienie", Label: "Uzasadnienie (tekst)"},
		{Key: "podstawy_prawne", Label: "Podstawy prawne (tekst)"},
	})
}
