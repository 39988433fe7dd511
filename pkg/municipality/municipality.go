// Package municipality holds the per-municipality configuration: template
// file names plus the narrative blocks used by the tabular fallback.
package municipality

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Templates names the analysis and decision template files for a
// municipality, relative to the template directory.
type Templates struct {
	Analysis string `json:"analysis"`
	Decision string `json:"decision"`
}

// Record is one municipality's configuration.
type Record struct {
	Name      string    `json:"name"`
	Templates Templates `json:"templates"`
	Header    string    `json:"header"`
	Intro     string    `json:"intro"`
	Footer    string    `json:"footer"`
}

// Registry maps normalised municipality keys to their records.
type Registry struct {
	records map[string]Record
}

const defaultKey = "konopnica"

// Default returns a registry seeded with the Konopnica configuration.
func Default() *Registry {
	return &Registry{records: map[string]Record{
		defaultKey: {
			Name: "Konopnica",
			Templates: Templates{
				Analysis: "konopnica_analysis.xml",
				Decision: "konopnica_decision.xml",
			},
			Header: "ANALIZA URBANISTYCZNA",
			Intro: "Analiza funkcji oraz cech zabudowy i zagospodarowania terenu " +
				"sporządzona na potrzeby postępowania o ustalenie warunków zabudowy.",
			Footer: "Dokument wygenerowany w systemie obsługi warunków zabudowy Gminy Konopnica.",
		},
	}}
}

// Load reads a registry from a JSON file keyed by municipality identifier.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("municipality: read %s: %w", path, err)
	}
	records := map[string]Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("municipality: parse %s: %w", path, err)
	}
	normalised := make(map[string]Record, len(records))
	for key, rec := range records {
		normalised[Normalize(key)] = rec
	}
	return &Registry{records: normalised}, nil
}

// Normalize maps free-form municipality names onto registry keys: lower
// case, a leading "gmina " stripped, spaces turned into underscores.
func Normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "gmina ")
	return strings.ReplaceAll(key, " ", "_")
}

// Resolve returns the record for name. Unknown names fall back to the
// Konopnica record when present, then to the first record in key order.
func (r *Registry) Resolve(name string) (Record, error) {
	if rec, ok := r.records[Normalize(name)]; ok {
		return rec, nil
	}
	if rec, ok := r.records[defaultKey]; ok {
		return rec, nil
	}
	keys := r.Keys()
	if len(keys) == 0 {
		return Record{}, fmt.Errorf("municipality: registry is empty")
	}
	return r.records[keys[0]], nil
}

// Keys lists the registry keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.records))
	for key := range r.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Names lists municipality display names in key order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.records))
	for _, key := range r.Keys() {
		names = append(names, r.records[key].Name)
	}
	return names
}
