package fields_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urzadlab/go-wzgen/pkg/fields"
)

func TestNewRegistrySkipsBlanksAndDuplicates(t *testing.T) {
	reg := fields.NewRegistry([]fields.Entry{
		{Key: "dzialki", Label: "Numery działek"},
		{Key: "", Label: "bez klucza"},
		{Key: "dzialki", Label: "duplikat"},
		{Key: "obreb", Label: "Obręb"},
	})

	want := []string{"dzialki", "obreb"}
	if diff := cmp.Diff(want, reg.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Label("dzialki"); got != "Numery działek" {
		t.Errorf("first entry should win, got label %q", got)
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	source := "- key: dzialki\n  label: Numery działek\n- key: obreb\n  label: Obręb\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	reg, err := fields.LoadRegistry(path)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("len = %d, want 2", reg.Len())
	}
	if pos := reg.Position("obreb"); pos != 1 {
		t.Errorf("position(obreb) = %d, want 1", pos)
	}
	if reg.Has("woda") {
		t.Error("unexpected key woda")
	}
}

func TestDefaultRegistryCoversRequiredKeys(t *testing.T) {
	reg := fields.DefaultRegistry()
	for _, key := range fields.RequiredKeys() {
		if !reg.Has(key) {
			t.Errorf("required key %q missing from default registry", key)
		}
	}
}
