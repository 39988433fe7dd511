package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urzadlab/go-wzgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string          { return s.name }
func (s *stubRenderer) ContentType() string   { return "application/octet-stream" }
func (s *stubRenderer) FileExtension() string { return ".bin" }
func (s *stubRenderer) Render(ctx context.Context, events []render.Event) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	if err := reg.Register(&stubRenderer{name: "docx"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	r, err := reg.Get("docx")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Name() != "docx" {
		t.Errorf("name = %q", r.Name())
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Error("expected error for unknown renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(&stubRenderer{name: "docx"})
	if err := reg.Register(&stubRenderer{name: "docx"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryList(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(&stubRenderer{name: "pdf"})
	reg.MustRegister(&stubRenderer{name: "docx"})

	if diff := cmp.Diff([]string{"docx", "pdf"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("pdf") || reg.Has("html") {
		t.Error("Has answered incorrectly")
	}
}
