// Package orchestrator wires field maps, municipality configuration,
// templates and renderers into a single document-generation entry point.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/urzadlab/go-wzgen/pkg/casefile"
	"github.com/urzadlab/go-wzgen/pkg/convert"
	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/municipality"
	"github.com/urzadlab/go-wzgen/pkg/render"
	"github.com/urzadlab/go-wzgen/pkg/renderers/docx"
	"github.com/urzadlab/go-wzgen/pkg/renderers/pdf"
	"github.com/urzadlab/go-wzgen/pkg/template"
)

// DocumentType selects which document family to generate.
type DocumentType string

const (
	DocumentAnalysis DocumentType = "analysis"
	DocumentDecision DocumentType = "decision"
)

// Format selects the output format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Request describes one generation run.
type Request struct {
	Document     DocumentType
	Format       Format
	Municipality string
	CaseNumber   string
	Wniosek      fields.FieldMap
	Analiza      fields.FieldMap
}

// Result carries the generated document and everything a transport layer
// needs to serve it.
type Result struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Orchestrator coordinates a generation run end to end.
type Orchestrator struct {
	municipalities *municipality.Registry
	fieldRegistry  *fields.Registry
	renderers      *render.Registry
	templateDir    string
	converter      convert.Converter
	clock          func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMunicipalities replaces the default municipality registry.
func WithMunicipalities(reg *municipality.Registry) Option {
	return func(o *Orchestrator) { o.municipalities = reg }
}

// WithFieldRegistry replaces the default field registry.
func WithFieldRegistry(reg *fields.Registry) Option {
	return func(o *Orchestrator) { o.fieldRegistry = reg }
}

// WithRenderRegistry replaces the default renderer registry.
func WithRenderRegistry(reg *render.Registry) Option {
	return func(o *Orchestrator) { o.renderers = reg }
}

// WithTemplateDir points the orchestrator at the directory holding the XML
// templates.
func WithTemplateDir(dir string) Option {
	return func(o *Orchestrator) { o.templateDir = dir }
}

// WithConverter installs an external DOCX-to-PDF converter. Without one,
// PDF output always uses the in-process renderer.
func WithConverter(c convert.Converter) Option {
	return func(o *Orchestrator) { o.converter = c }
}

// WithClock overrides the time source; tests pin it.
func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) { o.clock = clock }
}

// New creates an Orchestrator, applies the provided options and fills the
// remaining fields with defaults.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.municipalities == nil {
		o.municipalities = municipality.Default()
	}
	if o.fieldRegistry == nil {
		o.fieldRegistry = fields.DefaultRegistry()
	}
	if o.renderers == nil {
		reg := render.NewRegistry()
		reg.MustRegister(docx.New())
		reg.MustRegister(pdf.New())
		o.renderers = reg
	}
	if o.templateDir == "" {
		o.templateDir = filepath.Join("config", "templates")
	}
	if o.clock == nil {
		o.clock = time.Now
	}
}

// Generate runs one document generation: resolve the municipality, load the
// template, build the substitution context, walk the tree and render.
// A missing decision template is an error; a missing analysis template falls
// back to the tabular rendering.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Document != DocumentAnalysis && req.Document != DocumentDecision {
		return nil, fmt.Errorf("orchestrator: unknown document type %q", req.Document)
	}
	if req.Format != FormatDOCX && req.Format != FormatPDF {
		return nil, fmt.Errorf("orchestrator: unknown format %q", req.Format)
	}

	rec, err := o.municipalities.Resolve(req.Municipality)
	if err != nil {
		return nil, err
	}

	events, err := o.buildEvents(req, rec)
	if err != nil {
		return nil, err
	}

	var (
		payload []byte
		ext     string
		cType   string
	)
	switch req.Format {
	case FormatDOCX:
		payload, ext, cType, err = o.renderWith(ctx, "docx", events)
	case FormatPDF:
		payload, ext, cType, err = o.renderPDF(ctx, events)
	}
	if err != nil {
		return nil, err
	}

	prefix := casefile.AnalysisPrefix
	if req.Document == DocumentDecision {
		prefix = casefile.DecisionPrefix
	}
	return &Result{
		Bytes:       payload,
		Filename:    casefile.Filename(prefix, req.CaseNumber, ext, o.clock()),
		ContentType: cType,
	}, nil
}

// buildEvents loads the template and walks it, or produces the tabular
// fallback for an analysis whose template file is missing.
func (o *Orchestrator) buildEvents(req Request, rec municipality.Record) ([]render.Event, error) {
	name := rec.Templates.Analysis
	if req.Document == DocumentDecision {
		name = rec.Templates.Decision
	}
	doc, err := template.Load(filepath.Join(o.templateDir, name))
	if err != nil {
		var notFound *template.NotFoundError
		if errors.As(err, &notFound) && req.Document == DocumentAnalysis {
			return render.Tabular(o.fieldRegistry, req.Analiza, render.FallbackInput{
				Municipality: rec.Name,
				Header:       rec.Header,
				Intro:        rec.Intro,
				Footer:       rec.Footer,
				Now:          o.clock(),
			}), nil
		}
		return nil, err
	}

	meta := fields.Meta{
		Municipality: rec.Name,
		CaseNumber:   req.CaseNumber,
		Now:          o.clock(),
	}
	sctx := fields.BuildContext(req.Wniosek, req.Analiza, meta)
	if req.Document == DocumentDecision {
		sctx = fields.BuildDecisionContext(req.Wniosek, req.Analiza, meta)
	}
	return render.Walk(doc, sctx), nil
}

func (o *Orchestrator) renderWith(ctx context.Context, name string, events []render.Event) ([]byte, string, string, error) {
	r, err := o.renderers.Get(name)
	if err != nil {
		return nil, "", "", err
	}
	payload, err := r.Render(ctx, events)
	if err != nil {
		return nil, "", "", err
	}
	return payload, r.FileExtension(), r.ContentType(), nil
}

// renderPDF prefers the external converter for fidelity with the DOCX
// output and falls back to the in-process PDF renderer when conversion
// fails or no converter is configured.
func (o *Orchestrator) renderPDF(ctx context.Context, events []render.Event) ([]byte, string, string, error) {
	if o.converter != nil {
		source, _, _, err := o.renderWith(ctx, "docx", events)
		if err == nil {
			if pdfBytes, convErr := o.converter.Convert(ctx, source); convErr == nil {
				return pdfBytes, ".pdf", "application/pdf", nil
			}
		}
	}
	return o.renderWith(ctx, "pdf", events)
}
