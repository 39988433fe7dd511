// Package httpapi exposes the comparison, generation and case-snapshot
// operations over HTTP.
package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/urzadlab/go-wzgen/pkg/casefile"
	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/municipality"
	"github.com/urzadlab/go-wzgen/pkg/orchestrator"
	"github.com/urzadlab/go-wzgen/pkg/validation"
)

// maxCaseFileSize bounds uploaded case snapshots.
const maxCaseFileSize = 2 << 20

// Handler bundles the HTTP endpoints and their collaborators.
type Handler struct {
	orchestrator   *orchestrator.Orchestrator
	fieldRegistry  *fields.Registry
	municipalities *municipality.Registry
	views          *Views
	sanitizer      *bluemonday.Policy
	clock          func() time.Time
}

// NewHandler wires a handler around an orchestrator and the two registries.
func NewHandler(orch *orchestrator.Orchestrator, fieldReg *fields.Registry, munReg *municipality.Registry) (*Handler, error) {
	views, err := NewViews()
	if err != nil {
		return nil, err
	}
	return &Handler{
		orchestrator:   orch,
		fieldRegistry:  fieldReg,
		municipalities: munReg,
		views:          views,
		sanitizer:      bluemonday.StrictPolicy(),
		clock:          time.Now,
	}, nil
}

// Register mounts all routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/", h.index)
	r.POST("/compare", h.compare)
	r.POST("/generate-docx", h.generate(orchestrator.DocumentAnalysis, orchestrator.FormatDOCX))
	r.POST("/generate-pdf", h.generate(orchestrator.DocumentAnalysis, orchestrator.FormatPDF))
	r.POST("/generate-decision-docx", h.generate(orchestrator.DocumentDecision, orchestrator.FormatDOCX))
	r.POST("/generate-decision-pdf", h.generate(orchestrator.DocumentDecision, orchestrator.FormatPDF))
	r.POST("/save-case", h.saveCase)
	r.POST("/load-case", h.loadCase)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) index(c *gin.Context) {
	page, err := h.views.Index(IndexData{
		Municipalities: h.municipalities.Names(),
		Fields:         h.fieldRegistry.Entries(),
		Titles:         fields.ApplicantTitles(),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "rendering failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// comparisonRow is one field of the comparison response, in display order.
type comparisonRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Left  string `json:"left"`
	Right string `json:"right"`
	Match bool   `json:"match"`
}

// collectCase reads both field maps from a posted form and forces the
// application-only keys of the findings side to mirror the application side.
func (h *Handler) collectCase(c *gin.Context) (wniosek, analiza fields.FieldMap) {
	wniosek = CollectFieldMap(c.Request.PostForm, "wniosek", h.fieldRegistry)
	analiza = CollectFieldMap(c.Request.PostForm, "analiza", h.fieldRegistry)
	fields.CopyApplicationOnly(wniosek, analiza)
	return wniosek, analiza
}

func (h *Handler) compare(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	wniosek, analiza := h.collectCase(c)
	result := fields.Compare(wniosek, analiza)

	rows := make([]comparisonRow, 0, len(result))
	for _, key := range fields.OrderedKeys(result, h.fieldRegistry) {
		cmp := result[key]
		label := h.fieldRegistry.Label(key)
		if label == "" {
			label = key
		}
		rows = append(rows, comparisonRow{
			Key:   key,
			Label: label,
			Left:  cmp.Left,
			Right: cmp.Right,
			Match: cmp.Match,
		})
	}
	// Validation problems ride along without blocking the comparison view.
	c.JSON(http.StatusOK, gin.H{
		"fields": rows,
		"errors": validation.Check(wniosek, h.fieldRegistry),
	})
}

func (h *Handler) generate(doc orchestrator.DocumentType, format orchestrator.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
			return
		}
		wniosek, analiza := h.collectCase(c)

		if errs := validation.Check(wniosek, h.fieldRegistry); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		result, err := h.orchestrator.Generate(c.Request.Context(), orchestrator.Request{
			Document:     doc,
			Format:       format,
			Municipality: c.PostForm("gmina"),
			CaseNumber:   c.PostForm("case_number"),
			Wniosek:      wniosek,
			Analiza:      analiza,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		c.Data(http.StatusOK, result.ContentType, result.Bytes)
	}
}

func (h *Handler) saveCase(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	wniosek, analiza := h.collectCase(c)
	snapshot := casefile.Case{
		Gmina:      c.PostForm("gmina"),
		CaseNumber: c.PostForm("case_number"),
		Wniosek:    wniosek,
		Analiza:    analiza,
		SavedAt:    h.clock(),
	}
	data, err := casefile.Encode(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := casefile.Filename("sprawa_", snapshot.CaseNumber, ".json", h.clock())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// loadCase accepts an uploaded snapshot and echoes it back as JSON with the
// values sanitised, ready to repopulate the form.
func (h *Handler) loadCase(c *gin.Context) {
	file, _, err := c.Request.FormFile("case_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brak pliku sprawy"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxCaseFileSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nie można odczytać pliku"})
		return
	}
	snapshot, err := casefile.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nieprawidłowy plik sprawy"})
		return
	}
	// Older snapshots may carry asymmetric maps; restore the copy invariant
	// and report validation problems without refusing the load.
	fields.CopyApplicationOnly(snapshot.Wniosek, snapshot.Analiza)
	c.JSON(http.StatusOK, gin.H{
		"gmina":       h.sanitizer.Sanitize(snapshot.Gmina),
		"case_number": h.sanitizer.Sanitize(snapshot.CaseNumber),
		"wniosek":     h.sanitizeMap(snapshot.Wniosek),
		"analiza":     h.sanitizeMap(snapshot.Analiza),
		"errors":      validation.Check(snapshot.Wniosek, h.fieldRegistry),
	})
}

func (h *Handler) sanitizeMap(m fields.FieldMap) fields.FieldMap {
	clean := make(fields.FieldMap, len(m))
	for k, v := range m {
		clean[k] = h.sanitizer.Sanitize(v)
	}
	return clean
}
