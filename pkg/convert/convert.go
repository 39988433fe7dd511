// Package convert turns rendered DOCX bytes into PDF bytes using an
// external converter.
package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Converter produces a PDF from a DOCX document.
type Converter interface {
	Convert(ctx context.Context, docx []byte) ([]byte, error)
}

// LibreOffice shells out to a headless soffice process. The conversion runs
// in a temporary directory which is removed afterwards.
type LibreOffice struct {
	// Binary is the soffice executable; empty means "soffice" on PATH.
	Binary string
	// Timeout bounds a single conversion. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds a LibreOffice conversion when none is configured.
const DefaultTimeout = 60 * time.Second

// Convert writes the DOCX to a scratch file, runs soffice --convert-to pdf
// and reads the result back.
func (l *LibreOffice) Convert(ctx context.Context, docx []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "wzgen-convert-*")
	if err != nil {
		return nil, fmt.Errorf("convert: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "document.docx")
	if err := os.WriteFile(src, docx, 0o600); err != nil {
		return nil, fmt.Errorf("convert: write source: %w", err)
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := l.Binary
	if binary == "" {
		binary = "soffice"
	}
	cmd := exec.CommandContext(ctx, binary,
		"--headless", "--convert-to", "pdf", "--outdir", dir, src)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("convert: soffice: %w: %s", err, out)
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "document.pdf"))
	if err != nil {
		return nil, fmt.Errorf("convert: read result: %w", err)
	}
	return pdf, nil
}
