// Package fonts fetches the DejaVu Sans faces used for PDF output with
// Polish diacritics.
package fonts

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// baseURL pins the DejaVu release tag so the fetched faces are reproducible.
const baseURL = "https://github.com/dejavu-fonts/dejavu-fonts/raw/version_2_37/ttf"

var faces = []string{"DejaVuSans.ttf", "DejaVuSans-Bold.ttf"}

// Ensure downloads the DejaVu faces into dir unless they are already there.
// A failed download is reported but not fatal; the PDF renderer falls back
// to its core fonts when the files are missing.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fonts: create dir: %w", err)
	}
	client := &http.Client{Timeout: 30 * time.Second}
	for _, face := range faces {
		path := filepath.Join(dir, face)
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			continue
		}
		if err := download(client, baseURL+"/"+face, path); err != nil {
			return fmt.Errorf("fonts: fetch %s: %w", face, err)
		}
	}
	return nil
}

func download(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
