// Package writer persists rendered reports to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/spboyer/evalreport/internal/models"
)

// GzipSuffix is appended to the report path for the compressed copy.
const GzipSuffix = ".gz"

// Options controls optional outputs.
type Options struct {
	// Gzip also writes a gzip-compressed copy next to the report.
	Gzip bool
}

// FileWriter writes reports with fixed Options.
type FileWriter struct {
	Options Options
}

// Write implements the pipeline writer stage.
func (w FileWriter) Write(path string, report *models.Report) error {
	return WriteReport(path, report, w.Options)
}

// WriteReport creates the parent directory of path if needed and writes the
// report HTML, overwriting any existing file.
func WriteReport(path string, report *models.Report, opts Options) error {
	if report == nil {
		return fmt.Errorf("writing %s: no report", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(report.HTML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if opts.Gzip {
		if err := writeGzip(path+GzipSuffix, report); err != nil {
			return err
		}
	}
	return nil
}

func writeGzip(path string, report *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("creating gzip writer: %w", err)
	}
	zw.Name = filepath.Base(path[:len(path)-len(GzipSuffix)])
	zw.ModTime = report.GeneratedAt

	if _, err := zw.Write([]byte(report.HTML)); err != nil {
		return fmt.Errorf("compressing report: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing report: %w", err)
	}
	return f.Close()
}
