// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/screening-engine/internal/types"
)

const bytesPerMB = 1024 * 1024

func validateFileUpload(q *types.Question, ans types.Answer) *types.ValidationError {
	files, ok := ans.(types.FilesAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	cfg := q.Config.Files

	for _, f := range files.Files {
		if f.URL == "" || f.Filename == "" {
			return fail(q, "Each file needs an upload URL and filename")
		}

		if cfg != nil && cfg.MaxSize != nil && f.Size > *cfg.MaxSize {
			mb := float64(*cfg.MaxSize) / bytesPerMB
			return fail(q, fmt.Sprintf("File %s exceeds the maximum size of %s MB", f.Filename, formatNumber(mb)))
		}

		if cfg != nil && len(cfg.AllowedTypes) > 0 {
			ext := normalizeExtension(filepath.Ext(f.Filename))
			if !extensionAllowed(ext, cfg.AllowedTypes) {
				return fail(q, fmt.Sprintf("File type %q is not allowed", ext))
			}
		}
	}

	if cfg != nil && cfg.MaxFiles != nil && len(files.Files) > *cfg.MaxFiles {
		return fail(q, fmt.Sprintf("At most %d files allowed", *cfg.MaxFiles))
	}

	return nil
}

// normalizeExtension lowercases an extension and strips the leading dot.
func normalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(ext), ".")
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if normalizeExtension(a) == ext {
			return true
		}
	}
	return false
}
