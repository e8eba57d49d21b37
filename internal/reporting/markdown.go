package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	notesMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	notesPolicy   = bluemonday.UGCPolicy()
)

// RenderNotes converts markdown notes into sanitized HTML. Empty input
// yields empty output.
func RenderNotes(md string) (template.HTML, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}

	// goldmark already drops raw HTML; the policy also strips unsafe
	// attributes such as javascript: links.
	return template.HTML(notesPolicy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec
}
