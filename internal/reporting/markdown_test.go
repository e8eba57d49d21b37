package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotes(t *testing.T) {
	tests := []struct {
		name        string
		md          string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis and lists",
			md:       "Evaluated with **GPT-4**\n\n- visa\n- residency",
			contains: []string{"<strong>GPT-4</strong>", "<li>visa</li>"},
		},
		{
			name:        "raw html dropped",
			md:          "hello <script>alert(1)</script>",
			contains:    []string{"hello"},
			notContains: []string{"<script>", "alert(1)</script>"},
		},
		{
			name:     "table extension",
			md:       "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderNotes(tt.md)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(got), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, string(got), s)
			}
		})
	}
}

func TestRenderNotes_Empty(t *testing.T) {
	got, err := RenderNotes("  \n")
	require.NoError(t, err)
	assert.Empty(t, got)
}
