package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spboyer/evalreport/internal/models"
	"github.com/spboyer/evalreport/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEvents() []pipeline.Event {
	var events []pipeline.Event
	for _, s := range []pipeline.Stage{pipeline.StageLoad, pipeline.StageAggregate, pipeline.StageRender, pipeline.StageWrite} {
		events = append(events, pipeline.Event{Stage: s}, pipeline.Event{Stage: s, Done: true})
	}
	return events
}

func TestProgressPrinter_Fancy(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressPrinter(&buf, true)
	p.header()
	progress := p.stage("out/report.html")
	for _, e := range allEvents() {
		progress(e)
	}

	want := "📊 Report Generator - Creating HTML Report\n\n" +
		"📖 Loading evaluation results...\n" +
		"✅ Results loaded\n\n" +
		"📈 Calculating statistics...\n" +
		"✅ Statistics calculated\n\n" +
		"🎨 Generating HTML report...\n" +
		"✅ Report saved to: out/report.html\n\n"
	assert.Equal(t, want, buf.String())
}

func TestProgressPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressPrinter(&buf, false)
	progress := p.stage("report.html")
	for _, e := range allEvents() {
		progress(e)
	}

	out := buf.String()
	assert.Contains(t, out, "Loading evaluation results...\n")
	assert.Contains(t, out, "Report saved to: report.html\n")
	for _, icon := range []string{"📖", "✅", "📈", "🎨"} {
		assert.NotContains(t, out, icon)
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestPrintSummary(t *testing.T) {
	stats := models.AggregateStats{
		Total:          1234,
		Passed:         1000,
		Failed:         234,
		PassRate:       81.0372771474878,
		MetricAverages: map[string]float64{"clarity": 3.5, "zeta": 1},
		Metrics: map[string]models.MetricStats{
			"clarity": {Count: 1234, Mean: 3.5, Min: 1, Max: 4, StdDev: 0.5},
			"zeta":    {Count: 2, Mean: 1, Min: 1, Max: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, false, stats, 4))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Summary:\n"), out)
	assert.Contains(t, out, "   Total Tests: 1,234\n")
	assert.Contains(t, out, "   Passed:      1,000\n")
	assert.Contains(t, out, "   Failed:      234\n")
	assert.Contains(t, out, "   Pass Rate:   81.0%\n")

	// Known metrics use their display label, unknown ones their key.
	assert.Contains(t, out, "Clarity")
	assert.Contains(t, out, "zeta")
	assert.Contains(t, out, "3.50")
	assert.Contains(t, out, "Good (70-90%)")
	assert.Less(t, strings.Index(out, "Clarity"), strings.Index(out, "zeta"))
}

func TestPrintSummary_NoMetrics(t *testing.T) {
	stats := models.AggregateStats{
		MetricAverages: map[string]float64{},
		Metrics:        map[string]models.MetricStats{},
	}

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, true, stats, 4))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "📊 Summary:\n"), out)
	assert.Contains(t, out, "Pass Rate:   0.0%")
	assert.NotContains(t, out, "Metric")
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"ascii", "abc", 5, "abc  "},
		{"already wide", "abcdef", 3, "abcdef"},
		{"wide runes", "日本", 6, "日本  "},
		{"emoji", "✅", 4, "✅  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, padRight(tt.in, tt.width))
		})
	}
}
