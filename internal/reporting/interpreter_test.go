package reporting

import (
	"strings"
	"testing"

	"github.com/spboyer/evalreport/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInterpretScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent high", 0.95, "Excellent (>90%)"},
		{"excellent boundary", 0.91, "Excellent (>90%)"},
		{"good high", 0.90, "Good (70-90%)"},
		{"good low", 0.70, "Good (70-90%)"},
		{"needs work high", 0.69, "Needs Work (50-70%)"},
		{"needs work low", 0.50, "Needs Work (50-70%)"},
		{"poor high", 0.49, "Poor (<50%)"},
		{"poor zero", 0.0, "Poor (<50%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretScore(tt.score)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretMetric(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		scale float64
		want  string
	}{
		{"full marks", 4, 4, "Excellent (>90%)"},
		{"three of four", 3, 4, "Good (70-90%)"},
		{"two of four", 2, 4, "Needs Work (50-70%)"},
		{"one of four", 1, 4, "Poor (<50%)"},
		{"ten point scale", 9.5, 10, "Excellent (>90%)"},
		{"above scale", 6, 4, "Excellent (>90%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretMetric(tt.value, tt.scale))
		})
	}
}

func TestInterpretPassRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"all passed", 100, "All tests passed (100%)"},
		{"most passed", 85, "Most tests passed (85%)"},
		{"about half", 60, "About half the tests passed (60%)"},
		{"few passed", 30, "Few tests passed (30%)"},
		{"none passed", 0, "Few tests passed (0%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretPassRate(tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSummaryReport(t *testing.T) {
	stats := models.AggregateStats{
		Total:          4,
		Passed:         3,
		Failed:         1,
		PassRate:       75,
		MetricAverages: map[string]float64{"clarity": 3.5, "tone": 1},
	}

	report := FormatSummaryReport(stats, 4)

	assert.Contains(t, report, "=== Interpretation ===")
	assert.Contains(t, report, "About half the tests passed (75%)")
	assert.Contains(t, report, "3 passed, 1 failed out of 4 total")
	assert.Contains(t, report, "scale 0-4")
	assert.Contains(t, report, "Clarity: 3.50")
	assert.Contains(t, report, "tone: 1.00", "unknown metrics use their key")
	assert.Less(t, strings.Index(report, "Clarity"), strings.Index(report, "tone"))
}

func TestFormatSummaryReport_Empty(t *testing.T) {
	report := FormatSummaryReport(models.AggregateStats{}, 0)
	assert.Contains(t, report, "No results were found")
	assert.NotContains(t, report, "Pass Rate")
}
