package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/evalreport/internal/models"
)

// InterpretScore returns a plain-language label for a normalized score (0–1).
func InterpretScore(score float64) string {
	pct := score * 100
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretMetric labels a metric average measured on the given scale.
func InterpretMetric(value, scale float64) string {
	return InterpretScore(MetricFill(value, scale) / 100)
}

// InterpretPassRate returns a human-readable explanation of a pass rate
// given as a percentage (0–100).
func InterpretPassRate(pct float64) string {
	switch {
	case pct >= 100:
		return fmt.Sprintf("All tests passed (%.0f%%)", pct)
	case pct >= 80:
		return fmt.Sprintf("Most tests passed (%.0f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("About half the tests passed (%.0f%%)", pct)
	default:
		return fmt.Sprintf("Few tests passed (%.0f%%)", pct)
	}
}

// FormatSummaryReport produces a plain-language interpretation of the
// aggregated statistics.
func FormatSummaryReport(stats models.AggregateStats, scale float64) string {
	if scale <= 0 {
		scale = DefaultScoreScale
	}

	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")

	if stats.Total == 0 {
		b.WriteString("No results were found in the input file.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Pass Rate:     %s\n", InterpretPassRate(stats.PassRate)))
	b.WriteString(fmt.Sprintf("Tests:         %d passed, %d failed out of %d total\n",
		stats.Passed, stats.Failed, stats.Total))

	if len(stats.MetricAverages) > 0 {
		b.WriteString(fmt.Sprintf("\nPer-Metric Interpretation (scale 0-%g):\n", scale))
		for _, name := range stats.MetricNames() {
			label := name
			if def, ok := LookupMetric(name); ok {
				label = def.Label
			}
			avg := stats.MetricAverages[name]
			b.WriteString(fmt.Sprintf("  %s: %.2f — %s\n", label, avg, InterpretMetric(avg, scale)))
		}
	}

	return b.String()
}
