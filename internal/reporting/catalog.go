package reporting

import "math"

// Rendering defaults.
const (
	// DefaultScoreScale is the nominal maximum of a metric score. Metric bars
	// are filled in proportion to value/scale.
	DefaultScoreScale = 4.0

	DefaultLanguage = "en"
	DefaultTitle    = "U-Ask AI Response Validation"
	DefaultSubtitle = "PromptFoo Evaluation Report with GPT-4"
	DefaultFooter   = "U-Ask Chatbot AI Validation Report"

	// NotApplicable is displayed for missing or non-numeric scores.
	NotApplicable = "N/A"
)

// MetricDefinition describes a metric the report knows how to display.
type MetricDefinition struct {
	Key   string
	Label string
	Icon  string
}

// KnownMetrics is the ordered set of metrics shown in the metrics grid.
// Metrics outside this list are aggregated but not displayed in the grid.
var KnownMetrics = []MetricDefinition{
	{Key: "clarity", Label: "Clarity", Icon: "✨"},
	{Key: "hallucination", Label: "Hallucination", Icon: "🚨"},
	{Key: "formatting", Label: "Formatting", Icon: "📝"},
	{Key: "fallback", Label: "Fallback", Icon: "🛡️"},
	{Key: "bilingual", Label: "Bilingual", Icon: "🌐"},
	{Key: "consistency", Label: "Consistency", Icon: "🔄"},
}

// DetailMetrics are the score columns of the results table, in order.
var DetailMetrics = []string{"clarity", "hallucination", "formatting"}

// LookupMetric returns the definition for key, if it is a known metric.
func LookupMetric(key string) (MetricDefinition, bool) {
	for _, m := range KnownMetrics {
		if m.Key == key {
			return m, true
		}
	}
	return MetricDefinition{}, false
}

// MetricFill returns the bar fill percentage for a metric value on the
// given scale, clamped to [0, 100].
func MetricFill(value, scale float64) float64 {
	if scale <= 0 {
		scale = DefaultScoreScale
	}
	return clampPercent(value / scale * 100)
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(p, 100))
}
