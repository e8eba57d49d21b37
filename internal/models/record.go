package models

import "strings"

// Status labels used for display and export.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Score is a single metric value as it appeared in the input. Values that
// were not JSON numbers are kept with Numeric set to false so they can be
// reported but never averaged.
type Score struct {
	Value   float64 `json:"value"`
	Numeric bool    `json:"numeric"`
	Raw     any     `json:"raw,omitempty"`
}

// NumericScore builds a Score from a number.
func NumericScore(v float64) Score {
	return Score{Value: v, Numeric: true, Raw: v}
}

// RecordMetadata holds the optional metadata attached to a result record.
type RecordMetadata struct {
	Language string         `json:"language,omitempty" mapstructure:"language"`
	Extra    map[string]any `json:"extra,omitempty" mapstructure:",remain"`
}

// LanguageOr returns the record's language tag, or def when none was set.
func (m RecordMetadata) LanguageOr(def string) string {
	if strings.TrimSpace(m.Language) == "" {
		return def
	}
	return m.Language
}

// ResultRecord is one evaluation outcome for a single test case.
type ResultRecord struct {
	ID       string           `json:"id"`
	Passed   bool             `json:"pass"`
	Scores   map[string]Score `json:"scores,omitempty"`
	Metadata RecordMetadata   `json:"metadata"`
}

// Status returns StatusPassed or StatusFailed.
func (r ResultRecord) Status() string {
	if r.Passed {
		return StatusPassed
	}
	return StatusFailed
}

// NumericScore returns the named score and whether it was present and numeric.
func (r ResultRecord) NumericScore(name string) (float64, bool) {
	s, ok := r.Scores[name]
	if !ok || !s.Numeric {
		return 0, false
	}
	return s.Value, true
}

// ResultsDocument is the parsed input file.
type ResultsDocument struct {
	SourcePath string         `json:"-"`
	Results    []ResultRecord `json:"results"`

	// Fields holds every other top-level field of the input document.
	Fields map[string]any `json:"-"`
}
