package models

import (
	"sort"
	"time"
)

// MetricStats summarizes the numeric values seen for one metric.
type MetricStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// AggregateStats is the read-only snapshot computed once per run.
type AggregateStats struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	PassRate float64 `json:"pass_rate"`

	// MetricAverages only contains metrics with at least one numeric value.
	MetricAverages map[string]float64     `json:"metric_averages"`
	Metrics        map[string]MetricStats `json:"metrics"`
}

// MetricNames returns the keys of MetricAverages in lexical order.
func (s AggregateStats) MetricNames() []string {
	names := make([]string, 0, len(s.MetricAverages))
	for name := range s.MetricAverages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Report is a rendered HTML document.
type Report struct {
	HTML        string
	GeneratedAt time.Time
}
