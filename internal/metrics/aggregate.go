package metrics

import "github.com/spboyer/evalreport/internal/models"

// Aggregate reduces a list of records to summary statistics.
//
// Only numeric scores contribute to a metric's average; missing and
// non-numeric values are skipped, so a metric appears in MetricAverages
// only when at least one record supplied a number for it. Records without
// scores still count toward the pass/fail totals.
func Aggregate(records []models.ResultRecord) models.AggregateStats {
	stats := models.AggregateStats{
		Total:          len(records),
		MetricAverages: make(map[string]float64),
		Metrics:        make(map[string]models.MetricStats),
	}

	values := make(map[string][]float64)
	for _, r := range records {
		if r.Passed {
			stats.Passed++
		}
		for name, s := range r.Scores {
			if !s.Numeric {
				continue
			}
			values[name] = append(values[name], s.Value)
		}
	}
	stats.Failed = stats.Total - stats.Passed
	stats.PassRate = PassRate(stats.Passed, stats.Total)

	for name, vs := range values {
		if len(vs) == 0 {
			continue
		}
		lo, hi := MinMax(vs)
		mean := Mean(vs)
		stats.MetricAverages[name] = mean
		stats.Metrics[name] = models.MetricStats{
			Count:  len(vs),
			Mean:   mean,
			Min:    lo,
			Max:    hi,
			StdDev: StdDev(vs),
		}
	}

	return stats
}
