package reporting

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"

	"github.com/spboyer/evalreport/internal/models"
)

//go:embed templates/report.html.tmpl
var reportHTML string

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// TimestampLayout is the footer timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// RenderOptions customizes the HTML report. Zero values fall back to the
// package defaults.
type RenderOptions struct {
	Title           string
	Subtitle        string
	Footer          string
	ScoreScale      float64
	DefaultLanguage string

	// Notes is optional markdown shown below the pass-rate bar.
	Notes string
}

// Renderer turns aggregated statistics and records into an HTML report.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer returns a Renderer with defaults applied to opts.
func NewRenderer(opts RenderOptions) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = DefaultSubtitle
	}
	if opts.Footer == "" {
		opts.Footer = DefaultFooter
	}
	if opts.ScoreScale <= 0 {
		opts.ScoreScale = DefaultScoreScale
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = DefaultLanguage
	}
	return &Renderer{opts: opts}
}

// Options returns the effective options.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

type metricPanel struct {
	Icon  string
	Label string
	Value string
	Fill  string
}

type resultRow struct {
	ID            string
	Language      string
	LanguageClass string
	Scores        []string
	Passed        bool
}

type templateData struct {
	Title         string
	Subtitle      string
	Footer        string
	GeneratedAt   string
	Total         int
	Passed        int
	Failed        int
	PassRate      string
	ProgressWidth string
	Notes         template.HTML
	Metrics       []metricPanel
	ScoreHeaders  []string
	Rows          []resultRow
}

// Render produces a self-contained HTML document. Every value taken from
// the input is escaped by html/template; only the sanitized notes are
// inserted as markup.
func (r *Renderer) Render(stats models.AggregateStats, records []models.ResultRecord, now time.Time) (*models.Report, error) {
	notes, err := RenderNotes(r.opts.Notes)
	if err != nil {
		return nil, err
	}

	data := templateData{
		Title:         r.opts.Title,
		Subtitle:      r.opts.Subtitle,
		Footer:        r.opts.Footer,
		GeneratedAt:   now.Format(TimestampLayout),
		Total:         stats.Total,
		Passed:        stats.Passed,
		Failed:        stats.Failed,
		PassRate:      fmt.Sprintf("%.1f", stats.PassRate),
		ProgressWidth: fmt.Sprintf("%.1f", clampPercent(stats.PassRate)),
		Notes:         notes,
		Metrics:       r.metricPanels(stats),
		Rows:          make([]resultRow, 0, len(records)),
	}

	for _, key := range DetailMetrics {
		label := key
		if def, ok := LookupMetric(key); ok {
			label = def.Label
		}
		data.ScoreHeaders = append(data.ScoreHeaders, label)
	}

	for _, rec := range records {
		data.Rows = append(data.Rows, r.resultRow(rec))
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing report template: %w", err)
	}

	return &models.Report{HTML: buf.String(), GeneratedAt: now}, nil
}

func (r *Renderer) metricPanels(stats models.AggregateStats) []metricPanel {
	var panels []metricPanel
	for _, def := range KnownMetrics {
		value, ok := stats.MetricAverages[def.Key]
		if !ok {
			continue
		}
		panels = append(panels, metricPanel{
			Icon:  def.Icon,
			Label: def.Label,
			Value: fmt.Sprintf("%.2f", value),
			Fill:  fmt.Sprintf("%.1f", MetricFill(value, r.opts.ScoreScale)),
		})
	}
	return panels
}

func (r *Renderer) resultRow(rec models.ResultRecord) resultRow {
	id := rec.ID
	if id == "" {
		id = NotApplicable
	}
	lang := rec.Metadata.LanguageOr(r.opts.DefaultLanguage)

	row := resultRow{
		ID:            id,
		Language:      strings.ToUpper(lang),
		LanguageClass: languageClass(lang),
		Passed:        rec.Passed,
	}
	for _, key := range DetailMetrics {
		row.Scores = append(row.Scores, FormatScore(rec, key))
	}
	return row
}

// FormatScore renders the named score with two decimals, or NotApplicable
// when it is missing or not numeric.
func FormatScore(rec models.ResultRecord, key string) string {
	v, ok := rec.NumericScore(key)
	if !ok {
		return NotApplicable
	}
	return fmt.Sprintf("%.2f", v)
}

// languageClass reduces a language tag to a single CSS class token.
func languageClass(lang string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(lang) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
