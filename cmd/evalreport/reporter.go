package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spboyer/evalreport/internal/models"
	"github.com/spboyer/evalreport/internal/pipeline"
	"github.com/spboyer/evalreport/internal/reporting"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// summaryPrinter formats counts with digit grouping.
var summaryPrinter = message.NewPrinter(language.English)

// isTerminal reports whether w is a terminal. Anything that is not an
// *os.File (buffers in tests, pipes wrapped by callers) is treated as plain.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// progressPrinter writes stage progress lines. Emoji markers are only used
// when fancy is set.
type progressPrinter struct {
	w     io.Writer
	fancy bool
}

func newProgressPrinter(w io.Writer, fancy bool) *progressPrinter {
	return &progressPrinter{w: w, fancy: fancy}
}

func (p *progressPrinter) line(icon, text string) {
	if p.fancy && icon != "" {
		fmt.Fprintf(p.w, "%s %s\n", icon, text) //nolint:errcheck
		return
	}
	fmt.Fprintln(p.w, text) //nolint:errcheck
}

func (p *progressPrinter) header() {
	p.line("📊", "Report Generator - Creating HTML Report")
	fmt.Fprintln(p.w) //nolint:errcheck
}

func (p *progressPrinter) saved(path string) {
	p.line("✅", "Report saved to: "+path)
	fmt.Fprintln(p.w) //nolint:errcheck
}

// stage returns a pipeline progress callback. outputPath is named in the
// line printed after the write stage completes.
func (p *progressPrinter) stage(outputPath string) func(pipeline.Event) {
	return func(e pipeline.Event) {
		switch {
		case e.Stage == pipeline.StageLoad && !e.Done:
			p.line("📖", "Loading evaluation results...")
		case e.Stage == pipeline.StageLoad:
			p.line("✅", "Results loaded")
			fmt.Fprintln(p.w) //nolint:errcheck
		case e.Stage == pipeline.StageAggregate && !e.Done:
			p.line("📈", "Calculating statistics...")
		case e.Stage == pipeline.StageAggregate:
			p.line("✅", "Statistics calculated")
			fmt.Fprintln(p.w) //nolint:errcheck
		case e.Stage == pipeline.StageRender && !e.Done:
			p.line("🎨", "Generating HTML report...")
		case e.Stage == pipeline.StageWrite && e.Done:
			p.saved(outputPath)
		}
	}
}

// printSummary writes the totals block followed by a table of per-metric
// statistics when any metric had numeric values.
func printSummary(w io.Writer, fancy bool, stats models.AggregateStats, scale float64) error {
	heading := "Summary:"
	if fancy {
		heading = "📊 " + heading
	}
	fmt.Fprintln(w, heading) //nolint:errcheck

	rows := [][2]string{
		{"Total Tests:", summaryPrinter.Sprintf("%d", stats.Total)},
		{"Passed:", summaryPrinter.Sprintf("%d", stats.Passed)},
		{"Failed:", summaryPrinter.Sprintf("%d", stats.Failed)},
		{"Pass Rate:", fmt.Sprintf("%.1f%%", stats.PassRate)},
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "   %s %s\n", padRight(r[0], labelWidth), r[1]) //nolint:errcheck
	}
	fmt.Fprintln(w) //nolint:errcheck

	names := stats.MetricNames()
	if len(names) == 0 {
		return nil
	}

	table := createStandardTable([]string{"Metric", "Mean", "Min", "Max", "StdDev", "Count", "Rating"}, w)
	for _, name := range names {
		ms := stats.Metrics[name]
		label := name
		if def, ok := reporting.LookupMetric(name); ok {
			label = def.Label
		}
		row := []string{
			label,
			fmt.Sprintf("%.2f", ms.Mean),
			fmt.Sprintf("%.2f", ms.Min),
			fmt.Sprintf("%.2f", ms.Max),
			fmt.Sprintf("%.2f", ms.StdDev),
			summaryPrinter.Sprintf("%d", ms.Count),
			reporting.InterpretMetric(ms.Mean, scale),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("building metric table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering metric table: %w", err)
	}
	fmt.Fprintln(w) //nolint:errcheck
	return nil
}

// createStandardTable creates a markdown-style table with left-aligned cells.
func createStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 100,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
