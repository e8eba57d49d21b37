// Package pipeline runs the report stages in order: load, aggregate,
// render, write.
package pipeline

//go:generate go tool mockgen -source=pipeline.go -destination=pipeline_mocks_test.go -package=pipeline

import (
	"fmt"
	"time"

	"github.com/spboyer/evalreport/internal/metrics"
	"github.com/spboyer/evalreport/internal/models"
)

// Loader reads a results document.
type Loader interface {
	Load(path string) (*models.ResultsDocument, error)
}

// Renderer produces the report document.
type Renderer interface {
	Render(stats models.AggregateStats, records []models.ResultRecord, now time.Time) (*models.Report, error)
}

// Writer persists the report.
type Writer interface {
	Write(path string, report *models.Report) error
}

// Stage names a pipeline step.
type Stage string

const (
	StageLoad      Stage = "load"
	StageAggregate Stage = "aggregate"
	StageRender    Stage = "render"
	StageWrite     Stage = "write"
)

// Event reports a stage starting (Done == false) or finishing.
type Event struct {
	Stage Stage
	Done  bool
}

// Pipeline wires the stages together.
type Pipeline struct {
	Loader   Loader
	Renderer Renderer
	Writer   Writer

	// Now defaults to time.Now.
	Now func() time.Time

	// Progress, when set, is called around every stage.
	Progress func(Event)
}

// Result holds everything produced by a successful run.
type Result struct {
	Document   *models.ResultsDocument
	Stats      models.AggregateStats
	Report     *models.Report
	OutputPath string
}

// Run executes the stages and stops at the first error. Errors from the
// loader are returned unwrapped so callers can match them with errors.As.
func (p *Pipeline) Run(inputPath, outputPath string) (*Result, error) {
	now := p.Now
	if now == nil {
		now = time.Now
	}

	p.emit(StageLoad, false)
	doc, err := p.Loader.Load(inputPath)
	if err != nil {
		return nil, err
	}
	p.emit(StageLoad, true)

	p.emit(StageAggregate, false)
	stats := metrics.Aggregate(doc.Results)
	p.emit(StageAggregate, true)

	p.emit(StageRender, false)
	report, err := p.Renderer.Render(stats, doc.Results, now())
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	p.emit(StageRender, true)

	p.emit(StageWrite, false)
	if err := p.Writer.Write(outputPath, report); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}
	p.emit(StageWrite, true)

	return &Result{
		Document:   doc,
		Stats:      stats,
		Report:     report,
		OutputPath: outputPath,
	}, nil
}

func (p *Pipeline) emit(stage Stage, done bool) {
	if p.Progress != nil {
		p.Progress(Event{Stage: stage, Done: done})
	}
}
