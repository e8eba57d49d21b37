// Package loader reads evaluation result files into typed records.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spboyer/evalreport/internal/models"
	"github.com/spboyer/evalreport/internal/validation"
)

// ResultsField is the top-level field holding the record list.
const ResultsField = "results"

// Options controls how a results file is loaded.
type Options struct {
	// Strict additionally validates the document against the results schema
	// and rejects it on any violation.
	Strict bool

	// Hint is appended to MissingInputError. Defaults to DefaultHint.
	Hint string
}

// Load reads and parses the results file at path with default options.
func Load(path string) (*models.ResultsDocument, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads and parses the results file at path.
// A missing file yields *MissingInputError and unparseable content yields
// *MalformedInputError.
func LoadWithOptions(path string, opts Options) (*models.ResultsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			hint := opts.Hint
			if hint == "" {
				hint = DefaultHint
			}
			return nil, &MissingInputError{Path: path, Hint: hint}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data, opts)
}

// Parse decodes raw results JSON. path is only used for error messages.
func Parse(path string, data []byte, opts Options) (*models.ResultsDocument, error) {
	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	if top == nil {
		return nil, &MalformedInputError{Path: path, Err: errors.New("top-level value must be an object")}
	}

	if opts.Strict {
		if violations := validation.ValidateResultsBytes(data); len(violations) > 0 {
			return nil, &MalformedInputError{
				Path:       path,
				Err:        fmt.Errorf("%d schema violation(s)", len(violations)),
				Violations: violations,
			}
		}
	}

	doc := &models.ResultsDocument{
		SourcePath: path,
		Results:    []models.ResultRecord{},
		Fields:     make(map[string]any, len(top)),
	}
	for k, v := range top {
		if k != ResultsField {
			doc.Fields[k] = v
		}
	}

	raw, ok := top[ResultsField]
	if !ok || raw == nil {
		return doc, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("%q must be an array, got %T", ResultsField, raw)}
	}

	for i, e := range entries {
		fields, ok := e.(map[string]any)
		if !ok {
			return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("%s[%d] must be an object, got %T", ResultsField, i, e)}
		}
		rec, err := decodeRecord(i, fields)
		if err != nil {
			return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("%s[%d]: %w", ResultsField, i, err)}
		}
		doc.Results = append(doc.Results, rec)
	}

	return doc, nil
}

// FileLoader loads results files with fixed Options.
type FileLoader struct {
	Options Options
}

// Load implements the pipeline loader stage.
func (l FileLoader) Load(path string) (*models.ResultsDocument, error) {
	return LoadWithOptions(path, l.Options)
}
