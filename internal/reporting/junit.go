package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spboyer/evalreport/internal/models"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one results file.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one result record.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure represents a record that did not pass.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts aggregated results to JUnit XML form. Records
// keep their input order; failed records carry their scores in the body.
func ConvertToJUnit(suiteName string, stats models.AggregateStats, records []models.ResultRecord, generatedAt time.Time) *JUnitTestSuites {
	suite := JUnitTestSuite{
		Name:      suiteName,
		Tests:     stats.Total,
		Failures:  stats.Failed,
		Timestamp: generatedAt.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "pass_rate", Value: fmt.Sprintf("%.1f", stats.PassRate)},
		},
	}

	for _, name := range stats.MetricNames() {
		suite.Properties = append(suite.Properties, JUnitProperty{
			Name:  "metric." + name,
			Value: fmt.Sprintf("%.4f", stats.MetricAverages[name]),
		})
	}

	for _, rec := range records {
		suite.TestCases = append(suite.TestCases, convertRecord(suiteName, rec))
	}

	return &JUnitTestSuites{
		Tests:      stats.Total,
		Failures:   stats.Failed,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func convertRecord(suiteName string, rec models.ResultRecord) JUnitTestCase {
	name := rec.ID
	if name == "" {
		name = NotApplicable
	}
	tc := JUnitTestCase{
		Name:      name,
		Classname: suiteName,
	}
	if !rec.Passed {
		tc.Failure = &JUnitFailure{
			Message: fmt.Sprintf("%s: %s", name, rec.Status()),
			Type:    "EvaluationFailure",
			Body:    formatScores(rec),
		}
	}
	return tc
}

func formatScores(rec models.ResultRecord) string {
	if len(rec.Scores) == 0 {
		return ""
	}

	// Sort for deterministic output
	names := make([]string, 0, len(rec.Scores))
	for name := range rec.Scores {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%s=%s\n", name, FormatScore(rec, name)))
	}
	return b.String()
}

// WriteJUnitXML writes JUnit XML to the specified file path, creating the
// parent directory if needed.
func WriteJUnitXML(path string, suites *JUnitTestSuites) error {
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating JUnit output directory: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
