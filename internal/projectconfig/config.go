// Package projectconfig provides the ProjectConfig struct and loader for
// .evalreport.yaml / .evalreport.toml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spboyer/evalreport/internal/reporting"
	"github.com/spboyer/evalreport/internal/utils"
	"gopkg.in/yaml.v3"
)

// Config file names, in lookup order.
const (
	FileNameYAML = ".evalreport.yaml"
	FileNameTOML = ".evalreport.toml"
)

// Default values for project configuration. These are the single source of
// truth for paths; report defaults come from the reporting package.
const (
	DefaultInputPath  = "ai-evaluation/promptfoo-results.json"
	DefaultOutputPath = "ai-evaluation/report.html"

	maxSearchDepth = 10
)

// PathsConfig holds the input and output locations.
type PathsConfig struct {
	Input  string `yaml:"input,omitempty" toml:"input,omitempty"`
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
	JUnit  string `yaml:"junit,omitempty" toml:"junit,omitempty"`
}

// ReportConfig holds presentation settings for the HTML report.
type ReportConfig struct {
	Title           string  `yaml:"title,omitempty" toml:"title,omitempty"`
	Subtitle        string  `yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Footer          string  `yaml:"footer,omitempty" toml:"footer,omitempty"`
	ScoreScale      float64 `yaml:"score_scale,omitempty" toml:"score_scale,omitempty"`
	DefaultLanguage string  `yaml:"default_language,omitempty" toml:"default_language,omitempty"`
	Notes           string  `yaml:"notes,omitempty" toml:"notes,omitempty"`
}

// OptionsConfig holds behavior toggles.
type OptionsConfig struct {
	Strict *bool `yaml:"strict,omitempty" toml:"strict,omitempty"`
	Gzip   *bool `yaml:"gzip,omitempty" toml:"gzip,omitempty"`
}

// ProjectConfig is the top-level configuration.
type ProjectConfig struct {
	Paths   PathsConfig   `yaml:"paths,omitempty" toml:"paths,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty" toml:"report,omitempty"`
	Options OptionsConfig `yaml:"options,omitempty" toml:"options,omitempty"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Input:  DefaultInputPath,
			Output: DefaultOutputPath,
		},
		Report: ReportConfig{
			Title:           reporting.DefaultTitle,
			Subtitle:        reporting.DefaultSubtitle,
			Footer:          reporting.DefaultFooter,
			ScoreScale:      reporting.DefaultScoreScale,
			DefaultLanguage: reporting.DefaultLanguage,
		},
		Options: OptionsConfig{
			Strict: boolPtr(false),
			Gzip:   boolPtr(false),
		},
	}
}

// RenderOptions converts the report section for the renderer.
func (c *ProjectConfig) RenderOptions() reporting.RenderOptions {
	return reporting.RenderOptions{
		Title:           c.Report.Title,
		Subtitle:        c.Report.Subtitle,
		Footer:          c.Report.Footer,
		ScoreScale:      c.Report.ScoreScale,
		DefaultLanguage: c.Report.DefaultLanguage,
		Notes:           c.Report.Notes,
	}
}

// Load finds a config file by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	path, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil // no file found → return defaults
		}
		return nil, fmt.Errorf("locating config file: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads an explicit config file. The format is chosen by
// extension: .toml for TOML, anything else is parsed as YAML. Relative
// paths in the file are resolved against the file's directory.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var fileCfg ProjectConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if fileCfg.Report.ScoreScale < 0 {
		return nil, fmt.Errorf("parsing %s: report.score_scale must be positive, got %g", path, fileCfg.Report.ScoreScale)
	}

	baseDir := filepath.Dir(path)
	fileCfg.Paths.Input = utils.ResolvePath(fileCfg.Paths.Input, baseDir)
	fileCfg.Paths.Output = utils.ResolvePath(fileCfg.Paths.Output, baseDir)
	fileCfg.Paths.JUnit = utils.ResolvePath(fileCfg.Paths.JUnit, baseDir)

	// Merge file values onto defaults.
	cfg := New()
	mergeConfig(cfg, &fileCfg)
	cfg.Source = path
	return cfg, nil
}

// findConfigFile walks up from dir looking for a config file (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) (string, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxSearchDepth; i++ {
		for _, name := range []string{FileNameYAML, FileNameTOML} {
			p := filepath.Join(dir, name)
			info, err := os.Stat(p)
			if err == nil && !info.IsDir() {
				return p, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("reading %q: %w", p, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Input != "" {
		dst.Paths.Input = src.Paths.Input
	}
	if src.Paths.Output != "" {
		dst.Paths.Output = src.Paths.Output
	}
	if src.Paths.JUnit != "" {
		dst.Paths.JUnit = src.Paths.JUnit
	}

	// Report
	if src.Report.Title != "" {
		dst.Report.Title = src.Report.Title
	}
	if src.Report.Subtitle != "" {
		dst.Report.Subtitle = src.Report.Subtitle
	}
	if src.Report.Footer != "" {
		dst.Report.Footer = src.Report.Footer
	}
	if src.Report.ScoreScale != 0 {
		dst.Report.ScoreScale = src.Report.ScoreScale
	}
	if src.Report.DefaultLanguage != "" {
		dst.Report.DefaultLanguage = src.Report.DefaultLanguage
	}
	if src.Report.Notes != "" {
		dst.Report.Notes = src.Report.Notes
	}

	// Options
	if src.Options.Strict != nil {
		dst.Options.Strict = src.Options.Strict
	}
	if src.Options.Gzip != nil {
		dst.Options.Gzip = src.Options.Gzip
	}
}

func boolPtr(b bool) *bool {
	return &b
}
