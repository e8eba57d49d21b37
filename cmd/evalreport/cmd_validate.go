package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spboyer/evalreport/internal/loader"
	"github.com/spboyer/evalreport/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a results file against the results schema",
		Long: `Validate a results file against the results JSON Schema and list every
violation. With no argument the configured input path is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(flags.configPath)
				if err != nil {
					return err
				}
				path = cfg.Paths.Input
			}
			return validateCommandE(cmd, path)
		},
	}
}

func validateCommandE(cmd *cobra.Command, path string) error {
	violations, err := validation.ValidateResultsFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &loader.MissingInputError{Path: path, Hint: loader.DefaultHint}
		}
		return err
	}
	if len(violations) > 0 {
		return &loader.MalformedInputError{
			Path:       path,
			Err:        fmt.Errorf("%d schema violation(s)", len(violations)),
			Violations: violations,
		}
	}

	out := cmd.OutOrStdout()
	progress := newProgressPrinter(out, isTerminal(out))
	progress.line("✅", path+" is a valid results document")
	return nil
}
