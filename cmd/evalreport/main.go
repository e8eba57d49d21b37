package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/evalreport/internal/loader"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Report generated
	ExitInputError = 1 // Results file missing or malformed
	ExitError      = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var missing *loader.MissingInputError
	if errors.As(err, &missing) {
		return ExitInputError
	}
	var malformed *loader.MalformedInputError
	if errors.As(err, &malformed) {
		return ExitInputError
	}

	// All other errors are configuration/runtime errors
	return ExitError
}
