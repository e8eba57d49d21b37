package loader

import (
	"fmt"
	"strings"
)

// DefaultHint tells the user how to produce the results file.
const DefaultHint = "Run: npx promptfoo eval"

// MissingInputError is returned when the results file does not exist.
type MissingInputError struct {
	Path string
	Hint string
}

func (e *MissingInputError) Error() string {
	msg := fmt.Sprintf("%s not found", e.Path)
	if e.Hint != "" {
		msg += "\n   " + e.Hint
	}
	return msg
}

// MalformedInputError is returned when the results file exists but cannot
// be interpreted as a results document.
type MalformedInputError struct {
	Path       string
	Err        error
	Violations []string
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is not a valid results document", e.Path)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	for _, v := range e.Violations {
		b.WriteString("\n   " + v)
	}
	return b.String()
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
