package exit

import (
	"fmt"
	"io"
)

const (
	CodeSuccess = 0
	CodeFailure = 1
	CodeUsage   = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a result that writes message to w and exits with code 0.
func Success(w io.Writer, message string) *Result {
	return &Result{
		Output:   w,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Failure reports a fatal runtime error on w with exit code 1.
func Failure(w io.Writer, err error) *Result {
	return &Result{
		Output:   w,
		ExitCode: CodeFailure,
		Message:  fmt.Sprintf("Error: %v\n", err),
	}
}

// Usage reports invalid invocation on w, followed by the usage text, with exit code 2.
func Usage(w io.Writer, err error, usage string) *Result {
	return &Result{
		Output:   w,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf("Error: %v\n\n%s\n", err, usage),
	}
}
