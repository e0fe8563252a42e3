package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Query answered (including warnings and fallbacks)
	ExitQueryFailed = 1 // Query returned a structured error payload
	ExitError       = 2 // Configuration or runtime error
)

// QueryFailureError indicates the engine answered, but with an error-status
// payload (the payload itself has already been rendered to stdout).
type QueryFailureError struct {
	Reason string
}

func (e *QueryFailureError) Error() string {
	return "query failed: " + e.Reason
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var queryErr *QueryFailureError
		if errors.As(err, &queryErr) {
			os.Exit(ExitQueryFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
