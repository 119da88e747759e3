// Package envelope formats the single JSON object every bridge invocation
// writes to stdout. The calling server reads stdout as one JSON document, so
// a result is always printed, even when the action itself failed.
package envelope

import (
	"encoding/json"
	"fmt"
	"io"
)

// Failure is the envelope printed when an action fails.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail builds a failure envelope from an error.
func Fail(err error) Failure {
	return Failure{Error: err.Error()}
}

// Failf builds a failure envelope from a format string.
func Failf(format string, args ...any) Failure {
	return Failure{Error: fmt.Sprintf(format, args...)}
}

// Write marshals v and writes it to w followed by a newline. If v cannot be
// marshaled, a failure envelope describing the encoding error is written
// instead, so the caller always receives valid JSON.
func Write(w io.Writer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(Failure{Error: fmt.Sprintf("encode result: %v", err)})
	}

	fmt.Fprintln(w, string(data))
}
