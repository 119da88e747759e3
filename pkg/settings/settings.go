// Package settings reads the Web UI's saved settings files. The files are
// written by another program in serialization formats the bridge does not
// control, so decoding is best-effort: JSON first, then a raw byte scan for
// the API key field. Loading is bounded by a deadline because a hostile or
// corrupt file must not stall the whole invocation.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/openoperator/webui-bridge/pkg/diag"
)

// DefaultTimeout bounds the load of a single settings file.
const DefaultTimeout = 2 * time.Second

// keyField is the field name the Web UI stores the API key under.
const keyField = "llm_api_key"

// rawKeyPattern extracts an API key from an undecodable settings file by
// locating the key field in the raw bytes.
var rawKeyPattern = regexp.MustCompile(keyField + `"?\s*[:=]?\s*"?(sk-[A-Za-z0-9_-]+)`)

// APIKeyFromDir scans every file in the settings directory and returns the
// first API key found. Files that cannot be read or decoded within the
// timeout are skipped.
func APIKeyFromDir(dir string, timeout time.Duration) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		key, ok, err := loadAPIKey(path, timeout)
		if err != nil {
			diag.Warnf("settings: skipping %s: %v", path, err)
			continue
		}
		if ok {
			diag.Logf("found API key in %s", path)
			return key, true
		}
	}

	return "", false
}

// loadAPIKey reads and decodes one settings file within the given timeout.
// The read runs in its own goroutine; on timeout the goroutine is abandoned,
// as a blocked file read cannot be interrupted.
func loadAPIKey(path string, timeout time.Duration) (string, bool, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	type result struct {
		key string
		ok  bool
		err error
	}

	ch := make(chan result, 1)

	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			ch <- result{err: err}
			return
		}

		key, ok := decodeAPIKey(data)
		ch <- result{key: key, ok: ok}
	}()

	select {
	case r := <-ch:
		return r.key, r.ok, r.err
	case <-time.After(timeout):
		return "", false, &TimeoutError{Path: path, Timeout: timeout}
	}
}

// decodeAPIKey extracts the API key from settings file content: a JSON
// object with the key field, or a raw byte scan as a fallback for formats
// the bridge cannot parse.
func decodeAPIKey(data []byte) (string, bool) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		if key, ok := doc[keyField].(string); ok && key != "" {
			return strings.TrimSpace(key), true
		}
	}

	if m := rawKeyPattern.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}

	return "", false
}

// TimeoutError reports a settings file that could not be loaded in time.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return "settings: load of " + e.Path + " timed out after " + e.Timeout.String()
}
