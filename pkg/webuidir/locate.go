package webuidir

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/openoperator/webui-bridge/pkg/diag"
)

var cache = struct {
	sync.Mutex
	dir   Dir
	found bool
}{}

// Locate finds the Web UI installation. Probing order:
// 1. WEB_UI_PATH environment variable
// 2. directories of running processes whose argv mentions webui.py
// 3. fixed candidate paths relative to the working directory and home.
// Only a successful result is cached; unsuccessful lookups are retried on
// the next call because the Web UI may have been started in the meantime.
func Locate() (Dir, bool) {
	cache.Lock()
	defer cache.Unlock()

	if cache.found && cache.dir.Valid() {
		return cache.dir, true
	}

	dir, ok := locateIn(candidatePaths())
	if ok {
		cache.dir = dir
		cache.found = true
	}

	return dir, ok
}

// locateIn returns the first candidate that holds a valid installation.
func locateIn(candidates []string) (Dir, bool) {
	for _, path := range candidates {
		if path == "" {
			continue
		}

		d := New(path)
		if d.Valid() {
			diag.Logf("found Web UI at %s", d.Root())
			return d, true
		}
	}

	return Dir{}, false
}

// candidatePaths builds the probing list, most specific first.
func candidatePaths() []string {
	var paths []string

	if env := os.Getenv("WEB_UI_PATH"); env != "" {
		paths = append(paths, env)
	}

	paths = append(paths, runningAppDirs()...)

	paths = append(paths,
		filepath.Join("..", "..", "..", "web-ui"),
		filepath.Join("..", "..", "web-ui"),
		filepath.Join("..", "web-ui"),
		"web-ui",
	)

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "web-ui"))
	}

	return paths
}
