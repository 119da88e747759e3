// Package ports resolves the TCP port of a locally running service from the
// environment or from well-known port files written at service startup.
package ports

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolve returns the port for the named service. Priority:
// 1. <SERVICE>_PORT environment variable
// 2. .<service>-port file (relative, then under the working directory)
// 3. ~/tmp/<service>.port
// Sources that are missing or hold non-numeric content are skipped silently;
// def is returned when nothing matches.
func Resolve(service string, def int) int {
	env := strings.ToUpper(service) + "_PORT"
	if v := os.Getenv(env); v != "" {
		if port, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return port
		}
	}

	for _, file := range portFiles(service) {
		if port, ok := readPortFile(file); ok {
			return port
		}
	}

	return def
}

// portFiles returns the candidate port file paths in probing order.
func portFiles(service string) []string {
	name := strings.ToLower(service)
	files := []string{"." + name + "-port"}

	if cwd, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(cwd, "."+name+"-port"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, "tmp", name+".port"))
	}

	return files
}

func readPortFile(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}

	return port, true
}
