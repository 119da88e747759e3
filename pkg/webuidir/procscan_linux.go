//go:build linux

package webuidir

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// runningAppDirs scans /proc for python processes whose argv mentions
// webui.py and returns the directories those scripts live in. Processes we
// cannot read (other users' entries, races with exits) are skipped.
func runningAppDirs() []string {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil
	}

	var dirs []string

	for _, entry := range entries {
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "cmdline"))
		if err != nil {
			continue
		}

		argv := strings.Split(string(bytes.TrimRight(data, "\x00")), "\x00")
		if len(argv) == 0 || !strings.Contains(strings.ToLower(filepath.Base(argv[0])), "python") {
			continue
		}

		for _, arg := range argv[1:] {
			if strings.Contains(arg, "webui.py") {
				if dir := filepath.Dir(arg); dir != "." {
					dirs = append(dirs, dir)
				}
				break
			}
		}
	}

	return dirs
}
