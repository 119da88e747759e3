// Package webuidir encapsulates all path knowledge for a Web UI
// installation. It provides a Dir value object with accessors for the files
// the bridge probes (config, .env, saved settings), plus discovery of the
// installation on the local machine.
package webuidir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a Web UI installation.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use Valid to check the directory
// actually holds a Web UI.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the installation directory.
func (d Dir) Root() string { return d.root }

// AppScript returns the path to the Web UI entry script.
func (d Dir) AppScript() string { return filepath.Join(d.root, "webui.py") }

// ConfigPath returns the path to the installation's config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// EnvPath returns the path to the installation's .env file.
func (d Dir) EnvPath() string { return filepath.Join(d.root, ".env") }

// SettingsDir returns the path to the saved-settings directory the Web UI
// writes through its own persistence layer.
func (d Dir) SettingsDir() string { return filepath.Join(d.root, "tmp", "webui_settings") }

// Valid reports whether the directory exists and contains the Web UI entry
// script. A bare directory without webui.py does not qualify.
func (d Dir) Valid() bool {
	info, err := os.Stat(d.AppScript())

	return err == nil && !info.IsDir()
}
