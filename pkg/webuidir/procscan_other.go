//go:build !linux

package webuidir

// runningAppDirs is a no-op on platforms without a /proc filesystem; the
// fixed candidate paths and WEB_UI_PATH still apply.
func runningAppDirs() []string { return nil }
