//go:build mage

package main

import "github.com/magefile/mage/sh"

// Summarize uploads file with the development build and prints the summary.
// Usage: mage summarize ./logs/app.txt
func Summarize(file string) error {
	return sh.RunV("go", "run", cmdPkg, "summarize", file)
}

// Tui starts the interactive client in dir.
func Tui(dir string) error {
	return sh.RunV("go", "run", cmdPkg, "tui", dir)
}
