// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the CRM project checkout on disk.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Markers that identify the project root when walking upward.
var rootMarkers = []string{".git", "package.json"}

// Find walks up from start until a directory containing a root marker is
// found. It returns an error when the filesystem root is reached first.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no project root found above %s", start)
		}
		dir = parent
	}
}

// FromExecutable anchors the project root two directory levels above the
// running binary, matching the tools/ layout the binary ships in
// (<root>/tools/bin/crmtool). When the executable path is unavailable it
// falls back to walking up from the working directory.
func FromExecutable() (string, error) {
	if exe, err := os.Executable(); err == nil {
		return filepath.Clean(filepath.Join(filepath.Dir(exe), "..", "..")), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return Find(wd)
}
