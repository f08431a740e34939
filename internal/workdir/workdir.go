// Package workdir finds the project directory whose .timesheet config applies
// to a command.
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const configDir = ".timesheet"

// ResolveBaseDir picks the directory to load the config from:
//  1. The current directory, if it has a .timesheet directory.
//  2. The closest parent that has one, stopping at the git root.
//  3. The git root, if it has one.
//
// If none is found, baseDir is returned unchanged so `init` writes there.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	stop := ""
	if root, err := gitTopLevel(baseDir); err == nil && root != "" {
		stop = filepath.Clean(root)
	}

	for dir := baseDir; ; {
		if hasConfigDir(dir) {
			return dir
		}
		if dir == stop {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir || stop == "" {
			break
		}
		dir = parent
	}
	return baseDir
}

func hasConfigDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, configDir))
	return err == nil && fi.IsDir()
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
