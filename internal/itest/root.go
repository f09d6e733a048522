//go:build integration

package itest

import (
	"fmt"
	"os"
	"path/filepath"
)

// findRepoRoot walks up from the working directory to the module that holds
// the takenotes command.
func findRepoRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := start; ; {
		if isRepoRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no takenotes module above %s", start)
		}
		dir = parent
	}
}

func isRepoRoot(dir string) bool {
	for _, p := range []string{"go.mod", filepath.Join("cmd", "takenotes", "main.go")} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			return false
		}
	}
	return true
}
