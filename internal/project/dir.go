// Package project derives filesystem locations from stored shortcuts.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projexts/projexts/internal/store"
)

// ErrNoDir means a shortcut carries no token that resolves to an
// existing path, so no project directory can be derived.
var ErrNoDir = errors.New("no project directory associated with shortcut")

// Dir derives the project directory for a shortcut. The command and
// then each stored argument are checked in order; the first token
// naming an existing directory wins, and an existing file yields its
// parent directory.
func Dir(s store.Shortcut) (string, error) {
	for _, token := range s.CommandLine() {
		info, err := os.Stat(token)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return token, nil
		}
		return filepath.Dir(token), nil
	}
	return "", fmt.Errorf("%s: %w", s.Name, ErrNoDir)
}

// FirstFile returns the first regular file in dir, in lexical order.
func FirstFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no files in %s", dir)
}
