package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Common errors
var (
	ErrNotFound = errors.New("no such shortcut")
	ErrExists   = errors.New("shortcut already exists")
)

// Store is a file-backed mapping of project names to shortcuts. The
// file is the sole persistence: every operation reloads it, so a Store
// value never outlives the truth on disk. Shortcuts are kept as an
// ordered list so List reports them in the order they were added.
type Store struct {
	path string
}

// New creates a store backed by the file at path. The file is created
// lazily on the first write; a missing file reads as an empty store.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads all shortcuts from the backing file. A missing or empty
// file yields an empty store.
func (s *Store) Load() ([]Shortcut, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var shortcuts []Shortcut
	if err := json.Unmarshal(data, &shortcuts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return shortcuts, nil
}

// Add stores a new shortcut. Fails with ErrExists if the name is
// already taken.
func (s *Store) Add(name, command string, args []string) error {
	return s.mutate(func(shortcuts []Shortcut) ([]Shortcut, error) {
		if _, ok := find(shortcuts, name); ok {
			return nil, fmt.Errorf("%s: %w", name, ErrExists)
		}
		return append(shortcuts, Shortcut{Name: name, Command: command, Args: args}), nil
	})
}

// Update replaces the command and arguments of an existing shortcut,
// keeping its position in the list. Fails with ErrNotFound if the name
// is absent.
func (s *Store) Update(name, command string, args []string) error {
	return s.mutate(func(shortcuts []Shortcut) ([]Shortcut, error) {
		i, ok := find(shortcuts, name)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		shortcuts[i] = Shortcut{Name: name, Command: command, Args: args}
		return shortcuts, nil
	})
}

// Remove deletes a shortcut. Fails with ErrNotFound if the name is
// absent.
func (s *Store) Remove(name string) error {
	return s.mutate(func(shortcuts []Shortcut) ([]Shortcut, error) {
		i, ok := find(shortcuts, name)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return append(shortcuts[:i], shortcuts[i+1:]...), nil
	})
}

// Get returns the shortcut with the given name, or ErrNotFound.
func (s *Store) Get(name string) (Shortcut, error) {
	shortcuts, err := s.Load()
	if err != nil {
		return Shortcut{}, err
	}
	i, ok := find(shortcuts, name)
	if !ok {
		return Shortcut{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return shortcuts[i], nil
}

// List returns all shortcuts in stored order.
func (s *Store) List() ([]Shortcut, error) {
	return s.Load()
}

// Reset deletes the backing file. Resetting an absent store succeeds.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", s.path, err)
	}
	return nil
}

// mutate runs a read-modify-write cycle under an exclusive flock so
// racing invocations cannot interleave a torn write. Last writer still
// wins across whole invocations.
func (s *Store) mutate(fn func([]Shortcut) ([]Shortcut, error)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking store: %w", err)
	}
	defer lock.Unlock()

	shortcuts, err := s.Load()
	if err != nil {
		return err
	}
	shortcuts, err = fn(shortcuts)
	if err != nil {
		return err
	}
	return s.save(shortcuts)
}

// save persists the full list atomically: write a temp file, then
// rename over the target so a crash mid-write never corrupts the store.
func (s *Store) save(shortcuts []Shortcut) error {
	if shortcuts == nil {
		shortcuts = []Shortcut{}
	}
	data, err := json.MarshalIndent(shortcuts, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// find returns the index of the named shortcut.
func find(shortcuts []Shortcut, name string) (int, bool) {
	for i, s := range shortcuts {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}
