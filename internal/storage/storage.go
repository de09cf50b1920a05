package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Tiliavir/timebox-tracker/internal/model"
	"github.com/Tiliavir/timebox-tracker/internal/timecalc"
)

// DataFileName is the name of the JSON file inside the data directory.
const DataFileName = "timeboxes.json"

// HomeEnv overrides the default data directory.
const HomeEnv = "TBT_HOME"

// ErrAlreadyInitialized is returned by Init when a store exists already.
var ErrAlreadyInitialized = errors.New("time tracker already exists")

// BaseDir returns the root data directory: $TBT_HOME, or ~/.tbt.
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tbt"), nil
}

// EnsureDir creates dir and a .gitignore that keeps its content out of
// version control.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	gitignore := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(gitignore); err == nil {
		return nil
	}
	if err := os.WriteFile(gitignore, []byte("*"), 0o600); err != nil {
		return fmt.Errorf("storage error writing %s: %w", gitignore, err)
	}
	slog.Debug("created .gitignore", "path", gitignore)
	return nil
}

// JSONFile persists snapshots as a single JSON document.
type JSONFile struct {
	Dir    string
	Pretty bool
}

// NewJSONFile returns a store for <dir>/timeboxes.json.
func NewJSONFile(dir string, pretty bool) *JSONFile {
	return &JSONFile{Dir: dir, Pretty: pretty}
}

// Path returns the location of the data file.
func (f *JSONFile) Path() string {
	return filepath.Join(f.Dir, DataFileName)
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (f *JSONFile) Load() (model.Snapshot, error) {
	path := f.Path()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("no data file yet, starting empty", "path", path)
		return model.Snapshot{Finished: []model.TimeBox{}}, nil
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var s model.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Snapshot{}, fmt.Errorf("corrupt JSON in %s, fix the file by hand: %w", path, err)
	}
	slog.Debug("loaded data file", "path", path, "finished", len(s.Finished), "active", s.Active != nil)
	return s, nil
}

// Save atomically replaces the data file with s.
func (f *JSONFile) Save(s model.Snapshot) error {
	if err := EnsureDir(f.Dir); err != nil {
		return err
	}
	if s.Finished == nil {
		s.Finished = []model.TimeBox{}
	}

	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to a swap file next to the target, then rename.
	path := f.Path()
	swapPath := filepath.Join(f.Dir, ".__"+timecalc.GenerateID(time.Now())+"_swap_"+DataFileName)
	if err := os.WriteFile(swapPath, data, 0o600); err != nil {
		_ = os.Remove(swapPath)
		return fmt.Errorf("storage error writing swap file %s: %w", swapPath, err)
	}
	slog.Debug("wrote swap file", "path", swapPath)

	if err := os.Rename(swapPath, path); err != nil {
		return fmt.Errorf("storage error replacing %s with swap file %s: %w; "+
			"copy the swap file over the data file by hand before running again, "+
			"otherwise changes will be lost", path, swapPath, err)
	}
	slog.Debug("replaced data file", "path", path)
	return nil
}

// Init creates the data directory and an empty data file. It refuses to
// overwrite an existing one.
func (f *JSONFile) Init() error {
	if _, err := os.Stat(f.Path()); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, f.Path())
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("storage error reading %s: %w", f.Path(), err)
	}
	return f.Save(model.Snapshot{})
}
