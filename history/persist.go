package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFile is the history file name used when no path is given.
const DefaultFile = "colors_history.json"

// ErrBadFormat reports a history file whose content is not a JSON
// array of strings.
var ErrBadFormat = errors.New("history file is not a JSON array of strings")

// Save writes entries (newest first) to path as a pretty-printed JSON
// array of strings. An existing file is overwritten. The write goes
// through a temp file + rename so a crash cannot leave a truncated
// file behind.
func Save(path string, entries []string) error {
	if entries == nil {
		entries = []string{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Load reads a history file written by Save and returns up to
// MaxEntries entries in file order (newest first). A missing file is
// reported with fs.ErrNotExist, malformed content with ErrBadFormat;
// both are recoverable conditions for the caller.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
		}
		return nil, err
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries, nil
}
