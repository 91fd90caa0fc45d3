package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the ledger as one JSON array in a single file, the
// direct analogue of the browser slot the terminal UI writes. Saves are
// atomic (temp file + rename) so a crash mid-write cannot corrupt the
// slot.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed port at path. The parent directory
// is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the slot. A missing file means no prior state and returns
// a nil collection with no error.
func (f *FileStore) Load() ([]Trade, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var trades []Trade
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("parse ledger: %w", err)
	}
	return trades, nil
}

// Save overwrites the slot with the full collection.
func (f *FileStore) Save(trades []Trade) error {
	if trades == nil {
		trades = []Trade{}
	}
	data, err := json.MarshalIndent(trades, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create ledger dir: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
