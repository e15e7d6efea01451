package curate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Index is the on-disk shape of the scored and curated files.
type Index struct {
	Items []Item `json:"items"`
}

// WriteIndex writes items to path as {"items": [...]}, creating parent
// directories as needed.
func WriteIndex(path string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create index dir: %w", err)
	}

	data, err := json.MarshalIndent(Index{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write index %s: %w", path, err)
	}
	return nil
}

// ReadIndex loads an index written by WriteIndex.
func ReadIndex(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to decode index %s: %w", path, err)
	}
	return idx.Items, nil
}
