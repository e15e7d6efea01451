// Package config resolves the on-disk locations used by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	// Default to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "data"
	}
	return filepath.Join(cwd, "data")
}

// GetCompiledPath returns the directory holding the compiled template corpus.
// It checks for COMPILED_PATH environment variable, otherwise uses a default.
func GetCompiledPath() string {
	if path := os.Getenv("COMPILED_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "compiled")
}

// GetIndexPath returns the directory the scored and curated indexes are written to.
// It checks for INDEX_PATH environment variable, otherwise uses a default.
func GetIndexPath() string {
	if path := os.Getenv("INDEX_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "index")
}

// GetSkinsPath returns an optional YAML file with extra design skins.
// Empty when SKINS_PATH is unset.
func GetSkinsPath() string {
	return os.Getenv("SKINS_PATH")
}

// ScoredIndexName is the file name of the full scored corpus index.
const ScoredIndexName = "templates_scored.json"

// CuratedIndexName is the file name of the curated top-N index.
func CuratedIndexName(topN int) string {
	return fmt.Sprintf("curated_top%d.json", topN)
}
