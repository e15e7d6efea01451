package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeblew999/templateforge/pkg/document"
)

// readDocument loads a template from path, or stdin when path is "-".
func readDocument(in io.Reader, path string) (document.Document, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc := document.Document{HTML: string(raw)}
	if path != "-" {
		doc.ID = path
		doc.Type = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
