package cmd

import (
	"encoding/json"
	"io"
	"os"
)

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// writeJSONFile writes v indented to path, replacing any existing file.
func writeJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, v, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
