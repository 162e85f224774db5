// Package output reads and writes the JSON handoff files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olkkari/menuload/pkg/menuload/models"
)

// Marshal encodes v with 2-space indentation. Non-ASCII text and HTML
// characters are written literally, except U+2028 and U+2029, which
// encoding/json always writes as \u2028 and \u2029. No trailing newline is
// added.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToJSON serializes records as a JSON array. No records encode as [].
func ToJSON(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return Marshal(records)
}

// WriteFile writes records to path, creating parent directories.
func WriteFile(path string, records []models.Record) error {
	data, err := ToJSON(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile loads a JSON array of records from path.
func ReadFile(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
