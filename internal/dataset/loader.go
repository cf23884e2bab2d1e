// Package dataset reads the raw penal code spreadsheets exported as JSON or YAML.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load reads one array of records from path. The format is picked from the
// file extension (.json, .yaml, .yml).
func Load(path string) ([]models.RawCrime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	records, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return records, nil
}

// Decode parses data according to ext.
func Decode(ext string, data []byte) ([]models.RawCrime, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeJSON(data []byte) ([]models.RawCrime, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []models.RawCrime
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeYAML(data []byte) ([]models.RawCrime, error) {
	var records []models.RawCrime
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
