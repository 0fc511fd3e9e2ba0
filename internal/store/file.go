package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scrapdiary/scrapdiary/internal/diary"
)

// LoadFile reads a diary snapshot from a .json, .yaml or .yml file.
func LoadFile(path string) (*diary.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var m diary.Model
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}
	return &m, nil
}
