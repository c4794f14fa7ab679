package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/solatis/segmentvet/internal/types"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the on-disk catalog layout shared by YAML and JSON files.
type document struct {
	Segments []types.Segment `json:"segments" yaml:"segments"`
}

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q (expected .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// LoadFile reads and validates a catalog file. The format follows the
// file extension.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a catalog document from r and validates it.
// Unknown fields are rejected so typos in hand-edited files surface early.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	var doc document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	return New(doc.Segments)
}

// Encode writes c to w as a catalog document.
func Encode(w io.Writer, c *Catalog, format Format) error {
	doc := document{Segments: c.Segments()}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}
