// Package export renders a filtered task set, with its aggregate stats, as
// YAML or JSON for reporting and downstream tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"timesheet/internal/api"
)

// Format selects the serialization for Write.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a string into a known Format.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatYAML:
		return FormatYAML, true
	case FormatJSON:
		return FormatJSON, true
	default:
		return "", false
	}
}

// Document is the exported report shape.
type Document struct {
	GeneratedAt string     `json:"generatedAt" yaml:"generated_at"`
	Tasks       []api.Task `json:"tasks" yaml:"tasks"`
	Stats       api.Stats  `json:"stats" yaml:"stats"`
}

// NewDocument assembles a report over an already-filtered task set.
func NewDocument(list []api.Task, stats api.Stats) Document {
	return Document{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Tasks:       list,
		Stats:       stats,
	}
}

// Write serializes the document to w in the requested format.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
