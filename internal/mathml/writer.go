// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package mathml

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TreeWriter dumps node trees in structured formats. It is meant for
// inspecting what the parser produced.
type TreeWriter struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int
}

// NewTreeWriter creates a new TreeWriter with default settings.
func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		Indent: 2,
	}
}

// WriteYAML writes the tree as YAML to the given writer.
func (w *TreeWriter) WriteYAML(root *Node, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}

	return nil
}

// WriteJSON writes the tree as JSON to the given writer.
func (w *TreeWriter) WriteJSON(root *Node, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.Indent))
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Write dispatches on format ("yaml" or "json").
func (w *TreeWriter) Write(root *Node, format string, out io.Writer) error {
	switch strings.ToLower(format) {
	case "yaml":
		return w.WriteYAML(root, out)
	case "json":
		return w.WriteJSON(root, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
