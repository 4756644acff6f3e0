/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is outside the supported set.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns all supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// Writer serializes structured data to an output destination.
// Close must be called to release file handles when using
// NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a new Writer with the specified format and output
// destination. If output is nil, os.Stdout is used. Unknown formats
// default to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter creates a new Writer that outputs to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer that outputs to the given file
// path. If the path is empty or the file cannot be created, it falls back
// to stdout. Call Close on the returned Writer.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" {
		return NewStdoutWriter(format)
	}
	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout",
			"error", err, "path", path)
		return NewStdoutWriter(format)
	}
	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Close releases any resources associated with the Writer. It is safe to
// call multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes the data in the configured format. Context is provided
// for consistency with the Serializer interface; file and stdout writes
// are fast and blocking.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	switch w.format {
	case FormatJSON:
		encoder := json.NewEncoder(w.output)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w.output)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}
