/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Status string `json:"status" yaml:"status"`
	Count  int    `json:"count"  yaml:"count"`
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	err := w.Serialize(t.Context(), report{Status: "pass", Count: 12})
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"pass","count":12}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"status\"")
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	err := w.Serialize(t.Context(), report{Status: "fail", Count: 3})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "status: fail")
	assert.Contains(t, buf.String(), "count: 3")
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("toml"), &buf)

	err := w.Serialize(t.Context(), report{Status: "pass"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status"`)
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(t.Context(), report{Status: "pass", Count: 1}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"pass","count":1}`, string(data))
}

func TestCloseIsIdempotentOnStdoutWriter(t *testing.T) {
	w := NewStdoutWriter(FormatJSON)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
