// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package mathml

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func createTestTree() *Node {
	return Math([]*Node{
		NewElement("msup", NewToken("mi", "x"), NewToken("mn", "2")),
	}, true)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestNewTreeWriter(t *testing.T) {
	writer := NewTreeWriter()
	assert.NotNil(t, writer)
	assert.Equal(t, 2, writer.Indent)
}

func TestTreeWriter_WriteYAML(t *testing.T) {
	writer := NewTreeWriter()

	var buf bytes.Buffer
	require.NoError(t, writer.WriteYAML(createTestTree(), &buf))

	output := buf.String()
	assert.Contains(t, output, "tag: math")
	assert.Contains(t, output, "tag: msup")
	assert.Contains(t, output, "text: x")

	var decoded Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "math", decoded.Tag)
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, "msup", decoded.Children[0].Tag)
}

func TestTreeWriter_WriteYAMLLeafOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTreeWriter().WriteYAML(NewToken("mn", "3"), &buf))
	assert.Equal(t, "tag: mn\ntext: \"3\"\n", buf.String())
}

func TestTreeWriter_WriteYAMLReportsWriteErrors(t *testing.T) {
	err := NewTreeWriter().WriteYAML(createTestTree(), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestTreeWriter_WriteJSON(t *testing.T) {
	writer := NewTreeWriter()

	var buf bytes.Buffer
	require.NoError(t, writer.WriteJSON(createTestTree(), &buf))
	output := buf.String()
	assert.Contains(t, output, `"tag": "math"`)
	assert.Contains(t, output, `"value": "block"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "math", decoded["tag"])
}

func TestTreeWriter_WriteJSONReportsWriteErrors(t *testing.T) {
	err := NewTreeWriter().WriteJSON(createTestTree(), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestTreeWriter_Write(t *testing.T) {
	writer := NewTreeWriter()
	leaf := NewToken("mi", "y")

	var buf bytes.Buffer
	require.NoError(t, writer.Write(leaf, "json", &buf))
	assert.Contains(t, buf.String(), `"text": "y"`)

	buf.Reset()
	require.NoError(t, writer.Write(leaf, "YAML", &buf))
	assert.Contains(t, buf.String(), "text: \"y\"")

	err := writer.Write(leaf, "toml", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
