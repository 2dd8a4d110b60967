package store

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/todo-go/internal/todo"
)

func exportSample() todo.Tasks {
	return todo.Tasks{
		{Description: "buy milk", Done: false, Tags: []string{"errand"}},
		{Description: "ship it", Done: true, Tags: []string{}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":      FormatJSON,
		"JSON":  FormatJSON,
		"yaml":  FormatYAML,
		" yml ": FormatYAML,
		"toml":  FormatTOML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportSample(), FormatJSON))

	got, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, exportSample(), got)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportSample(), FormatYAML))
	assert.Contains(t, buf.String(), "description: buy milk")

	var got todo.Tasks
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, exportSample(), got)
}

func TestExportTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportSample(), FormatTOML))
	assert.Contains(t, buf.String(), "[[tasks]]")

	var doc tomlDocument
	_, err := toml.Decode(buf.String(), &doc)
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "buy milk", doc.Tasks[0].Description)
	assert.Equal(t, []string{"errand"}, doc.Tasks[0].Tags)
	assert.True(t, doc.Tasks[1].Done)
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Export(&buf, exportSample(), Format("xml")))
}
