package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartref/internal/chart"
)

const relationYAML = `
name: flows
family: relation
x:
  - column: Region
y:
  - kind: aggregate
    column: Sales
    formula: Sum
aesthetics:
  text: {column: Label}
relation:
  source: {column: From}
  target: {column: To, group: to_key}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(relationYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "default", f.Style)
	assert.Equal(t, "relation", f.Family)
	require.Len(t, f.X, 1)
	require.Len(t, f.Y, 1)
	assert.Equal(t, KindAggregate, f.Y[0].Kind)
	require.NotNil(t, f.Relation)
	assert.Equal(t, "to_key", f.Relation.Target.Group)
	require.NotNil(t, f.Aesthetics)
	assert.Equal(t, "Label", f.Aesthetics.Text.Column)
}

func TestParseJSON(t *testing.T) {
	data := `{"family": "gantt", "y": [{"column": "Task"}], "gantt": {"start": {"column": "Begin"}}}`

	f, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "gantt", f.Family)
	assert.Equal(t, "Begin", f.Gantt.Start.Column)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("family: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse descriptor")
}

func TestLoadFileRoundTrip(t *testing.T) {
	f, err := Parse([]byte(relationYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, chart.FamilyRelation, b.Family())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
