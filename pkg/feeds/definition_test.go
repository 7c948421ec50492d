package feeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinitions(t *testing.T) {
	directory := t.TempDir()

	contents := `identifier: muni
name: San Francisco Municipal Railway
path: muni
field_aliases:
  stop_identifier: stop_id
---
identifier: bart
name: Bay Area Rapid Transit
path: bart
rail_only: true
rail_rule: AgencyRailOnly && Latitude < 38.1
`
	require.NoError(t, os.WriteFile(filepath.Join(directory, "agencies.yaml"), []byte(contents), 0644))

	definitions, err := LoadDefinitions(directory)
	require.NoError(t, err)
	require.Len(t, definitions, 2)

	assert.Equal(t, "muni", definitions[0].Identifier)
	assert.Equal(t, "stop_id", definitions[0].FieldAliases["stop_identifier"])
	assert.True(t, definitions[1].RailOnly)
	assert.NotEmpty(t, definitions[1].RailRule)
}

func TestLoadDefinitionsEmptyDirectory(t *testing.T) {
	_, err := LoadDefinitions(t.TempDir())
	assert.Error(t, err)
}
