package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yaml-inventory/internal/types"
)

func writeSource(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const markedSource = `---
#### YAML inventory file
hosts:
  - host: web1
    groups:
      - web
    hostvars:
      tier: front
  - host: db1
`

func TestLoadSourceFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "inventory.yml", markedSource)

	doc, err := NewSourceFileAdapter().Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Hosts, 2)
	assert.Equal(t, "web1", doc.Hosts[0].Host)
	assert.Equal(t, []string{"web"}, doc.Hosts[0].Groups)
	assert.Equal(t, types.Vars{"tier": "front"}, doc.Hosts[0].HostVars)
	assert.Equal(t, "db1", doc.Hosts[1].Host)
	assert.Nil(t, doc.Hosts[1].Groups)
}

func TestLoadSourceMissingMarker(t *testing.T) {
	path := writeSource(t, t.TempDir(), "inventory.yml", "hosts:\n  - host: web1\n")

	_, err := NewSourceFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadSourceMalformedYAML(t *testing.T) {
	path := writeSource(t, t.TempDir(), "inventory.yml",
		"---\n#### YAML inventory file\nhosts: [unclosed\n")

	_, err := NewSourceFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadSourceMissingHostName(t *testing.T) {
	path := writeSource(t, t.TempDir(), "inventory.yml",
		"---\n#### YAML inventory file\nhosts:\n  - groups: [web]\n")

	_, err := NewSourceFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadSourceNotFound(t *testing.T) {
	_, err := NewSourceFileAdapter().Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestHasSourceMarker(t *testing.T) {
	assert.True(t, HasSourceMarker([]byte(markedSource)))
	assert.False(t, HasSourceMarker([]byte("---\n# some other yaml\n")))
	assert.False(t, HasSourceMarker([]byte("---")))
}
