package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yaml-inventory/tests/testutil"
)

func runBinary(t *testing.T, args ...string) []byte {
	t.Helper()
	root := testutil.RepoRoot(t)
	cmd := exec.Command("go", append([]string{"run", "./cmd/yaml-inventory"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))
	return out
}

func TestListCommandE2E(t *testing.T) {
	out := runBinary(t, "--list", "--dir", "fixtures")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Contains(t, doc, "_meta")
	assert.Contains(t, doc, "all")

	web := doc["web"].(map[string]any)
	assert.Equal(t, []any{"web1", "web2"}, web["hosts"])
}

func TestHostCommandE2E(t *testing.T) {
	out := runBinary(t, "--host", "db1", "--dir", "fixtures")

	var vars map[string]any
	require.NoError(t, json.Unmarshal(out, &vars))
	assert.Equal(t, "primary", vars["db_role"])
	assert.Equal(t, float64(5432), vars["db_port"])
}

func TestUnknownHostE2E(t *testing.T) {
	out := runBinary(t, "--host", "nope", "--dir", "fixtures")
	assert.JSONEq(t, `{}`, string(out))
}
