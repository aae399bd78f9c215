// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBuildConfig executes `crmtool build-config` against an isolated
// build file path so a crmtool.yaml in the working directory cannot
// leak into the test.
func runBuildConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs(append([]string{"build-config"}, args...))

	err := cmd.Execute()
	return b.String(), err
}

func isolatedBuildFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "crmtool.yaml")
}

func TestBuildConfigLocal(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITHUB_REPOSITORY", "")

	out, err := runBuildConfig(t, "--file", isolatedBuildFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "BASE_PATH=/\n")
	assert.Contains(t, out, "PORT=3000\n")
	assert.Contains(t, out, "OPEN=true\n")
}

func TestBuildConfigOnCI(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_REPOSITORY", "acme/crm-ui")

	out, err := runBuildConfig(t, "--file", isolatedBuildFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "BASE_PATH=/crm-ui/\n")
}

func TestBuildConfigYamlFormat(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITHUB_REPOSITORY", "")

	out, err := runBuildConfig(t, "--file", isolatedBuildFile(t), "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "base_path: /")
	assert.Contains(t, out, "port: 3000")
	assert.Contains(t, out, "open: true")
}

func TestBuildConfigFileOverride(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITHUB_REPOSITORY", "")

	path := isolatedBuildFile(t)
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o600))

	out, err := runBuildConfig(t, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PORT=8080\n")
}

func TestBuildConfigUnknownFormat(t *testing.T) {
	_, err := runBuildConfig(t, "--file", isolatedBuildFile(t), "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
