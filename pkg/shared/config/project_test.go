package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveProjectDefaults(t *testing.T) {
	resolved := ResolveProject(t.TempDir(), "", "")

	assert.Equal(t, "", resolved.URL)
	assert.Empty(t, resolved.ExcludeDirs)
	assert.Equal(t, map[string]bool{"trivy": true, "semgrep": true, "gitleaks": true, "zap": true}, resolved.Tools)
}

func TestResolveProjectReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, `
target_url: "http://staging.example.test"
exclude_dirs:
  - "tests/"
  - "legacy/"
tools:
  semgrep: false
  nuclei: true
`)

	resolved := ResolveProject(dir, "", "")

	assert.Equal(t, "http://staging.example.test", resolved.URL)
	assert.Equal(t, []string{"tests/", "legacy/"}, resolved.ExcludeDirs)
	assert.False(t, resolved.Tools["semgrep"])
	assert.True(t, resolved.Tools["trivy"])
	// unknown tool keys are ignored
	assert.NotContains(t, resolved.Tools, "nuclei")
}

func TestResolveProjectCLIURLWins(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "target_url: http://from-file.test\n")

	resolved := ResolveProject(dir, "http://from-cli.test", "")
	assert.Equal(t, "http://from-cli.test", resolved.URL)
}

func TestResolveProjectURLAlias(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "url: http://alias.test\n")

	resolved := ResolveProject(dir, "", "")
	assert.Equal(t, "http://alias.test", resolved.URL)
}

func TestResolveProjectZapDisabledClearsURL(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, `
target_url: http://target.test
tools:
  zap: false
`)

	resolved := ResolveProject(dir, "http://cli.test", "")
	assert.Equal(t, "", resolved.URL)
	assert.False(t, resolved.Tools["zap"])
}

func TestResolveProjectBrokenFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "tools: [not, a, map\n")

	resolved := ResolveProject(dir, "http://cli.test", "")
	assert.Equal(t, "http://cli.test", resolved.URL)
	assert.True(t, resolved.Tools["zap"])
}

func TestResolveProjectExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("target_url: http://custom.test\n"), 0644))

	resolved := ResolveProject(t.TempDir(), "", custom)
	assert.Equal(t, "http://custom.test", resolved.URL)
}
