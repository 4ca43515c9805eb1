package semgrep

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solosec-io/solosec/internal/findings"
)

func decodeFixture(t *testing.T, name string) any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	var doc any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestParse(t *testing.T) {
	out := Parse(decodeFixture(t, "semgrep_report.json"))
	require.Len(t, out, 3)

	f := out[0]
	assert.Equal(t, findings.ToolSemgrep, f.Tool)
	assert.Equal(t, "ERROR", f.Severity)
	assert.Equal(t, "app/runner.py", f.Location)
	assert.Equal(t, "Detected subprocess call with shell=True", f.Description)
	assert.Equal(t, "python.lang.security.audit.dangerous-subprocess-use", f.Extra["rule_id"])
	require.NotNil(t, f.Line)
	assert.Equal(t, 23, *f.Line)

	// result with no severity, message, check_id, or line gets defaults
	f = out[2]
	assert.Equal(t, "UNKNOWN", f.Severity)
	assert.Equal(t, "app/legacy.py", f.Location)
	assert.Equal(t, "Semgrep finding", f.Description)
	assert.Equal(t, "Unknown", f.Extra["rule_id"])
	assert.Nil(t, f.Line)
}

func TestParseSkipsNonObjectResults(t *testing.T) {
	raw := `{"results": [17, null, {"path": "a.py", "extra": {"severity": "INFO"}}]}`
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	out := Parse(doc)
	require.Len(t, out, 1)
	assert.Equal(t, "INFO", out[0].Severity)
}

func TestParseMissingResults(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{"version": "1.45.0"}`), &doc))
	assert.Empty(t, Parse(doc))
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]any{}))
}
