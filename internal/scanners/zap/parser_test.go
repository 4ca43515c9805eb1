package zap

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
	out := Parse(decodeFixture(t, "zap_report.json"))
	require.Len(t, out, 3)

	f := out[0]
	assert.Equal(t, findings.ToolZAP, f.Tool)
	assert.Equal(t, findings.SeverityMedium, f.Severity)
	assert.Equal(t, "http://example.test/login", f.Location)
	assert.Equal(t, "Content Security Policy (CSP) Header Not Set", f.Description)
	assert.Contains(t, f.Extra["solution"], "Content-Security-Policy")

	// bare numeric riskcode, no instances
	f = out[1]
	assert.Equal(t, findings.SeverityHigh, f.Severity)
	assert.Equal(t, "URL Target", f.Location)
	assert.NotContains(t, f.Extra, "solution")

	// unmapped riskcode "9" degrades to UNKNOWN rather than failing
	assert.Equal(t, findings.SeverityUnknown, out[2].Severity)
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	raw := `{"site": [
		"not-a-site",
		{"alerts": ["nope", {"alert": "X", "riskcode": "1", "instances": ["bad"]}]}
	]}`
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	out := Parse(doc)
	require.Len(t, out, 1)
	assert.Equal(t, findings.SeverityLow, out[0].Severity)
	assert.Equal(t, "URL Target", out[0].Location)
}

func TestParseMissingSite(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{"@version": "2.14.0"}`), &doc))
	assert.Empty(t, Parse(doc))
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]any{}))
}

func TestParseMissingAlertText(t *testing.T) {
	raw := `{"site": [{"alerts": [{"riskcode": "0"}]}]}`
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	out := Parse(doc)
	require.Len(t, out, 1)
	assert.Equal(t, "ZAP alert", out[0].Description)
	assert.Equal(t, findings.SeverityInfo, out[0].Severity)
}
