package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solosec-io/solosec/internal/aggregate"
	"github.com/solosec-io/solosec/internal/findings"
)

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gitleaks.json"),
		[]byte(`[{"RuleID": "aws-access-token", "File": ".env", "StartLine": 3}]`), 0644))

	rep := aggregate.Run(dir, hclog.NewNullLogger())

	// parent directories are created on demand
	out := filepath.Join(dir, "out", "nested", "report.json")
	require.NoError(t, WriteJSON(out, rep))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded struct {
		Summary struct {
			TotalIssues int      `json:"total_issues"`
			ToolsRun    []string `json:"tools_run"`
		} `json:"summary"`
		Findings []map[string]any `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1, decoded.Summary.TotalIssues)
	assert.Equal(t, []string{"Gitleaks"}, decoded.Summary.ToolsRun)
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, "CRITICAL", decoded.Findings[0]["severity"])
	assert.Equal(t, ".env", decoded.Findings[0]["file"])
	assert.Equal(t, "REDACTED", decoded.Findings[0]["snippet"])
}

func TestWriteJSONUnwritablePathFails(t *testing.T) {
	rep := &aggregate.Report{Findings: []findings.Finding{}}
	err := WriteJSON(string([]byte{0}), rep)
	assert.Error(t, err)
}

func TestWriteSARIF(t *testing.T) {
	line := 7
	list := []findings.Finding{
		{
			Tool:        findings.ToolSemgrep,
			Severity:    findings.SeverityHigh,
			Location:    "app/views.py",
			Description: "SQL injection",
			Line:        &line,
			Extra:       map[string]any{"rule_id": "python.sqli"},
		},
		{
			Tool:        findings.ToolZAP,
			Severity:    findings.SeverityInfo,
			Location:    "http://example.test/",
			Description: "Missing header",
		},
	}

	out := filepath.Join(t.TempDir(), "sarif", "report.sarif")
	require.NoError(t, WriteSARIF(out, list))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "solosec", doc.Runs[0].Tool.Driver.Name)
	require.Len(t, doc.Runs[0].Results, 2)
	assert.Equal(t, "python.sqli", doc.Runs[0].Results[0].RuleID)
	assert.Equal(t, "error", doc.Runs[0].Results[0].Level)
	assert.Equal(t, "note", doc.Runs[0].Results[1].Level)
}

func TestSarifLevel(t *testing.T) {
	assert.Equal(t, "error", sarifLevel(findings.SeverityCritical))
	assert.Equal(t, "error", sarifLevel(findings.SeverityHigh))
	assert.Equal(t, "warning", sarifLevel(findings.SeverityMedium))
	assert.Equal(t, "note", sarifLevel(findings.SeverityLow))
	assert.Equal(t, "note", sarifLevel(findings.SeverityInfo))
	assert.Equal(t, "none", sarifLevel(findings.SeverityUnknown))
	assert.Equal(t, "none", sarifLevel("MODERATE"))
}
