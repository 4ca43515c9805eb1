package findings

import (
	"encoding/json"
	"strings"
)

// Canonical tool names, in the fixed pipeline order: dependency scan,
// static analysis, secret scan, dynamic scan.
const (
	ToolTrivy    = "Trivy"
	ToolSemgrep  = "Semgrep"
	ToolGitleaks = "Gitleaks"
	ToolZAP      = "ZAP"
)

// Finding is one normalized security observation extracted from a scanner
// report. Extra carries tool-specific scalar fields (fix version, rule id,
// solution text) that the aggregator passes through uninterpreted.
type Finding struct {
	Tool        string
	Severity    string
	Location    string
	Description string
	Line        *int
	Extra       map[string]any
}

// MarshalJSON flattens Extra next to the fixed keys so the report keeps the
// flat per-finding shape the downstream tooling expects:
// {tool, severity, file, description, line?, ...extra}.
func (f Finding) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, 5+len(f.Extra))
	obj["tool"] = f.Tool
	obj["severity"] = f.Severity
	obj["file"] = f.Location
	obj["description"] = f.Description
	if f.Line != nil {
		obj["line"] = *f.Line
	}
	for k, v := range f.Extra {
		switch k {
		case "tool", "severity", "file", "description", "line":
			// fixed keys win over extras
		default:
			obj[k] = v
		}
	}
	return json.Marshal(obj)
}

// Category returns the human-facing grouping label used by the summary
// breakdown. Unknown tool names pass through as their own category.
func Category(tool string) string {
	switch strings.ToLower(strings.TrimSpace(tool)) {
	case "gitleaks":
		return "Secrets"
	case "semgrep":
		return "Code"
	case "trivy":
		return "Deps"
	case "zap":
		return "ZAP"
	}
	if tool == "" {
		return "Other"
	}
	return tool
}

// CategoryOrder is the fixed rendering order for breakdown annotations.
var CategoryOrder = []string{"Secrets", "Code", "Deps", "ZAP"}
