// Package gitleaks maps gitleaks secret-scan results onto the shared finding
// model.
package gitleaks

import (
	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/rawjson"
)

// Parse extracts findings from a decoded gitleaks JSON report, which is a
// bare array of leaks. Every leak is CRITICAL: a committed secret has no
// severity gradient. The raw secret never leaves the report; the snippet
// field is always the redaction marker.
func Parse(doc any) []findings.Finding {
	var out []findings.Finding

	leaks, ok := rawjson.Array(doc)
	if !ok {
		return out
	}

	for _, l := range leaks {
		leak, ok := rawjson.Object(l)
		if !ok {
			continue
		}
		ruleID := rawjson.StringField(leak, "RuleID", "Unknown")

		f := findings.Finding{
			Tool:        findings.ToolGitleaks,
			Severity:    findings.SeverityCritical,
			Location:    rawjson.StringField(leak, "File", "Unknown"),
			Description: "Secret detected: " + ruleID,
			Extra: map[string]any{
				"snippet": "REDACTED",
			},
		}
		if line, ok := rawjson.IntField(leak, "StartLine"); ok {
			f.Line = &line
		}
		out = append(out, f)
	}
	return out
}
