// Package semgrep maps semgrep static-analysis results onto the shared
// finding model.
package semgrep

import (
	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/rawjson"
)

// Parse extracts findings from a decoded semgrep JSON report. Severity comes
// from semgrep's extra.severity (ERROR/WARNING/INFO vocabulary) and is
// normalized by the aggregator.
func Parse(doc any) []findings.Finding {
	var out []findings.Finding

	root, ok := rawjson.Object(doc)
	if !ok {
		return out
	}
	results, ok := rawjson.Array(root["results"])
	if !ok {
		return out
	}

	for _, r := range results {
		res, ok := rawjson.Object(r)
		if !ok {
			continue
		}
		extra := rawjson.ObjectField(res, "extra")
		start := rawjson.ObjectField(res, "start")

		f := findings.Finding{
			Tool:        findings.ToolSemgrep,
			Severity:    rawjson.StringField(extra, "severity", findings.SeverityUnknown),
			Location:    rawjson.StringField(res, "path", "Unknown"),
			Description: rawjson.StringField(extra, "message", "Semgrep finding"),
			Extra: map[string]any{
				"rule_id": rawjson.StringField(res, "check_id", "Unknown"),
			},
		}
		if line, ok := rawjson.IntField(start, "line"); ok {
			f.Line = &line
		}
		out = append(out, f)
	}
	return out
}
