// Package trivy maps trivy vulnerability reports onto the shared finding
// model.
package trivy

import (
	"fmt"

	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/rawjson"
)

// Parse extracts findings from a decoded trivy JSON report. Severity stays in
// trivy's own vocabulary; the aggregator normalizes it later. Entries that do
// not have the expected shape are skipped, a missing Results key yields no
// findings.
func Parse(doc any) []findings.Finding {
	var out []findings.Finding

	root, ok := rawjson.Object(doc)
	if !ok {
		return out
	}
	results, ok := rawjson.Array(root["Results"])
	if !ok {
		return out
	}

	for _, r := range results {
		res, ok := rawjson.Object(r)
		if !ok {
			continue
		}
		target := rawjson.StringField(res, "Target", "Unknown")

		for _, v := range rawjson.ArrayField(res, "Vulnerabilities") {
			vuln, ok := rawjson.Object(v)
			if !ok {
				continue
			}
			pkg := rawjson.StringField(vuln, "PkgName", "Unknown package")
			version := rawjson.StringField(vuln, "InstalledVersion", "Unknown version")
			title := rawjson.StringField(vuln, "Title", "")
			if title == "" {
				title = rawjson.StringField(vuln, "VulnerabilityID", "Vulnerability")
			}

			out = append(out, findings.Finding{
				Tool:        findings.ToolTrivy,
				Severity:    rawjson.StringField(vuln, "Severity", findings.SeverityUnknown),
				Location:    target,
				Description: fmt.Sprintf("%s %s - %s", pkg, version, title),
				Extra: map[string]any{
					"fix": rawjson.StringField(vuln, "FixedVersion", "No fix available"),
				},
			})
		}
	}
	return out
}
