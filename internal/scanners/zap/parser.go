// Package zap maps OWASP ZAP dynamic-scan alerts onto the shared finding
// model.
package zap

import (
	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/rawjson"
)

// riskCodes maps ZAP's numeric risk codes onto canonical severities.
var riskCodes = map[string]string{
	"3": findings.SeverityHigh,
	"2": findings.SeverityMedium,
	"1": findings.SeverityLow,
	"0": findings.SeverityInfo,
}

// Parse extracts findings from a decoded ZAP JSON report. Unrecognized risk
// codes map to UNKNOWN. The location is the URI of the alert's first
// instance, or the "URL Target" sentinel when no instance carries one.
func Parse(doc any) []findings.Finding {
	var out []findings.Finding

	root, ok := rawjson.Object(doc)
	if !ok {
		return out
	}
	sites, ok := rawjson.Array(root["site"])
	if !ok {
		return out
	}

	for _, s := range sites {
		site, ok := rawjson.Object(s)
		if !ok {
			continue
		}
		for _, a := range rawjson.ArrayField(site, "alerts") {
			alert, ok := rawjson.Object(a)
			if !ok {
				continue
			}

			severity, ok := riskCodes[rawjson.ScalarString(alert, "riskcode")]
			if !ok {
				severity = findings.SeverityUnknown
			}

			target := "URL Target"
			if instances := rawjson.ArrayField(alert, "instances"); len(instances) > 0 {
				if first, ok := rawjson.Object(instances[0]); ok {
					target = rawjson.StringField(first, "uri", target)
				}
			}

			f := findings.Finding{
				Tool:        findings.ToolZAP,
				Severity:    severity,
				Location:    target,
				Description: rawjson.StringField(alert, "alert", "ZAP alert"),
				Extra:       map[string]any{},
			}
			if solution := rawjson.StringField(alert, "solution", ""); solution != "" {
				f.Extra["solution"] = solution
			}
			out = append(out, f)
		}
	}
	return out
}
