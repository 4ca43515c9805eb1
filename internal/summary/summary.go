// Package summary derives the per-severity counts and per-category breakdown
// used by the terminal view.
package summary

import (
	"fmt"
	"strings"

	"github.com/solosec-io/solosec/internal/findings"
)

// Summary holds counts per canonical severity plus a severity-by-category
// breakdown. Every canonical severity has a bucket even when zero.
type Summary struct {
	Counts    map[string]int
	Breakdown map[string]map[string]int
	Total     int
}

// Compute tallies the findings. Severity tokens outside the canonical set
// collapse into the UNKNOWN bucket here, at the counting boundary.
func Compute(list []findings.Finding) Summary {
	counts := make(map[string]int, len(findings.Severities))
	breakdown := make(map[string]map[string]int, len(findings.Severities))
	for _, sev := range findings.Severities {
		counts[sev] = 0
		breakdown[sev] = map[string]int{}
	}

	for _, f := range list {
		sev := findings.CanonicalSeverity(findings.NormalizeSeverity(f.Severity))
		counts[sev]++
		breakdown[sev][findings.Category(f.Tool)]++
	}

	return Summary{Counts: counts, Breakdown: breakdown, Total: len(list)}
}

// FormatBreakdown renders a category breakdown as "Secrets: 2, Code: 1",
// following the given category order and skipping empty buckets. An empty
// order falls back to nothing rather than map iteration order.
func FormatBreakdown(items map[string]int, order []string) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		if items[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", k, items[k]))
		}
	}
	return strings.Join(parts, ", ")
}
