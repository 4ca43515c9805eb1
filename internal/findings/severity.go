package findings

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Canonical severities shared by every tool after normalization.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
	SeverityInfo     = "INFO"
	SeverityUnknown  = "UNKNOWN"
)

// Severities lists the canonical values in rank order, CRITICAL first.
var Severities = []string{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
	SeverityUnknown,
}

// severityAliases maps tool-specific severity vocabularies onto the
// canonical one. Semgrep reports ERROR/WARNING, some tools abbreviate.
var severityAliases = map[string]string{
	"CRIT":          SeverityCritical,
	"ERROR":         SeverityHigh,
	"WARN":          SeverityMedium,
	"WARNING":       SeverityMedium,
	"INFORMATION":   SeverityInfo,
	"INFORMATIONAL": SeverityInfo,
	"":              SeverityUnknown,
}

var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityInfo:     4,
	SeverityUnknown:  5,
}

// NormalizeSeverity maps a raw severity value from any tool onto the shared
// vocabulary. The input may be any decoded JSON value; anything that is not
// a scalar normalizes to UNKNOWN. Known aliases collapse to their canonical
// token. Any other non-empty token passes through verbatim; SeverityRank and
// CanonicalSeverity treat such tokens as UNKNOWN, so they sort and count as
// UNKNOWN without being rewritten here.
func NormalizeSeverity(raw any) string {
	s, ok := coerceString(raw)
	if !ok {
		return SeverityUnknown
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if canonical, ok := severityAliases[s]; ok {
		return canonical
	}
	return s
}

// SeverityRank returns the sort key for a severity token, CRITICAL lowest.
// Tokens outside the canonical set rank as UNKNOWN.
func SeverityRank(severity string) int {
	if rank, ok := severityRank[severity]; ok {
		return rank
	}
	return severityRank[SeverityUnknown]
}

// CanonicalSeverity collapses any token outside the six canonical values to
// UNKNOWN. This is the counting boundary: normalized-but-unrecognized tokens
// keep their literal form in the findings list but land in the UNKNOWN bucket.
func CanonicalSeverity(severity string) string {
	if _, ok := severityRank[severity]; ok {
		return severity
	}
	return SeverityUnknown
}

func coerceString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
