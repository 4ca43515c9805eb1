// Package aggregate runs the per-tool parsers over a reports directory and
// assembles the unified report document.
package aggregate

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/scanners/gitleaks"
	"github.com/solosec-io/solosec/internal/scanners/semgrep"
	"github.com/solosec-io/solosec/internal/scanners/trivy"
	"github.com/solosec-io/solosec/internal/scanners/zap"
)

// source binds a tool to its fixed report filename and parser. The slice
// order fixes both the concatenation order of findings and the order of
// summary.tools_run.
type source struct {
	Tool  string
	File  string
	Parse func(any) []findings.Finding
}

var sources = []source{
	{findings.ToolTrivy, "trivy.json", trivy.Parse},
	{findings.ToolSemgrep, "semgrep.json", semgrep.Parse},
	{findings.ToolGitleaks, "gitleaks.json", gitleaks.Parse},
	{findings.ToolZAP, "zap.json", zap.Parse},
}

// Summary is the machine-readable header of the aggregated report.
type Summary struct {
	TotalIssues int      `json:"total_issues"`
	ToolsRun    []string `json:"tools_run"`
}

// Report is the aggregated output document.
type Report struct {
	Summary  Summary            `json:"summary"`
	Findings []findings.Finding `json:"findings"`
}

// Run loads every tool report found in dir, parses each one in isolation,
// normalizes severities, and returns the findings stable-sorted by severity
// rank. A malformed document disables only that tool's findings; the run
// itself never fails.
func Run(dir string, logger hclog.Logger) *Report {
	all := make([]findings.Finding, 0)
	toolsRun := make([]string, 0, len(sources))

	for _, src := range sources {
		raw := loadRawReport(dir, src.File, src.Tool)
		if !raw.Present {
			logger.Debug("report file absent, tool did not run", "file", src.File)
			continue
		}
		toolsRun = append(toolsRun, src.Tool)
		if raw.Err != nil {
			logger.Warn("could not parse report, treating as empty", "file", src.File, "error", raw.Err)
			continue
		}
		parsed := src.Parse(raw.Doc)
		logger.Debug("parsed report", "tool", src.Tool, "findings", len(parsed))
		all = append(all, parsed...)
	}

	// Normalize severities so the JSON is consistent too, then order by
	// severity rank. The sort is stable: ties keep parser execution order.
	for i := range all {
		all[i].Severity = findings.NormalizeSeverity(all[i].Severity)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return findings.SeverityRank(all[i].Severity) < findings.SeverityRank(all[j].Severity)
	})

	return &Report{
		Summary:  Summary{TotalIssues: len(all), ToolsRun: toolsRun},
		Findings: all,
	}
}
