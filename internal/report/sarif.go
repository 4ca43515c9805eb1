package report

import (
	"fmt"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/pkg/shared/files"
)

// WriteSARIF exports the findings as a SARIF 2.1.0 document for consumers
// that ingest SARIF (code scanning dashboards, IDE plugins).
func WriteSARIF(path string, list []findings.Finding) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("solosec", "https://github.com/solosec-io/solosec")
	for _, f := range list {
		ruleID := f.Tool
		if id, ok := f.Extra["rule_id"].(string); ok && id != "" {
			ruleID = id
		}

		physical := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(f.Location))
		if f.Line != nil {
			physical.WithRegion(sarif.NewRegion().WithStartLine(*f.Line))
		}

		run.CreateResultForRule(ruleID).
			WithLevel(sarifLevel(f.Severity)).
			WithMessage(sarif.NewTextMessage(f.Description)).
			AddLocation(sarif.NewLocationWithPhysicalLocation(physical))
	}
	report.AddRun(run)

	if dir := filepath.Dir(path); dir != "." {
		if err := files.CreateFolderIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to prepare output directory: %w", err)
		}
	}
	if err := report.WriteFile(path); err != nil {
		return fmt.Errorf("failed to write sarif report to %q: %w", path, err)
	}
	return nil
}

func sarifLevel(severity string) string {
	switch findings.CanonicalSeverity(severity) {
	case findings.SeverityCritical, findings.SeverityHigh:
		return "error"
	case findings.SeverityMedium:
		return "warning"
	case findings.SeverityLow, findings.SeverityInfo:
		return "note"
	default:
		return "none"
	}
}
