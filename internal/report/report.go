// Package report serializes the aggregated report and renders the terminal
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/solosec-io/solosec/internal/aggregate"
	"github.com/solosec-io/solosec/pkg/shared/files"
)

// WriteJSON writes the aggregated report as indented JSON, creating parent
// directories as needed. This is the one fatal error surface of the
// pipeline: an unwritable output file must reach the caller.
func WriteJSON(path string, rep *aggregate.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := files.CreateFolderIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to prepare output directory: %w", err)
		}
	}
	if err := files.WriteJsonFile(path, data); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", path, err)
	}
	return nil
}
