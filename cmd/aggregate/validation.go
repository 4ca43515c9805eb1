package aggregate

import (
	"fmt"
	"os"

	"github.com/solosec-io/solosec/pkg/shared/files"
)

// validateAggregateArgs checks the aggregate command flags and normalizes
// the reports directory path.
func validateAggregateArgs(opts *RunOptionsAggregate) error {
	if opts.ReportsDir == "" {
		return fmt.Errorf("'reports-dir' flag must be specified")
	}

	dir, err := files.ExpandPath(opts.ReportsDir)
	if err != nil {
		return fmt.Errorf("failed to expand reports directory path: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("reports directory %q is not accessible: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("reports path %q is not a directory", dir)
	}
	opts.ReportsDir = dir

	if opts.OutputFile == "" {
		return fmt.Errorf("'output' flag must be specified")
	}
	return nil
}
