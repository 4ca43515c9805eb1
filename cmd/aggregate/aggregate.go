package aggregate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solosec-io/solosec/internal/aggregate"
	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/report"
	"github.com/solosec-io/solosec/internal/summary"
	"github.com/solosec-io/solosec/pkg/shared/config"
	solosecerrors "github.com/solosec-io/solosec/pkg/shared/errors"
	"github.com/solosec-io/solosec/pkg/shared/files"
	"github.com/solosec-io/solosec/pkg/shared/logger"
)

// RunOptionsAggregate holds the arguments for the aggregate command.
type RunOptionsAggregate struct {
	ReportsDir     string
	OutputFile     string
	SarifFile      string
	FailOnCritical bool
}

var (
	AppConfig             *config.Config
	aggregateOptions      RunOptionsAggregate
	exampleAggregateUsage = `  # Aggregate scanner reports from ./reports into solosec-report.json
  solosec aggregate --reports-dir ./reports --output solosec-report.json

  # Also export the findings as SARIF
  solosec aggregate --reports-dir ./reports --output report.json --sarif report.sarif

  # Report counts without failing the build on critical findings
  solosec aggregate --reports-dir ./reports --output report.json --fail-on-critical=false`
)

// AggregateCmd represents the aggregate command.
var AggregateCmd = &cobra.Command{
	Use:                   "aggregate --reports-dir/-d PATH [--output/-o PATH] [--sarif PATH] [--fail-on-critical]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAggregateUsage,
	Short:                 "Merge scanner JSON reports into one normalized report with a pass/fail verdict",
	RunE:                  runAggregateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runAggregateCommand executes the aggregate command.
func runAggregateCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-aggregate")

	if err := validateAggregateArgs(&aggregateOptions); err != nil {
		log.Error("invalid aggregate arguments", "error", err)
		return err
	}

	outputPath, _, err := files.DetermineFileFullPath(aggregateOptions.OutputFile, "solosec-report.json")
	if err != nil {
		log.Error("failed to resolve output path", "error", err)
		return err
	}

	log.Info("aggregating reports", "dir", aggregateOptions.ReportsDir)
	rep := aggregate.Run(aggregateOptions.ReportsDir, log)

	if err := report.WriteJSON(outputPath, rep); err != nil {
		log.Error("failed to write aggregated report", "error", err)
		return err
	}
	log.Info("report generated", "path", outputPath, "issues", rep.Summary.TotalIssues)

	if aggregateOptions.SarifFile != "" {
		if err := report.WriteSARIF(aggregateOptions.SarifFile, rep.Findings); err != nil {
			log.Error("failed to write sarif export", "error", err)
			return err
		}
		log.Info("sarif export written", "path", aggregateOptions.SarifFile)
	}

	sum := summary.Compute(rep.Findings)
	failed := report.Render(os.Stdout, sum, outputPath, aggregateOptions.FailOnCritical, report.IsTerminal(os.Stdout))
	if failed {
		return solosecerrors.NewCheckFailedError(sum.Counts[findings.SeverityCritical])
	}
	return nil
}

func init() {
	AggregateCmd.Flags().StringVarP(&aggregateOptions.ReportsDir, "reports-dir", "d", "", "directory containing tool JSON outputs (trivy.json, semgrep.json, gitleaks.json, zap.json)")
	AggregateCmd.Flags().StringVarP(&aggregateOptions.OutputFile, "output", "o", "solosec-report.json", "path for the aggregated JSON report; a directory gets solosec-report.json appended")
	AggregateCmd.Flags().StringVar(&aggregateOptions.SarifFile, "sarif", "", "optional path for a SARIF export of the findings")
	AggregateCmd.Flags().BoolVar(&aggregateOptions.FailOnCritical, "fail-on-critical", true, "exit non-zero when critical findings are present")
}
