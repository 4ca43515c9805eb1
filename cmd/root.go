package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	aggregatecmd "github.com/solosec-io/solosec/cmd/aggregate"
	projectcmd "github.com/solosec-io/solosec/cmd/project"
	"github.com/solosec-io/solosec/cmd/version"
	"github.com/solosec-io/solosec/pkg/shared/config"
	solosecerrors "github.com/solosec-io/solosec/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "solosec [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Solosec merges security scanner reports into one normalized verdict.",
		Long: `Solosec consolidates the JSON output of independent security scanners,
	including dependency analysis (trivy), SAST (semgrep), secret search (gitleaks),
	and DAST (zap), into a single normalized report with a pass/fail verdict.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(aggregatecmd.AggregateCmd)
	rootCmd.AddCommand(projectcmd.ProjectCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps errors onto process exit codes. A
// tripped security gate exits non-zero without an extra error line: the
// terminal summary already reported the verdict.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var checkErr *solosecerrors.CheckFailedError
		if errors.As(err, &checkErr) {
			return checkErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	aggregatecmd.Init(AppConfig)
	projectcmd.Init(AppConfig)
	version.Init(AppConfig)
}
