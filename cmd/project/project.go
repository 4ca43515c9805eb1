package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solosec-io/solosec/pkg/shared/config"
	"github.com/solosec-io/solosec/pkg/shared/logger"
)

// RunOptionsProject holds the arguments for the project command.
type RunOptionsProject struct {
	ProjectRoot string
	CliURL      string
	ConfigPath  string
	Format      string
}

var (
	AppConfig           *config.Config
	projectOptions      RunOptionsProject
	exampleProjectUsage = `  # Print the resolved project configuration as JSON
  solosec project --root /path/to/project

  # Override the target URL from the command line
  solosec project --root . --url http://staging.example.test

  # Emit bash-evaluable key=value lines for CI wrappers
  solosec project --root . --format bash`
)

// toolOrder fixes the emission order of per-tool toggles in bash output.
var toolOrder = []string{"trivy", "semgrep", "gitleaks", "zap"}

// ProjectCmd represents the project command: it resolves which scanners are
// enabled and which URL the dynamic scanner should target, from .solosec.yaml
// plus command-line overrides.
var ProjectCmd = &cobra.Command{
	Use:                   "project --root PATH [--url URL] [--config PATH] [--format json|bash]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleProjectUsage,
	Short:                 "Resolve the per-project configuration (target URL, enabled tools)",
	RunE:                  runProjectCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runProjectCommand executes the project command.
func runProjectCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-project")

	resolved := config.ResolveProject(projectOptions.ProjectRoot, projectOptions.CliURL, projectOptions.ConfigPath)
	log.Debug("resolved project configuration", "url", resolved.URL, "tools", resolved.Tools)

	switch projectOptions.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(resolved); err != nil {
			return fmt.Errorf("failed to encode project configuration: %w", err)
		}
	case "bash":
		fmt.Printf("SOLOSEC_URL=%s\n", bashEscape(resolved.URL))
		fmt.Printf("SOLOSEC_EXCLUDE_DIRS=%s\n", bashEscape(strings.Join(resolved.ExcludeDirs, ",")))
		for _, tool := range toolOrder {
			enabled := "0"
			if resolved.Tools[tool] {
				enabled = "1"
			}
			fmt.Printf("SOLOSEC_TOOL_%s=%s\n", strings.ToUpper(tool), enabled)
		}
	default:
		return fmt.Errorf("unsupported format %q, expected json or bash", projectOptions.Format)
	}
	return nil
}

// bashEscape single-quotes a value so it is safe to eval as VAR='value'.
func bashEscape(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func init() {
	ProjectCmd.Flags().StringVar(&projectOptions.ProjectRoot, "root", ".", "project root directory")
	ProjectCmd.Flags().StringVar(&projectOptions.CliURL, "url", "", "target URL override (takes precedence over the config file)")
	ProjectCmd.Flags().StringVar(&projectOptions.ConfigPath, "config-file", "", "path to the project config (default <root>/.solosec.yaml)")
	ProjectCmd.Flags().StringVar(&projectOptions.Format, "format", "json", "output format: json or bash")
}
