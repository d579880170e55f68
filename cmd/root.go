package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
	"github.com/agentdesk/macpilot/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "macpilot",
	Short: "Expose macOS application UI trees to AI agents",
	Long: `macpilot reads a running application's accessibility tree, flattens it
into a compact addressable tree, and lets an agent click elements and type
text by element ID. Run 'macpilot serve' to expose the same operations as
MCP tools.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}
