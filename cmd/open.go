package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var openCmd = &cobra.Command{
	Use:   "open [bundle-id]",
	Short: "Open an application and read its UI tree",
	Long: `Launch the application if it is not running, wait for it to appear with
exponential backoff, bring it to the foreground, and return its UI tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	appID := args[0]
	svc, err := newService()
	if err != nil {
		return err
	}
	tree, err := svc.Scan(appID)
	if err != nil {
		return err
	}
	return output.Print(output.ScanResult{
		App:      appID,
		TS:       time.Now().Unix(),
		Elements: tree,
	})
}
