package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read an application's simplified UI tree",
	Long: `Ensure the application is running and frontmost, then scan its frontmost
window and menu bar into a compact tree of addressable elements.`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().String("app", "", "Bundle identifier (e.g. com.apple.Safari)")
	_ = readCmd.MarkFlagRequired("app")
}

func runRead(cmd *cobra.Command, args []string) error {
	appID, _ := cmd.Flags().GetString("app")
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
