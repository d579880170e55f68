package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-acquire one element's subtree at a deeper depth",
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("app", "", "Bundle identifier")
	updateCmd.Flags().String("id", "", "Element ID whose subtree to refresh")
	_ = updateCmd.MarkFlagRequired("app")
	_ = updateCmd.MarkFlagRequired("id")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	appID, _ := cmd.Flags().GetString("app")
	elementID, _ := cmd.Flags().GetString("id")

	svc, err := newService()
	if err != nil {
		return err
	}
	if _, err := svc.Scan(appID); err != nil {
		return err
	}
	subtree, err := svc.UpdateSubtree(appID, elementID)
	if err != nil {
		return err
	}
	return output.Print(output.ScanResult{
		App:      appID,
		TS:       time.Now().Unix(),
		Elements: subtree,
	})
}
