package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List running applications with bundle identifiers",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	apps, err := svc.ListApplications()
	if err != nil {
		return err
	}
	return output.Print(apps)
}
