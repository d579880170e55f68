package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click a UI element by element ID",
	Long: `Click the element with the given ID from a prior read. Outline rows are
opened with a synthesized double-click; other elements use the press and
confirm accessibility actions. Prints the refreshed tree of whichever
application is frontmost after the click.`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("app", "", "Bundle identifier")
	clickCmd.Flags().String("id", "", "Element ID from a prior read (e.g. element_12)")
	_ = clickCmd.MarkFlagRequired("app")
	_ = clickCmd.MarkFlagRequired("id")
}

func runClick(cmd *cobra.Command, args []string) error {
	appID, _ := cmd.Flags().GetString("app")
	elementID, _ := cmd.Flags().GetString("id")

	svc, err := newService()
	if err != nil {
		return err
	}
	// A CLI invocation starts with an empty registry, so resolve the ID by
	// scanning first. The agent-facing MCP server keeps the registry alive
	// across calls instead.
	if _, err := svc.Scan(appID); err != nil {
		return err
	}
	result, err := svc.Click(appID, elementID)
	if err != nil {
		return err
	}
	return output.Print(output.ActionOutput{
		OK:       true,
		Message:  result.Message,
		Elements: result.Tree,
	})
}
