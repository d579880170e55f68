package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/output"
)

var settextCmd = &cobra.Command{
	Use:   "settext",
	Short: "Type text into a text-entry element and submit it",
	RunE:  runSetText,
}

func init() {
	rootCmd.AddCommand(settextCmd)
	settextCmd.Flags().String("app", "", "Bundle identifier")
	settextCmd.Flags().String("id", "", "Element ID of a text-entry element")
	settextCmd.Flags().String("text", "", "Text to enter")
	_ = settextCmd.MarkFlagRequired("app")
	_ = settextCmd.MarkFlagRequired("id")
	_ = settextCmd.MarkFlagRequired("text")
}

func runSetText(cmd *cobra.Command, args []string) error {
	appID, _ := cmd.Flags().GetString("app")
	elementID, _ := cmd.Flags().GetString("id")
	text, _ := cmd.Flags().GetString("text")

	svc, err := newService()
	if err != nil {
		return err
	}
	if _, err := svc.Scan(appID); err != nil {
		return err
	}
	result, err := svc.SetText(appID, elementID, text)
	if err != nil {
		return err
	}
	return output.Print(output.ActionOutput{
		OK:       true,
		Message:  result.Message,
		Elements: result.Tree,
	})
}
