package main

import (
	"github.com/agentdesk/macpilot/cmd"

	_ "github.com/agentdesk/macpilot/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
