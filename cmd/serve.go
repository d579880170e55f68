package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentdesk/macpilot/internal/automation"
	"github.com/agentdesk/macpilot/internal/config"
	"github.com/agentdesk/macpilot/internal/logging"
	"github.com/agentdesk/macpilot/internal/platform"
	"github.com/agentdesk/macpilot/internal/server"
	"github.com/agentdesk/macpilot/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing macpilot tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes UI-tree reads,
clicks, text entry, and partial tree refreshes as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  macpilot serve
  macpilot serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (overrides MACPILOT_TRANSPORT)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (overrides MACPILOT_HTTP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
		cfg.Transport = transport
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.HTTPPort = port
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	svc := automation.New(cfg, provider, session.New(), log)
	return server.New(svc, log).Serve(cfg)
}
