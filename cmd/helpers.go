package cmd

import (
	"fmt"

	"github.com/agentdesk/macpilot/internal/automation"
	"github.com/agentdesk/macpilot/internal/config"
	"github.com/agentdesk/macpilot/internal/logging"
	"github.com/agentdesk/macpilot/internal/platform"
	"github.com/agentdesk/macpilot/internal/session"
)

// newService wires a fresh automation service for one CLI invocation.
func newService() (*automation.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return automation.New(cfg, provider, session.New(), log), nil
}
