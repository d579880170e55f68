// Package config holds the runtime configuration for macpilot.
//
// Every settle delay and retry knob the automation layer uses is a named,
// env-overridable value rather than an inline sleep. The delays exist
// because the OS applies UI changes asynchronously after an event is
// posted; they are a documented source of flakiness, not tuning noise.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from MACPILOT_* environment variables with the defaults
// below. Transport settings may additionally be overridden by CLI flags.
type Config struct {
	// MCP transport: "stdio" or "streamable-http".
	Transport string `envconfig:"TRANSPORT" default:"stdio"`
	HTTPPort  int    `envconfig:"HTTP_PORT" default:"8080"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`

	// Launch polling: exponential backoff while waiting for a launched
	// application to appear in the running-process set.
	LaunchPollInitial    time.Duration `envconfig:"LAUNCH_POLL_INITIAL" default:"500ms"`
	LaunchPollMultiplier float64       `envconfig:"LAUNCH_POLL_MULTIPLIER" default:"1.5"`
	LaunchPollMax        time.Duration `envconfig:"LAUNCH_POLL_MAX" default:"3s"`
	LaunchPollAttempts   int           `envconfig:"LAUNCH_POLL_ATTEMPTS" default:"10"`

	// Settle delays around OS side effects.
	ActivateSettle    time.Duration `envconfig:"ACTIVATE_SETTLE" default:"1s"`
	ClickSettle       time.Duration `envconfig:"CLICK_SETTLE" default:"300ms"`
	DoubleClickGap    time.Duration `envconfig:"DOUBLE_CLICK_GAP" default:"50ms"`
	DoubleClickSettle time.Duration `envconfig:"DOUBLE_CLICK_SETTLE" default:"200ms"`
	FocusSettle       time.Duration `envconfig:"FOCUS_SETTLE" default:"100ms"`
	ReturnKeyGap      time.Duration `envconfig:"RETURN_KEY_GAP" default:"10ms"`
	TextSubmitSettle  time.Duration `envconfig:"TEXT_SUBMIT_SETTLE" default:"500ms"`

	// Scan depths. A full scan reads the frontmost window shallowly and the
	// menu bar one level deeper; a partial update, already narrowed to one
	// subtree, affords a deeper look.
	WindowScanDepth int `envconfig:"WINDOW_SCAN_DEPTH" default:"2"`
	UpdateScanDepth int `envconfig:"UPDATE_SCAN_DEPTH" default:"3"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("macpilot", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Transport != "stdio" && cfg.Transport != "streamable-http" {
		return nil, fmt.Errorf("invalid transport %q (use stdio or streamable-http)", cfg.Transport)
	}
	if cfg.LaunchPollAttempts < 1 {
		return nil, fmt.Errorf("launch poll attempts must be at least 1, got %d", cfg.LaunchPollAttempts)
	}
	if cfg.WindowScanDepth < 0 || cfg.UpdateScanDepth < 0 {
		return nil, fmt.Errorf("scan depths must be non-negative")
	}
	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment. Used by tests and by CLI verbs that take flags instead.
func Default() *Config {
	return &Config{
		Transport:            "stdio",
		HTTPPort:             8080,
		LaunchPollInitial:    500 * time.Millisecond,
		LaunchPollMultiplier: 1.5,
		LaunchPollMax:        3 * time.Second,
		LaunchPollAttempts:   10,
		ActivateSettle:       time.Second,
		ClickSettle:          300 * time.Millisecond,
		DoubleClickGap:       50 * time.Millisecond,
		DoubleClickSettle:    200 * time.Millisecond,
		FocusSettle:          100 * time.Millisecond,
		ReturnKeyGap:         10 * time.Millisecond,
		TextSubmitSettle:     500 * time.Millisecond,
		WindowScanDepth:      2,
		UpdateScanDepth:      3,
	}
}
