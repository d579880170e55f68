// Package output renders CLI results as YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agentdesk/macpilot/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat = FormatYAML

// ScanResult is the top-level output of the `read` and `open` commands.
type ScanResult struct {
	App      string          `yaml:"app"      json:"app"`
	TS       int64           `yaml:"ts"       json:"ts"`
	Elements []model.Element `yaml:"elements" json:"elements"`
}

// ActionOutput is the top-level output of `click` and `settext`.
type ActionOutput struct {
	OK       bool            `yaml:"ok"       json:"ok"`
	Message  string          `yaml:"message"  json:"message"`
	Elements []model.Element `yaml:"elements" json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v any) error {
	switch OutputFormat {
	case FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}
