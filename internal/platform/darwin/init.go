//go:build darwin && cgo

package darwin

import "github.com/agentdesk/macpilot/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Accessibility: NewAccessibility(),
			Apps:          NewAppController(),
			Input:         NewInput(),
		}, nil
	}
}
