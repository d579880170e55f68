package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Accessibility Accessibility
	Apps          AppController
	Input         Input
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("macpilot is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// ErrNotInstalled is returned by AppController.Launch when the bundle
// identifier does not resolve to any installed application.
var ErrNotInstalled = errors.New("no installed application matches the bundle identifier")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
