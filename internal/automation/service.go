// Package automation implements the UI-tree acquisition engine and the
// element action dispatcher.
//
// One Service owns all session state. Every public operation takes the
// service mutex for its full duration, so a scan for one application can
// never interleave with a click resolving an ID from another. Tree walking
// is sequential; the accessibility API is not reentrant from concurrent
// callers in this design.
package automation

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/config"
	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
	"github.com/agentdesk/macpilot/internal/session"
)

// Service coordinates the lifecycle controller, tree builder, registry, and
// action dispatcher over one platform provider.
type Service struct {
	mu       sync.Mutex
	cfg      *config.Config
	log      *zap.Logger
	provider *platform.Provider
	session  *session.Session

	// sleep is time.Sleep in production; tests substitute a recorder.
	sleep func(time.Duration)
}

// ActionResult is the outcome of a click or set-text operation: a short
// status message naming the strategy that succeeded, and the refreshed tree.
type ActionResult struct {
	Message string          `json:"message"`
	Tree    []model.Element `json:"tree"`
}

// New creates the service. One service instance serves the whole process.
func New(cfg *config.Config, provider *platform.Provider, sess *session.Session, log *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		log:      log,
		provider: provider,
		session:  sess,
		sleep:    time.Sleep,
	}
}

// Scan ensures the application is running and frontmost, then performs a
// full scan: the registry is cleared and repopulated from the frontmost
// window and the menu bar.
func (s *Service) Scan(appID string) ([]model.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReady(appID); err != nil {
		return nil, err
	}
	return s.fullScan(appID)
}

// Exists reports whether an element ID is currently registered. Used by the
// dispatcher as a cheap probe and exposed for tests.
func (s *Service) Exists(id string) bool {
	return s.session.Exists(id)
}

// Cleanup discards the registry and all stored trees.
func (s *Service) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
	s.log.Info("session state cleared")
}

// ListApplications returns the running applications that expose a bundle
// identifier.
func (s *Service) ListApplications() ([]platform.AppInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider.Apps.RunningApps()
}
