package automation

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/platform"
)

// ensureReady guarantees the application is running and frontmost before a
// full scan. Partial updates skip this; they assume a prior scan already
// put the application in front.
//
// Launch waiting uses capped exponential backoff. Activation is attempted
// exactly once and never verified: when it silently fails the following
// tree read returns an empty or wrong-window tree rather than an error.
func (s *Service) ensureReady(appID string) error {
	apps := s.provider.Apps

	if !apps.IsRunning(appID) {
		if err := apps.Launch(appID); err != nil {
			if errors.Is(err, platform.ErrNotInstalled) {
				return appNotFoundError(appID, err)
			}
			return &Error{Kind: KindAppNotRunning, Msg: "launch request failed", Err: err}
		}
		if !s.waitForRunning(appID) {
			return appNotRunningError(appID, s.cfg.LaunchPollAttempts)
		}
	}

	_ = apps.Activate(appID)
	s.sleep(s.cfg.ActivateSettle)
	return nil
}

// waitForRunning polls the running-process set until the application shows
// up or the retry budget is spent.
func (s *Service) waitForRunning(appID string) bool {
	delay := s.cfg.LaunchPollInitial
	for attempt := 1; attempt <= s.cfg.LaunchPollAttempts; attempt++ {
		if s.provider.Apps.IsRunning(appID) {
			s.log.Debug("application observed running",
				zap.String("app", appID), zap.Int("attempt", attempt))
			return true
		}
		s.sleep(delay)
		delay = time.Duration(float64(delay) * s.cfg.LaunchPollMultiplier)
		if delay > s.cfg.LaunchPollMax {
			delay = s.cfg.LaunchPollMax
		}
	}
	return s.provider.Apps.IsRunning(appID)
}
