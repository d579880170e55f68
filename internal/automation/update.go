package automation

import (
	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/model"
)

// UpdateSubtree re-acquires one previously issued element's subtree at the
// fixed update depth, splices it into the application's stored tree, and
// returns only the rebuilt subtree.
//
// The registry is not cleared: existing IDs stay valid, and every node in
// the rebuilt subtree gets a fresh ID even when it was already registered
// under an older one from the prior scan. Readiness is not re-checked; an
// update assumes the application is still frontmost from that scan.
func (s *Service) UpdateSubtree(appID, elementID string) ([]model.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.session.Resolve(elementID)
	if !ok {
		return nil, elementNotFoundError(elementID)
	}
	if err := s.provider.Accessibility.CheckPermission(); err != nil {
		return nil, permissionError(err)
	}

	subtree := s.buildNode(el, 0, s.cfg.UpdateScanDepth)
	if subtree == nil {
		subtree = []model.Element{}
	}

	replaced := s.session.SpliceTree(appID, elementID, subtree)
	s.log.Debug("partial update",
		zap.String("app", appID),
		zap.String("element", elementID),
		zap.Int("replaced", replaced))
	return subtree, nil
}
