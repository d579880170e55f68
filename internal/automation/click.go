package automation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
)

// Click resolves an element ID and clicks it, then rescans whichever
// application ended up frontmost; a click can legitimately switch
// applications, e.g. opening a document in another app.
//
// Outline rows get a synthesized double-click at their screen center, since
// the standard press action does not reliably open them; everything else
// goes through the press/confirm accessibility actions.
func (s *Service) Click(appID, elementID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ax := s.provider.Accessibility
	el, ok := s.session.Resolve(elementID)
	if !ok {
		return nil, elementNotFoundError(elementID)
	}
	if err := ax.CheckPermission(); err != nil {
		return nil, permissionError(err)
	}

	// Re-focus only; the app is assumed running from the prior scan.
	_ = s.provider.Apps.Activate(appID)

	var chain []strategy
	if ax.Attr(el, platform.AttrSubrole) == model.SubroleOutlineRow {
		chain = s.outlineRowChain(el)
	} else {
		chain = s.standardClickChain(el)
	}

	strategyName, ok := runChain(chain)
	if !ok {
		return nil, actionFailedError(fmt.Sprintf("every click strategy failed for element %s", elementID))
	}
	s.log.Debug("click succeeded",
		zap.String("element", elementID), zap.String("strategy", strategyName))

	s.sleep(s.cfg.ClickSettle)

	// The click may have moved focus to another application; rescan whatever
	// is frontmost now.
	front, err := s.provider.Apps.FrontmostApp()
	if err != nil || front == "" {
		front = appID
	}
	tree, err := s.fullScan(front)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Clicked element %s via %s.", elementID, strategyName)
	if front != appID {
		msg += fmt.Sprintf(" The frontmost application is now %s; returning its UI tree.", front)
	}
	return &ActionResult{Message: msg, Tree: tree}, nil
}

// standardClickChain tries the platform press action, then confirm.
func (s *Service) standardClickChain(el platform.UIElement) []strategy {
	ax := s.provider.Accessibility
	return []strategy{
		{name: "press action", run: func() outcome {
			if ax.Perform(el, platform.ActionPress) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
		{name: "confirm action", run: func() outcome {
			if ax.Perform(el, platform.ActionConfirm) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
	}
}

// outlineRowChain double-clicks the row's screen center, falling back to the
// show-default-UI action. A row with no readable frame skips straight to the
// fallback.
func (s *Service) outlineRowChain(el platform.UIElement) []strategy {
	ax := s.provider.Accessibility
	return []strategy{
		{name: "double-click", run: func() outcome {
			frame, ok := ax.Frame(el)
			if !ok {
				return outcomeSkip
			}
			x, y := frame.Center()
			if s.provider.Input.DoubleClick(x, y, s.cfg.DoubleClickGap) != nil {
				return outcomeFail
			}
			s.sleep(s.cfg.DoubleClickSettle)
			return outcomeOK
		}},
		{name: "show-default-UI action", run: func() outcome {
			if ax.Perform(el, platform.ActionShowDefaultUI) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
	}
}
