package automation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
)

// SetText writes text into a text-entry element and submits it with a
// synthesized Return key press. The whole application tree is re-acquired
// afterwards: text submission often has wide-reaching effects (page loads,
// dialogs), so the touched subtree alone would under-report.
func (s *Service) SetText(appID, elementID, text string) (*ActionResult, error) {
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

	role := ax.Attr(el, platform.AttrRole)
	if !model.TextEntryRoles[role] {
		return nil, invalidRequestError(fmt.Sprintf("element %s has role %s, which cannot accept text", elementID, role))
	}

	_ = s.provider.Apps.Activate(appID)
	s.focusElement(el)

	strategyName, ok := runChain(s.setTextChain(el, text))
	if !ok {
		return nil, actionFailedError(fmt.Sprintf("every text-set strategy failed for element %s", elementID))
	}

	// Submit the field. Failure to deliver the key press is reported in the
	// message, not as an error; the text itself was already set.
	enterNote := "Return key sent"
	if err := s.provider.Input.PressReturn(s.cfg.ReturnKeyGap); err != nil {
		enterNote = "Return key failed"
		s.log.Warn("return key press failed", zap.Error(err))
	}
	s.sleep(s.cfg.TextSubmitSettle)

	tree, err := s.fullScan(appID)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("Set text on element %s via %s; %s.", elementID, strategyName, enterNote)
	return &ActionResult{Message: msg, Tree: tree}, nil
}

// focusElement is best effort: direct focus first, then focusing the
// containing window as a prerequisite before one retry. A field that never
// takes focus can still accept a direct value write, so failure here is not
// fatal.
func (s *Service) focusElement(el platform.UIElement) {
	ax := s.provider.Accessibility
	if err := ax.Focus(el); err != nil {
		if win, ok := ax.Window(el); ok {
			_ = ax.FocusWindow(win)
			_ = ax.Focus(el)
		}
	}
	s.sleep(s.cfg.FocusSettle)
}

// setTextChain: direct value assignment, then select-all-and-replace, then
// writing the selected-text attribute without an explicit prior selection.
func (s *Service) setTextChain(el platform.UIElement, text string) []strategy {
	ax := s.provider.Accessibility
	return []strategy{
		{name: "value assignment", run: func() outcome {
			if ax.SetTextValue(el, text) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
		{name: "select-and-replace", run: func() outcome {
			if ax.SelectAllText(el) != nil {
				return outcomeFail
			}
			if ax.SetSelectedText(el, text) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
		{name: "selected-text assignment", run: func() outcome {
			if ax.SetSelectedText(el, text) != nil {
				return outcomeFail
			}
			return outcomeOK
		}},
	}
}
