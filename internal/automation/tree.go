package automation

import (
	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
)

// fullScan clears the registry, walks the application's frontmost window
// and menu bar, stores the resulting tree, and returns it. Window nodes
// always precede menu-bar nodes in the top-level sequence.
//
// Callers must hold s.mu and have run ensureReady (or know the app is
// already frontmost).
func (s *Service) fullScan(appID string) ([]model.Element, error) {
	ax := s.provider.Accessibility
	if err := ax.CheckPermission(); err != nil {
		return nil, permissionError(err)
	}

	s.session.ClearRegistry()

	nodes := []model.Element{}
	win, err := ax.WindowRoot(appID)
	if err == nil && win != nil {
		nodes = append(nodes, s.buildNode(win, 0, s.cfg.WindowScanDepth)...)
	}
	// Menu structures nest one level further than window content.
	menu, err := ax.MenuBar(appID)
	if err == nil && menu != nil {
		nodes = append(nodes, s.buildNode(menu, 0, s.cfg.WindowScanDepth+1)...)
	}

	s.session.SetTree(appID, nodes)
	s.log.Info("full scan complete",
		zap.String("app", appID), zap.Int("top_level", len(nodes)))
	return nodes, nil
}

// buildNode converts the native subtree rooted at el into zero or more
// simplified nodes.
//
// Structural container roles are not materialized: their children are built
// at the same depth and spliced directly into the parent's child list,
// collapsing nesting levels that add no actionable semantics. Every
// materialized node gets a fresh ID and a registry entry. A materialized
// node survives only if its role is actionable or it kept at least one
// child after recursion.
func (s *Service) buildNode(el platform.UIElement, depth, maxDepth int) []model.Element {
	if depth > maxDepth {
		return nil
	}
	ax := s.provider.Accessibility
	role := ax.Attr(el, platform.AttrRole)

	if model.FlattenRoles[role] {
		var out []model.Element
		for _, child := range ax.Children(el) {
			out = append(out, s.buildNode(child, depth, maxDepth)...)
		}
		return out
	}

	id := s.session.NextID()
	s.session.Register(id, el)

	node := model.Element{
		ID:          id,
		Description: s.describe(el, role),
		Children:    []model.Element{},
	}
	for _, child := range ax.Children(el) {
		node.Children = append(node.Children, s.buildNode(child, depth+1, maxDepth)...)
	}

	if !model.ActionableRoles[role] && len(node.Children) == 0 {
		return nil
	}
	return []model.Element{node}
}

// describe reads the element's text attributes and, for row/column-shaped
// roles, harvests text from descendant leaves.
func (s *Service) describe(el platform.UIElement, role string) string {
	ax := s.provider.Accessibility
	text := model.NodeText{
		Role:        role,
		Title:       ax.Attr(el, platform.AttrTitle),
		Value:       ax.Attr(el, platform.AttrValue),
		Help:        ax.Attr(el, platform.AttrHelp),
		Description: ax.Attr(el, platform.AttrDescription),
	}

	var harvested []string
	if model.HarvestRoles[role] {
		seen := make(map[string]bool)
		harvested = s.harvestText(el, seen, true)
	}
	return model.Describe(text, harvested)
}

// harvestText collects title/value text from an element's immediate
// children. Cell-shaped children get one extra level of recursion so row
// descriptions include the text inside their cells. Duplicates are dropped
// with set semantics.
func (s *Service) harvestText(el platform.UIElement, seen map[string]bool, recurseCells bool) []string {
	ax := s.provider.Accessibility
	var out []string
	add := func(text string) {
		if text != "" && !seen[text] {
			seen[text] = true
			out = append(out, text)
		}
	}
	for _, child := range ax.Children(el) {
		role := ax.Attr(child, platform.AttrRole)
		add(ax.Attr(child, platform.AttrTitle))
		if model.HarvestTextRoles[role] {
			add(ax.Attr(child, platform.AttrValue))
		}
		if recurseCells && role == model.HarvestCellRole {
			out = append(out, s.harvestText(child, seen, false)...)
		}
	}
	return out
}
