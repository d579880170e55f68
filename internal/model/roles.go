package model

import "strings"

// FlattenRoles are purely structural AX roles. Nodes with these roles are
// never materialized in the output tree; their children are spliced directly
// into the parent's child list.
var FlattenRoles = map[string]bool{
	"AXGroup":          true,
	"AXScrollArea":     true,
	"AXLayoutArea":     true,
	"AXLayoutItem":     true,
	"AXSplitGroup":     true,
	"AXToolbar":        true,
	"AXTabGroup":       true,
	"AXOutline":        true,
	"AXList":           true,
	"AXTable":          true,
	"AXBrowser":        true,
	"AXGenericElement": true,
	"AXSplitter":       true,
	"AXDockItem":       true,
	"AXDrawer":         true,
	"AXGrowArea":       true,
	"AXMatte":          true,
	"AXRuler":          true,
	"AXUnknown":        true,
}

// ActionableRoles are roles considered meaningful for automated interaction.
// A materialized node with a role outside this set is kept only if it still
// has children after pruning.
var ActionableRoles = map[string]bool{
	"AXButton":             true,
	"AXTextField":          true,
	"AXTextArea":           true,
	"AXSearchField":        true,
	"AXSecureTextField":    true,
	"AXPopUpButton":        true,
	"AXMenuButton":         true,
	"AXMenuItem":           true,
	"AXMenuBarItem":        true,
	"AXCheckBox":           true,
	"AXRadioButton":        true,
	"AXSlider":             true,
	"AXIncrementor":        true,
	"AXLink":               true,
	"AXTab":                true,
	"AXComboBox":           true,
	"AXCell":               true,
	"AXRow":                true,
	"AXColorWell":          true,
	"AXDisclosureTriangle": true,
}

// TextEntryRoles are the roles set_element_text accepts as targets.
var TextEntryRoles = map[string]bool{
	"AXTextField":       true,
	"AXTextArea":        true,
	"AXSearchField":     true,
	"AXSecureTextField": true,
	"AXComboBox":        true,
}

// HarvestRoles are row/column-shaped roles whose descriptions are enriched
// with text harvested from descendant leaves.
var HarvestRoles = map[string]bool{
	"AXRow":    true,
	"AXColumn": true,
}

// HarvestTextRoles are child roles whose value (not just title) is harvested.
var HarvestTextRoles = map[string]bool{
	"AXStaticText": true,
	"AXTextField":  true,
}

// HarvestCellRole is the grandchild role the harvester recurses one extra
// level into.
const HarvestCellRole = "AXCell"

// SubroleOutlineRow marks rows inside hierarchical outlines (e.g. source
// lists and project navigators). The standard press action does not reliably
// open these, so clicks on them are synthesized as pointer events.
const SubroleOutlineRow = "AXOutlineRow"

// ShortRole strips the framework prefix from an AX role name.
// "AXButton" becomes "Button".
func ShortRole(role string) string {
	return strings.TrimPrefix(role, "AX")
}
