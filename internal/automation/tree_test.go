package automation

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform/platformtest"
)

const appA = "com.example.alpha"
const appB = "com.example.beta"

var idPattern = regexp.MustCompile(`^element_\d+$`)

func TestScan_FlattensStructuralContainers(t *testing.T) {
	// window > group > layout-area > group > button collapses to
	// window > button with zero intermediate nodes.
	h := newHarness()
	h.fake.AddApp(appA, windowWith(
		platformtest.NewNode("AXGroup", "",
			platformtest.NewNode("AXLayoutArea", "",
				platformtest.NewNode("AXGroup", "",
					button("OK"))))))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(tree))
	}
	win := tree[0]
	if !strings.Contains(win.Description, "(Window)") {
		t.Errorf("top node should be the window, got %q", win.Description)
	}
	if len(win.Children) != 1 {
		t.Fatalf("expected button as direct child of window, got %d children", len(win.Children))
	}
	if win.Children[0].Description != "OK, (Button)" {
		t.Errorf("unexpected child: %q", win.Children[0].Description)
	}
}

func TestScan_PrunesDecorativeLeaves(t *testing.T) {
	// A childless, non-actionable static image contributes nothing.
	h := newHarness()
	h.fake.AddApp(appA, windowWith(
		button("Save"),
		platformtest.NewNode("AXImage", ""),
		button("Cancel")))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	children := tree[0].Children
	if len(children) != 2 {
		t.Fatalf("expected exactly 2 nodes, got %d", len(children))
	}
	for _, el := range children {
		if !strings.HasPrefix(el.ID, "element_") {
			t.Errorf("bad ID %q", el.ID)
		}
		if !strings.Contains(el.Description, "(Button)") {
			t.Errorf("expected a button, got %q", el.Description)
		}
	}
}

func TestScan_EmptyStructuralSubtreeDropsEntirely(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(
		platformtest.NewNode("AXGroup", "",
			platformtest.NewNode("AXImage", ""))))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	// Window kept nothing, so even the window itself is pruned.
	if len(tree) != 0 {
		t.Errorf("expected empty tree, got %+v", tree)
	}
}

func TestScan_IDsUniqueAndWellFormed(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(
		button("One"), button("Two"),
		platformtest.NewNode("AXGroup", "", button("Three"))))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, id := range model.CollectIDs(tree) {
		if !idPattern.MatchString(id) {
			t.Errorf("bad ID format: %q", id)
		}
		if seen[id] {
			t.Errorf("duplicate ID: %q", id)
		}
		seen[id] = true
	}
}

func TestScan_RegistryConsistency(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(button("One"), button("Two")))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range model.CollectIDs(tree) {
		if !h.svc.Exists(id) {
			t.Errorf("ID %q from returned tree missing from registry", id)
		}
	}
	if h.svc.Exists("element_9999") {
		t.Error("never-issued ID should not exist")
	}
}

func TestScan_FullScanInvalidatesOtherApps(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(button("A1"), button("A2")))
	h.fake.AddApp(appB, windowWith(button("B1")))

	treeA, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	idsA := model.CollectIDs(treeA)

	if _, err := h.svc.Scan(appB); err != nil {
		t.Fatal(err)
	}
	for _, id := range idsA {
		if h.svc.Exists(id) {
			t.Errorf("ID %q from app A should be invalid after scanning app B", id)
		}
	}
}

func TestScan_WindowNodesPrecedeMenuBar(t *testing.T) {
	h := newHarness()
	app := h.fake.AddApp(appA, windowWith(button("OK")))
	app.Menu = platformtest.NewNode("AXMenuBar", "",
		platformtest.NewNode("AXMenuBarItem", "File"))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected window + menu bar, got %d top-level nodes", len(tree))
	}
	if !strings.Contains(tree[0].Description, "(Window)") {
		t.Errorf("first node should be the window, got %q", tree[0].Description)
	}
	if !strings.Contains(tree[1].Description, "(MenuBar)") {
		t.Errorf("second node should be the menu bar, got %q", tree[1].Description)
	}
}

func TestScan_DepthBound(t *testing.T) {
	// Cells nest beyond the window scan depth; everything deeper is pruned.
	h := newHarness()
	deep := platformtest.NewNode("AXCell", "d4")
	chain := platformtest.NewNode("AXCell", "d1",
		platformtest.NewNode("AXCell", "d2",
			platformtest.NewNode("AXCell", "d3", deep)))
	app := h.fake.AddApp(appA, windowWith(chain))
	app.Menu = platformtest.NewNode("AXMenuBar", "",
		platformtest.NewNode("AXMenuBarItem", "File",
			platformtest.NewNode("AXMenuItem", "Open",
				platformtest.NewNode("AXMenuItem", "Recent",
					platformtest.NewNode("AXMenuItem", "TooDeep")))))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	maxAllowed := h.svc.cfg.WindowScanDepth + 1
	if d := model.MaxDepth(tree); d > maxAllowed {
		t.Errorf("tree depth %d exceeds window depth + menu-bar allowance %d", d, maxAllowed)
	}
	// The menu bar pass goes one level deeper than the window pass.
	menu := tree[len(tree)-1]
	if d := model.MaxDepth([]model.Element{menu}); d != maxAllowed {
		t.Errorf("menu subtree depth = %d, want %d", d, maxAllowed)
	}
}

func TestScan_RowDescriptionHarvestsCellText(t *testing.T) {
	h := newHarness()
	name := platformtest.NewNode("AXStaticText", "")
	name.Value = "main.go"
	size := platformtest.NewNode("AXStaticText", "")
	size.Value = "12 KB"
	dup := platformtest.NewNode("AXStaticText", "")
	dup.Value = "main.go"
	row := platformtest.NewNode("AXRow", "",
		platformtest.NewNode("AXCell", "", name),
		platformtest.NewNode("AXCell", "", size),
		platformtest.NewNode("AXCell", "", dup))
	h.fake.AddApp(appA, windowWith(row))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	rowNode := tree[0].Children[0]
	if !strings.Contains(rowNode.Description, "main.go") || !strings.Contains(rowNode.Description, "12 KB") {
		t.Errorf("row description missing harvested cell text: %q", rowNode.Description)
	}
	if strings.Count(rowNode.Description, "main.go") != 1 {
		t.Errorf("harvested text should be deduplicated: %q", rowNode.Description)
	}
}

func TestScan_PermissionDenied(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(button("OK")))
	h.fake.PermissionErr = errors.New("not trusted for accessibility access")

	_, err := h.svc.Scan(appA)
	if !IsKind(err, KindPermissionDenied) {
		t.Errorf("expected permission error, got %v", err)
	}
}
