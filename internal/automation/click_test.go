package automation

import (
	"errors"
	"strings"
	"testing"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
)

// findID returns the ID of the first node whose description contains want.
func findID(t *testing.T, tree []model.Element, want string) string {
	t.Helper()
	var walk func(els []model.Element) string
	walk = func(els []model.Element) string {
		for _, el := range els {
			if strings.Contains(el.Description, want) {
				return el.ID
			}
			if id := walk(el.Children); id != "" {
				return id
			}
		}
		return ""
	}
	id := walk(tree)
	if id == "" {
		t.Fatalf("no node with description containing %q in %+v", want, tree)
	}
	return id
}

func TestClick_PressAction(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(button("Save")))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.Click(appA, findID(t, tree, "Save"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "press action") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if len(h.fake.PerformedLog) != 1 || h.fake.PerformedLog[0] != platform.ActionPress {
		t.Errorf("performed %v, want single press", h.fake.PerformedLog)
	}
	if len(res.Tree) == 0 {
		t.Error("expected refreshed tree in result")
	}
}

func TestClick_ConfirmFallback(t *testing.T) {
	h := newHarness()
	save := button("Save")
	save.FailActions = map[string]bool{platform.ActionPress: true}
	h.fake.AddApp(appA, windowWith(save))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.Click(appA, findID(t, tree, "Save"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "confirm action") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	want := []string{platform.ActionPress, platform.ActionConfirm}
	if len(h.fake.PerformedLog) != 2 || h.fake.PerformedLog[0] != want[0] || h.fake.PerformedLog[1] != want[1] {
		t.Errorf("performed %v, want %v", h.fake.PerformedLog, want)
	}
}

func TestClick_AllStrategiesFail(t *testing.T) {
	h := newHarness()
	save := button("Save")
	save.FailActions = map[string]bool{
		platform.ActionPress:   true,
		platform.ActionConfirm: true,
	}
	h.fake.AddApp(appA, windowWith(save))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	_, err = h.svc.Click(appA, findID(t, tree, "Save"))
	if !IsKind(err, KindActionFailed) {
		t.Fatalf("expected action-failed error, got %v", err)
	}
}

func TestClick_OutlineRowDoubleClicksCenter(t *testing.T) {
	h := newHarness()
	row := outlineRow("src", &platform.Frame{X: 10, Y: 20, Width: 100, Height: 40})
	// Even with the fallback action broken the double-click must carry the day.
	row.FailActions = map[string]bool{platform.ActionShowDefaultUI: true}
	h.fake.AddApp(appA, windowWith(row))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.Click(appA, findID(t, tree, "src"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "double-click") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if len(h.fake.DoubleClicks) != 1 {
		t.Fatalf("expected one double-click, got %v", h.fake.DoubleClicks)
	}
	if got := h.fake.DoubleClicks[0]; got != [2]float64{60, 40} {
		t.Errorf("double-clicked %v, want frame center [60 40]", got)
	}
	if len(h.fake.PerformedLog) != 0 {
		t.Errorf("fallback action should not run after a working double-click, performed %v", h.fake.PerformedLog)
	}
}

func TestClick_OutlineRowFallsBackToShowDefaultUI(t *testing.T) {
	h := newHarness()
	row := outlineRow("src", &platform.Frame{X: 10, Y: 20, Width: 100, Height: 40})
	h.fake.AddApp(appA, windowWith(row))
	h.fake.DoubleClickErr = errors.New("event tap unavailable")

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.Click(appA, findID(t, tree, "src"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "show-default-UI") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if len(h.fake.PerformedLog) != 1 || h.fake.PerformedLog[0] != platform.ActionShowDefaultUI {
		t.Errorf("performed %v, want show-default-UI", h.fake.PerformedLog)
	}
}

func TestClick_OutlineRowWithoutFrameSkipsDoubleClick(t *testing.T) {
	h := newHarness()
	row := outlineRow("src", nil)
	h.fake.AddApp(appA, windowWith(row))

	tree, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.Click(appA, findID(t, tree, "src"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "show-default-UI") {
		t.Errorf("unexpected message: %q", res.Message)
	}
	if len(h.fake.DoubleClicks) != 0 {
		t.Errorf("a frameless row must not be double-clicked, got %v", h.fake.DoubleClicks)
	}
}

func TestClick_UnknownElement(t *testing.T) {
	h := newHarness()
	h.fake.AddApp(appA, windowWith(button("Save")))

	_, err := h.svc.Click(appA, "element_404")
	if !IsKind(err, KindElementNotFound) {
		t.Fatalf("expected element-not-found error, got %v", err)
	}
}

func TestClick_RescansSwitchedFrontmostApp(t *testing.T) {
	h := newHarness()
	open := button("Open in Beta")
	open.OnPerform = func(string) { h.fake.Frontmost = appB }
	h.fake.AddApp(appA, windowWith(open))
	h.fake.AddApp(appB, windowWith(button("Beta Button")))
	h.fake.Frontmost = appA

	treeA, err := h.svc.Scan(appA)
	if err != nil {
		t.Fatal(err)
	}
	idsA := model.CollectIDs(treeA)

	res, err := h.svc.Click(appA, findID(t, treeA, "Open in Beta"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, appB) {
		t.Errorf("message should name the new frontmost app: %q", res.Message)
	}
	findID(t, res.Tree, "Beta Button")
	// The rescan of app B invalidated every ID from app A.
	for _, id := range idsA {
		if h.svc.Exists(id) {
			t.Errorf("app A ID %q should be invalid after the post-click rescan", id)
		}
	}
}
