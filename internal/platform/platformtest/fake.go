// Package platformtest provides a scripted in-memory platform provider for
// tests. The fake stands in for the macOS accessibility tree: tests build
// native-shaped node trees, attach them to applications, and script
// per-node failures to exercise fallback chains.
package platformtest

import (
	"fmt"
	"time"

	"github.com/agentdesk/macpilot/internal/platform"
)

// Node is a fake native accessibility node. The zero value is a childless
// node with no attributes.
type Node struct {
	Role        string
	Subrole     string
	Title       string
	Value       string
	Help        string
	Description string
	Children    []*Node

	// Frame is nil for nodes with no readable screen position.
	Frame *platform.Frame

	// FailActions lists accessibility actions that report failure.
	FailActions map[string]bool

	// OnPerform runs after a successful action, letting tests simulate side
	// effects such as focus moving to another application.
	OnPerform func(action string)

	SetValueErr    error
	SelectAllErr   error
	SetSelectedErr error
	FocusErr       error

	// window is set by App wiring so Window() can resolve it.
	window *Node
}

// NewNode builds a node with the given role and title.
func NewNode(role, title string, children ...*Node) *Node {
	return &Node{Role: role, Title: title, Children: children}
}

// App is a fake application.
type App struct {
	Name    string
	PID     int
	Running bool
	Window  *Node
	Menu    *Node

	// RunningAfterPolls is how many IsRunning probes after Launch must
	// happen before the app reports running. Zero means the first
	// post-launch probe already sees it.
	RunningAfterPolls int

	launched  bool
	pollsLeft int
}

// Fake implements platform.Accessibility, platform.AppController, and
// platform.Input over scripted state.
type Fake struct {
	Apps      map[string]*App
	Frontmost string

	PermissionErr error

	Launched       []string
	Activated      []string
	DoubleClicks   [][2]float64
	DoubleClickErr error
	ReturnPresses  int
	ReturnErr      error
	PerformedLog   []string
}

// New creates an empty fake.
func New() *Fake {
	return &Fake{Apps: make(map[string]*App)}
}

// AddApp registers a running app with the given window tree.
func (f *Fake) AddApp(appID string, window *Node) *App {
	app := &App{Name: appID, Running: true, Window: window}
	f.Apps[appID] = app
	return app
}

// Provider bundles the fake into a platform.Provider.
func (f *Fake) Provider() *platform.Provider {
	return &platform.Provider{Accessibility: f, Apps: f, Input: f}
}

func asNode(el platform.UIElement) *Node {
	n, _ := el.(*Node)
	return n
}

// --- platform.Accessibility ---

func (f *Fake) CheckPermission() error { return f.PermissionErr }

func (f *Fake) WindowRoot(appID string) (platform.UIElement, error) {
	app, ok := f.Apps[appID]
	if !ok || app.Window == nil {
		return nil, nil
	}
	wireWindow(app.Window, app.Window)
	return app.Window, nil
}

func (f *Fake) MenuBar(appID string) (platform.UIElement, error) {
	app, ok := f.Apps[appID]
	if !ok || app.Menu == nil {
		return nil, nil
	}
	return app.Menu, nil
}

// wireWindow points every node in the subtree at its containing window.
func wireWindow(n, window *Node) {
	n.window = window
	for _, c := range n.Children {
		wireWindow(c, window)
	}
}

func (f *Fake) Attr(el platform.UIElement, name string) string {
	n := asNode(el)
	if n == nil {
		return ""
	}
	switch name {
	case platform.AttrRole:
		return n.Role
	case platform.AttrSubrole:
		return n.Subrole
	case platform.AttrTitle:
		return n.Title
	case platform.AttrValue:
		return n.Value
	case platform.AttrHelp:
		return n.Help
	case platform.AttrDescription:
		return n.Description
	}
	return ""
}

func (f *Fake) Children(el platform.UIElement) []platform.UIElement {
	n := asNode(el)
	if n == nil {
		return nil
	}
	out := make([]platform.UIElement, len(n.Children))
	for i, c := range n.Children {
		out[i] = c
	}
	return out
}

func (f *Fake) Frame(el platform.UIElement) (platform.Frame, bool) {
	n := asNode(el)
	if n == nil || n.Frame == nil {
		return platform.Frame{}, false
	}
	return *n.Frame, true
}

func (f *Fake) Window(el platform.UIElement) (platform.UIElement, bool) {
	n := asNode(el)
	if n == nil || n.window == nil {
		return nil, false
	}
	return n.window, true
}

func (f *Fake) Perform(el platform.UIElement, action string) error {
	n := asNode(el)
	if n == nil {
		return fmt.Errorf("perform %s on nil element", action)
	}
	f.PerformedLog = append(f.PerformedLog, action)
	if n.FailActions[action] {
		return fmt.Errorf("action %s failed", action)
	}
	if n.OnPerform != nil {
		n.OnPerform(action)
	}
	return nil
}

func (f *Fake) SetTextValue(el platform.UIElement, text string) error {
	n := asNode(el)
	if n.SetValueErr != nil {
		return n.SetValueErr
	}
	n.Value = text
	return nil
}

func (f *Fake) SelectAllText(el platform.UIElement) error {
	return asNode(el).SelectAllErr
}

func (f *Fake) SetSelectedText(el platform.UIElement, text string) error {
	n := asNode(el)
	if n.SetSelectedErr != nil {
		return n.SetSelectedErr
	}
	n.Value = text
	return nil
}

func (f *Fake) Focus(el platform.UIElement) error {
	return asNode(el).FocusErr
}

func (f *Fake) FocusWindow(win platform.UIElement) error { return nil }

// --- platform.AppController ---

func (f *Fake) IsRunning(appID string) bool {
	app, ok := f.Apps[appID]
	if !ok {
		return false
	}
	if app.Running {
		return true
	}
	if app.launched {
		if app.pollsLeft <= 0 {
			app.Running = true
			return true
		}
		app.pollsLeft--
	}
	return false
}

func (f *Fake) Launch(appID string) error {
	app, ok := f.Apps[appID]
	if !ok {
		return fmt.Errorf("%q: %w", appID, platform.ErrNotInstalled)
	}
	f.Launched = append(f.Launched, appID)
	app.launched = true
	app.pollsLeft = app.RunningAfterPolls
	return nil
}

func (f *Fake) Activate(appID string) error {
	f.Activated = append(f.Activated, appID)
	return nil
}

func (f *Fake) FrontmostApp() (string, error) {
	return f.Frontmost, nil
}

func (f *Fake) RunningApps() ([]platform.AppInfo, error) {
	var out []platform.AppInfo
	for id, app := range f.Apps {
		if app.Running {
			out = append(out, platform.AppInfo{BundleID: id, Name: app.Name, PID: app.PID})
		}
	}
	return out, nil
}

// --- platform.Input ---

func (f *Fake) DoubleClick(x, y float64, gap time.Duration) error {
	if f.DoubleClickErr != nil {
		return f.DoubleClickErr
	}
	f.DoubleClicks = append(f.DoubleClicks, [2]float64{x, y})
	return nil
}

func (f *Fake) PressReturn(gap time.Duration) error {
	if f.ReturnErr != nil {
		return f.ReturnErr
	}
	f.ReturnPresses++
	return nil
}
