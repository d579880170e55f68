package platform

import "time"

// UIElement is an opaque handle to a live node in the OS accessibility tree.
// A handle is only meaningful while the registry entry that issued it is
// alive; after a registry clear, dereferencing an old handle reads whatever
// the OS still has at that reference.
type UIElement any

// Frame is an element's position and size in screen coordinates.
type Frame struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the frame.
func (f Frame) Center() (x, y float64) {
	return f.X + f.Width/2, f.Y + f.Height/2
}

// Accessibility attribute names read by the tree builder.
const (
	AttrRole        = "AXRole"
	AttrSubrole     = "AXSubrole"
	AttrTitle       = "AXTitle"
	AttrValue       = "AXValue"
	AttrHelp        = "AXHelp"
	AttrDescription = "AXDescription"
)

// Accessibility actions invoked by the dispatcher.
const (
	ActionPress         = "AXPress"
	ActionConfirm       = "AXConfirm"
	ActionShowDefaultUI = "AXShowDefaultUI"
)

// Accessibility reads and acts on the live accessibility tree. Every call is
// synchronous against the OS tree; none of the methods retain state.
type Accessibility interface {
	// CheckPermission reports whether the process may use the accessibility
	// API at all. The returned error carries user guidance.
	CheckPermission() error

	// WindowRoot returns the frontmost window of the application, or nil if
	// the application has no window to expose.
	WindowRoot(appID string) (UIElement, error)

	// MenuBar returns the application's menu bar, or nil if unavailable.
	MenuBar(appID string) (UIElement, error)

	// Attr reads a named string attribute; absent attributes read as "".
	Attr(el UIElement, name string) string

	// Children enumerates the node's children in document order.
	Children(el UIElement) []UIElement

	// Frame returns the element's screen rectangle.
	Frame(el UIElement) (Frame, bool)

	// Window returns the window containing the element.
	Window(el UIElement) (UIElement, bool)

	// Perform invokes a named accessibility action on the element.
	Perform(el UIElement, action string) error

	// SetTextValue assigns the element's value attribute directly.
	SetTextValue(el UIElement, text string) error

	// SelectAllText selects the element's full visible text range.
	SelectAllText(el UIElement) error

	// SetSelectedText replaces the element's current selection.
	SetSelectedText(el UIElement, text string) error

	// Focus gives the element keyboard focus.
	Focus(el UIElement) error

	// FocusWindow raises and focuses a window element.
	FocusWindow(win UIElement) error
}

// AppInfo describes a running application.
type AppInfo struct {
	BundleID string `json:"bundle_id" yaml:"bundle_id"`
	Name     string `json:"name"      yaml:"name"`
	PID      int    `json:"pid"       yaml:"pid"`
}

// AppController launches, activates, and observes applications by bundle
// identifier.
type AppController interface {
	IsRunning(appID string) bool

	// Launch asks the OS to start the application. Returns ErrNotInstalled
	// when the identifier does not resolve to a launchable target.
	Launch(appID string) error

	// Activate brings the application to the foreground. Best effort; a
	// silent activation failure shows up later as an empty or wrong-window
	// tree, not as an error here.
	Activate(appID string) error

	// FrontmostApp returns the bundle identifier of the frontmost application.
	FrontmostApp() (string, error)

	// RunningApps lists running applications that have a bundle identifier.
	RunningApps() ([]AppInfo, error)
}

// Input synthesizes pointer and keyboard events.
type Input interface {
	// DoubleClick posts two rapid down/up pointer pairs at the screen
	// position, separated by gap.
	DoubleClick(x, y float64, gap time.Duration) error

	// PressReturn posts a Return key down/up pair separated by gap.
	PressReturn(gap time.Duration) error
}
