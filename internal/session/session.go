// Package session owns the process-wide element registry and the last-known
// UI tree per application.
//
// Exactly one Session exists per process. The registry is not partitioned
// per application: a full scan for any application clears and repopulates
// it, invalidating every ID issued by earlier scans of any application.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/agentdesk/macpilot/internal/model"
	"github.com/agentdesk/macpilot/internal/platform"
)

// idCeiling is the counter value at which the next registry clear resets
// numbering to zero. A clear always precedes reuse of the low range, so
// recycled IDs cannot collide with live ones.
const idCeiling = 500

// Tree is the last-materialized tree for one application.
type Tree struct {
	Elements  []model.Element
	Stale     bool
	Timestamp time.Time
}

// Session is the single authoritative store mapping element IDs to live
// native handles, plus the last-known tree per application.
type Session struct {
	mu       sync.Mutex
	registry map[string]platform.UIElement
	trees    map[string]*Tree
	counter  int
}

// New creates an empty session. Call once at process start.
func New() *Session {
	return &Session{
		registry: make(map[string]platform.UIElement),
		trees:    make(map[string]*Tree),
	}
}

// NextID allocates the next element ID in the form "element_<n>".
func (s *Session) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("element_%d", s.counter)
	s.counter++
	return id
}

// Register inserts or overwrites the handle for an ID.
func (s *Session) Register(id string, el platform.UIElement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry[id] = el
}

// Resolve looks up the native handle for an ID.
func (s *Session) Resolve(id string) (platform.UIElement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.registry[id]
	return el, ok
}

// Exists reports whether an ID is currently registered.
func (s *Session) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.registry[id]
	return ok
}

// ClearRegistry wipes every registry entry and, once the counter has reached
// its ceiling, restarts numbering from zero. Invoked at the start of every
// full scan for any application.
func (s *Session) ClearRegistry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[string]platform.UIElement)
	if s.counter >= idCeiling {
		s.counter = 0
	}
}

// Reset wipes the registry and all stored trees. Exposed for external
// cleanup between agent sessions.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[string]platform.UIElement)
	s.trees = make(map[string]*Tree)
	if s.counter >= idCeiling {
		s.counter = 0
	}
}

// SetTree stores a freshly scanned tree for an application and marks every
// other application's stored tree stale, since the scan just invalidated
// their element IDs.
func (s *Session) SetTree(appID string, elements []model.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for app, t := range s.trees {
		if app != appID {
			t.Stale = true
		}
	}
	s.trees[appID] = &Tree{Elements: elements, Timestamp: time.Now()}
}

// TreeFor returns the stored tree for an application, if any.
func (s *Session) TreeFor(appID string) (*Tree, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trees[appID]
	return t, ok
}

// SpliceTree replaces the node with the target ID inside an application's
// stored tree and returns the number of replacements. The stored tree keeps
// its timestamp; a partial update does not refresh the rest of the tree.
func (s *Session) SpliceTree(appID, target string, replacement []model.Element) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trees[appID]
	if !ok {
		return 0
	}
	elements, n := model.Splice(t.Elements, target, replacement)
	t.Elements = elements
	return n
}
