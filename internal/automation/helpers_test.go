package automation

import (
	"time"

	"go.uber.org/zap"

	"github.com/agentdesk/macpilot/internal/config"
	"github.com/agentdesk/macpilot/internal/platform"
	"github.com/agentdesk/macpilot/internal/platform/platformtest"
	"github.com/agentdesk/macpilot/internal/session"
)

// testHarness bundles a service with its fake provider and session, with
// sleeps recorded instead of slept.
type testHarness struct {
	svc   *Service
	fake  *platformtest.Fake
	sess  *session.Session
	slept []time.Duration
}

func newHarness() *testHarness {
	h := &testHarness{
		fake: platformtest.New(),
		sess: session.New(),
	}
	h.svc = New(config.Default(), h.fake.Provider(), h.sess, zap.NewNop())
	h.svc.sleep = func(d time.Duration) { h.slept = append(h.slept, d) }
	return h
}

// windowWith wraps children in a plain AXWindow node.
func windowWith(children ...*platformtest.Node) *platformtest.Node {
	return platformtest.NewNode("AXWindow", "Main", children...)
}

func button(title string) *platformtest.Node {
	return platformtest.NewNode("AXButton", title)
}

func textField(title string) *platformtest.Node {
	return platformtest.NewNode("AXTextField", title)
}

func outlineRow(title string, frame *platform.Frame) *platformtest.Node {
	n := platformtest.NewNode("AXRow", title)
	n.Subrole = "AXOutlineRow"
	n.Frame = frame
	return n
}
