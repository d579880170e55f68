//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework Carbon
#include <CoreGraphics/CoreGraphics.h>
#include <Carbon/Carbon.h>

// Post one left-button down/up pair at the point with the given click state.
// clickState 2 marks the pair as the second click of a double-click.
static int cg_click_once(double x, double y, int clickState) {
    CGPoint point = CGPointMake(x, y);
    CGEventRef down = CGEventCreateMouseEvent(NULL, kCGEventLeftMouseDown, point, kCGMouseButtonLeft);
    CGEventRef up = CGEventCreateMouseEvent(NULL, kCGEventLeftMouseUp, point, kCGMouseButtonLeft);
    if (!down || !up) {
        if (down) CFRelease(down);
        if (up) CFRelease(up);
        return -1;
    }
    CGEventSetIntegerValueField(down, kCGMouseEventClickState, clickState);
    CGEventSetIntegerValueField(up, kCGMouseEventClickState, clickState);
    CGEventPost(kCGHIDEventTap, down);
    CGEventPost(kCGHIDEventTap, up);
    CFRelease(down);
    CFRelease(up);
    return 0;
}

static int cg_press_key(CGKeyCode keyCode, int down) {
    CGEventRef ev = CGEventCreateKeyboardEvent(NULL, keyCode, down != 0);
    if (!ev) return -1;
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}
*/
import "C"
import (
	"fmt"
	"time"
)

// returnKeyCode is the virtual key code for the Return key (kVK_Return).
const returnKeyCode = 36

// Input implements platform.Input with synthesized CGEvents.
type Input struct{}

// NewInput creates the macOS input synthesizer.
func NewInput() *Input {
	return &Input{}
}

func (i *Input) DoubleClick(x, y float64, gap time.Duration) error {
	if C.cg_click_once(C.double(x), C.double(y), 1) != 0 {
		return fmt.Errorf("could not post first click at (%.0f, %.0f)", x, y)
	}
	time.Sleep(gap)
	if C.cg_click_once(C.double(x), C.double(y), 2) != 0 {
		return fmt.Errorf("could not post second click at (%.0f, %.0f)", x, y)
	}
	return nil
}

func (i *Input) PressReturn(gap time.Duration) error {
	if C.cg_press_key(C.CGKeyCode(returnKeyCode), 1) != 0 {
		return fmt.Errorf("could not post Return key down")
	}
	time.Sleep(gap)
	if C.cg_press_key(C.CGKeyCode(returnKeyCode), 0) != 0 {
		return fmt.Errorf("could not post Return key up")
	}
	return nil
}
