//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int ax_is_trusted() {
    return AXIsProcessTrusted();
}
*/
import "C"
import "fmt"

// checkAccessibilityPermission reports whether the process may use the
// accessibility API, with setup guidance when it may not.
func checkAccessibilityPermission() error {
	if C.ax_is_trusted() == 0 {
		return fmt.Errorf(
			"accessibility permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
				"Add the terminal or agent host running macpilot, then restart it and retry.")
	}
	return nil
}
