//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework Foundation
#import <Cocoa/Cocoa.h>
#include <stdlib.h>
#include <string.h>

static int app_running_pid(const char *bundleID) {
    @autoreleasepool {
        NSString *bid = [NSString stringWithUTF8String:bundleID];
        NSArray<NSRunningApplication *> *apps =
            [NSRunningApplication runningApplicationsWithBundleIdentifier:bid];
        if ([apps count] == 0) return -1;
        return (int)[[apps firstObject] processIdentifier];
    }
}

// Returns 0 on success, -1 when the bundle identifier resolves to nothing.
static int app_launch(const char *bundleID) {
    @autoreleasepool {
        NSString *bid = [NSString stringWithUTF8String:bundleID];
        NSWorkspace *ws = [NSWorkspace sharedWorkspace];
        NSURL *url = [ws URLForApplicationWithBundleIdentifier:bid];
        if (url == nil) return -1;
        NSWorkspaceOpenConfiguration *config = [NSWorkspaceOpenConfiguration configuration];
        [ws openApplicationAtURL:url configuration:config completionHandler:nil];
        return 0;
    }
}

static int app_activate(const char *bundleID) {
    @autoreleasepool {
        NSString *bid = [NSString stringWithUTF8String:bundleID];
        NSArray<NSRunningApplication *> *apps =
            [NSRunningApplication runningApplicationsWithBundleIdentifier:bid];
        if ([apps count] == 0) return -1;
        BOOL ok = [[apps firstObject] activateWithOptions:NSApplicationActivateIgnoringOtherApps];
        return ok ? 0 : -1;
    }
}

static char *app_frontmost_bundle_id(void) {
    @autoreleasepool {
        NSRunningApplication *front = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (front == nil || front.bundleIdentifier == nil) return NULL;
        return strdup([front.bundleIdentifier UTF8String]);
    }
}

// Newline-separated "bundleID\tname\tpid" records for every running app
// that has a bundle identifier. Caller frees.
static char *app_list_running(void) {
    @autoreleasepool {
        NSMutableString *out = [NSMutableString string];
        for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
            if (app.bundleIdentifier == nil) continue;
            [out appendFormat:@"%@\t%@\t%d\n",
                app.bundleIdentifier,
                app.localizedName ?: @"",
                app.processIdentifier];
        }
        return strdup([out UTF8String]);
    }
}
*/
import "C"
import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/agentdesk/macpilot/internal/platform"
)

// AppController implements platform.AppController with NSWorkspace.
type AppController struct{}

// NewAppController creates the macOS application controller.
func NewAppController() *AppController {
	return &AppController{}
}

// pidForBundleID resolves a bundle identifier to the pid of its running
// instance.
func pidForBundleID(appID string) (int, error) {
	cID := C.CString(appID)
	defer C.free(unsafe.Pointer(cID))
	pid := int(C.app_running_pid(cID))
	if pid < 0 {
		return 0, fmt.Errorf("%q is not running", appID)
	}
	return pid, nil
}

func (c *AppController) IsRunning(appID string) bool {
	cID := C.CString(appID)
	defer C.free(unsafe.Pointer(cID))
	return C.app_running_pid(cID) >= 0
}

func (c *AppController) Launch(appID string) error {
	cID := C.CString(appID)
	defer C.free(unsafe.Pointer(cID))
	if C.app_launch(cID) != 0 {
		return fmt.Errorf("%q: %w", appID, platform.ErrNotInstalled)
	}
	return nil
}

func (c *AppController) Activate(appID string) error {
	cID := C.CString(appID)
	defer C.free(unsafe.Pointer(cID))
	if C.app_activate(cID) != 0 {
		return fmt.Errorf("could not activate %q", appID)
	}
	return nil
}

func (c *AppController) FrontmostApp() (string, error) {
	cID := C.app_frontmost_bundle_id()
	if cID == nil {
		return "", fmt.Errorf("no frontmost application")
	}
	defer C.free(unsafe.Pointer(cID))
	return C.GoString(cID), nil
}

func (c *AppController) RunningApps() ([]platform.AppInfo, error) {
	cList := C.app_list_running()
	if cList == nil {
		return nil, fmt.Errorf("could not enumerate running applications")
	}
	defer C.free(unsafe.Pointer(cList))

	var out []platform.AppInfo
	for _, line := range strings.Split(strings.TrimRight(C.GoString(cList), "\n"), "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		pid, _ := strconv.Atoi(parts[2])
		out = append(out, platform.AppInfo{BundleID: parts[0], Name: parts[1], PID: pid})
	}
	return out, nil
}
