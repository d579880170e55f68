//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>
#include <string.h>
#include <stdio.h>

// Copy an attribute value as a UTF-8 C string. Strings come back verbatim;
// numbers and booleans are formatted. Caller frees the result.
static char *ax_copy_string_attr(AXUIElementRef el, const char *name) {
    CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
    CFRelease(cfName);
    if (err != kAXErrorSuccess || value == NULL) return NULL;

    char *result = NULL;
    if (CFGetTypeID(value) == CFStringGetTypeID()) {
        CFStringRef s = (CFStringRef)value;
        CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
        result = malloc(len);
        if (result && !CFStringGetCString(s, result, len, kCFStringEncodingUTF8)) {
            free(result);
            result = NULL;
        }
    } else if (CFGetTypeID(value) == CFNumberGetTypeID()) {
        double d = 0;
        CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, &d);
        char buf[64];
        snprintf(buf, sizeof(buf), "%g", d);
        result = strdup(buf);
    } else if (CFGetTypeID(value) == CFBooleanGetTypeID()) {
        result = strdup(CFBooleanGetValue((CFBooleanRef)value) ? "true" : "false");
    }
    CFRelease(value);
    return result;
}

static CFArrayRef ax_copy_children(AXUIElementRef el) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXChildrenAttribute, &value) != kAXErrorSuccess) {
        return NULL;
    }
    if (value && CFGetTypeID(value) != CFArrayGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (CFArrayRef)value;
}

static AXUIElementRef ax_copy_element_attr(AXUIElementRef el, CFStringRef name) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, name, &value) != kAXErrorSuccess || value == NULL) {
        return NULL;
    }
    if (CFGetTypeID(value) != AXUIElementGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    return (AXUIElementRef)value;
}

static int ax_get_frame(AXUIElementRef el, double *x, double *y, double *w, double *h) {
    CFTypeRef posValue = NULL, sizeValue = NULL;
    CGPoint pos;
    CGSize size;
    if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, &posValue) != kAXErrorSuccess) {
        return -1;
    }
    if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, &sizeValue) != kAXErrorSuccess) {
        CFRelease(posValue);
        return -1;
    }
    int ok = AXValueGetValue((AXValueRef)posValue, kAXValueTypeCGPoint, &pos) &&
             AXValueGetValue((AXValueRef)sizeValue, kAXValueTypeCGSize, &size);
    CFRelease(posValue);
    CFRelease(sizeValue);
    if (!ok) return -1;
    *x = pos.x; *y = pos.y; *w = size.width; *h = size.height;
    return 0;
}

static int ax_perform(AXUIElementRef el, const char *action) {
    CFStringRef cfAction = CFStringCreateWithCString(NULL, action, kCFStringEncodingUTF8);
    AXError err = AXUIElementPerformAction(el, cfAction);
    CFRelease(cfAction);
    return err == kAXErrorSuccess ? 0 : (int)err;
}

static int ax_set_string_attr(AXUIElementRef el, CFStringRef name, const char *value) {
    CFStringRef cfValue = CFStringCreateWithCString(NULL, value, kCFStringEncodingUTF8);
    AXError err = AXUIElementSetAttributeValue(el, name, cfValue);
    CFRelease(cfValue);
    return err == kAXErrorSuccess ? 0 : (int)err;
}

static int ax_set_bool_attr(AXUIElementRef el, CFStringRef name, int value) {
    AXError err = AXUIElementSetAttributeValue(el, name, value ? kCFBooleanTrue : kCFBooleanFalse);
    return err == kAXErrorSuccess ? 0 : (int)err;
}

// Select the element's full visible text range.
static int ax_select_all(AXUIElementRef el) {
    CFTypeRef countValue = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXNumberOfCharactersAttribute, &countValue) != kAXErrorSuccess) {
        return -1;
    }
    long count = 0;
    if (CFGetTypeID(countValue) == CFNumberGetTypeID()) {
        CFNumberGetValue((CFNumberRef)countValue, kCFNumberLongType, &count);
    }
    CFRelease(countValue);

    CFRange range = CFRangeMake(0, count);
    AXValueRef rangeValue = AXValueCreate(kAXValueTypeCFRange, &range);
    if (!rangeValue) return -1;
    AXError err = AXUIElementSetAttributeValue(el, kAXSelectedTextRangeAttribute, rangeValue);
    CFRelease(rangeValue);
    return err == kAXErrorSuccess ? 0 : (int)err;
}

static AXUIElementRef ax_app_element(pid_t pid) {
    return AXUIElementCreateApplication(pid);
}

static void ax_retain(AXUIElementRef el) { CFRetain(el); }
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/agentdesk/macpilot/internal/platform"
)

// element wraps a retained AXUIElementRef. References are retained for the
// process lifetime; the registry clear orphans them without releasing, which
// matches the handle-invalidation model of the session store.
type element struct {
	ref C.AXUIElementRef
}

// Accessibility implements platform.Accessibility over the AX API.
type Accessibility struct{}

// NewAccessibility creates the macOS accessibility adapter.
func NewAccessibility() *Accessibility {
	return &Accessibility{}
}

func asElement(el platform.UIElement) *element {
	e, _ := el.(*element)
	return e
}

func (a *Accessibility) CheckPermission() error {
	return checkAccessibilityPermission()
}

func (a *Accessibility) WindowRoot(appID string) (platform.UIElement, error) {
	pid, err := pidForBundleID(appID)
	if err != nil {
		return nil, err
	}
	app := C.ax_app_element(C.pid_t(pid))
	if app == 0 {
		return nil, fmt.Errorf("no accessibility element for pid %d", pid)
	}
	defer C.CFRelease(C.CFTypeRef(app))

	if win := C.ax_copy_element_attr(app, C.kAXFocusedWindowAttribute); win != 0 {
		return &element{ref: win}, nil
	}
	// No focused window; fall back to the first window, if any.
	children := C.ax_copy_children(app)
	if children == 0 {
		return nil, nil
	}
	defer C.CFRelease(C.CFTypeRef(children))
	for i := C.CFIndex(0); i < C.CFArrayGetCount(children); i++ {
		ref := C.AXUIElementRef(C.CFArrayGetValueAtIndex(children, i))
		role := attrString(ref, platform.AttrRole)
		if role == "AXWindow" {
			C.ax_retain(ref)
			return &element{ref: ref}, nil
		}
	}
	return nil, nil
}

func (a *Accessibility) MenuBar(appID string) (platform.UIElement, error) {
	pid, err := pidForBundleID(appID)
	if err != nil {
		return nil, err
	}
	app := C.ax_app_element(C.pid_t(pid))
	if app == 0 {
		return nil, fmt.Errorf("no accessibility element for pid %d", pid)
	}
	defer C.CFRelease(C.CFTypeRef(app))

	menu := C.ax_copy_element_attr(app, C.kAXMenuBarAttribute)
	if menu == 0 {
		return nil, nil
	}
	return &element{ref: menu}, nil
}

func attrString(ref C.AXUIElementRef, name string) string {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.ax_copy_string_attr(ref, cName)
	if cValue == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cValue))
	return C.GoString(cValue)
}

func (a *Accessibility) Attr(el platform.UIElement, name string) string {
	e := asElement(el)
	if e == nil {
		return ""
	}
	return attrString(e.ref, name)
}

func (a *Accessibility) Children(el platform.UIElement) []platform.UIElement {
	e := asElement(el)
	if e == nil {
		return nil
	}
	children := C.ax_copy_children(e.ref)
	if children == 0 {
		return nil
	}
	defer C.CFRelease(C.CFTypeRef(children))

	count := int(C.CFArrayGetCount(children))
	out := make([]platform.UIElement, 0, count)
	for i := 0; i < count; i++ {
		ref := C.AXUIElementRef(C.CFArrayGetValueAtIndex(children, C.CFIndex(i)))
		C.ax_retain(ref)
		out = append(out, &element{ref: ref})
	}
	return out
}

func (a *Accessibility) Frame(el platform.UIElement) (platform.Frame, bool) {
	e := asElement(el)
	if e == nil {
		return platform.Frame{}, false
	}
	var x, y, w, h C.double
	if C.ax_get_frame(e.ref, &x, &y, &w, &h) != 0 {
		return platform.Frame{}, false
	}
	return platform.Frame{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}, true
}

func (a *Accessibility) Window(el platform.UIElement) (platform.UIElement, bool) {
	e := asElement(el)
	if e == nil {
		return nil, false
	}
	win := C.ax_copy_element_attr(e.ref, C.kAXWindowAttribute)
	if win == 0 {
		return nil, false
	}
	return &element{ref: win}, true
}

func (a *Accessibility) Perform(el platform.UIElement, action string) error {
	e := asElement(el)
	if e == nil {
		return fmt.Errorf("nil element")
	}
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))
	if rc := C.ax_perform(e.ref, cAction); rc != 0 {
		return fmt.Errorf("action %s failed (AXError %d)", action, int(rc))
	}
	return nil
}

func (a *Accessibility) SetTextValue(el platform.UIElement, text string) error {
	e := asElement(el)
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	if rc := C.ax_set_string_attr(e.ref, C.kAXValueAttribute, cText); rc != 0 {
		return fmt.Errorf("set value failed (AXError %d)", int(rc))
	}
	return nil
}

func (a *Accessibility) SelectAllText(el platform.UIElement) error {
	e := asElement(el)
	if rc := C.ax_select_all(e.ref); rc != 0 {
		return fmt.Errorf("select full text range failed (AXError %d)", int(rc))
	}
	return nil
}

func (a *Accessibility) SetSelectedText(el platform.UIElement, text string) error {
	e := asElement(el)
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	if rc := C.ax_set_string_attr(e.ref, C.kAXSelectedTextAttribute, cText); rc != 0 {
		return fmt.Errorf("set selected text failed (AXError %d)", int(rc))
	}
	return nil
}

func (a *Accessibility) Focus(el platform.UIElement) error {
	e := asElement(el)
	if rc := C.ax_set_bool_attr(e.ref, C.kAXFocusedAttribute, 1); rc != 0 {
		return fmt.Errorf("focus element failed (AXError %d)", int(rc))
	}
	return nil
}

func (a *Accessibility) FocusWindow(win platform.UIElement) error {
	e := asElement(win)
	if e == nil {
		return fmt.Errorf("nil window")
	}
	if rc := C.ax_set_bool_attr(e.ref, C.kAXMainAttribute, 1); rc != 0 {
		return fmt.Errorf("focus window failed (AXError %d)", int(rc))
	}
	return nil
}
