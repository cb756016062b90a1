// Package core defines the contracts shared between the selector compiler,
// the element finder and the driver backends.
package core

import (
	"fmt"
	"strings"
)

// Element is a handle to a DOM element resolved by a driver.
type Element interface {
	// GetAttribute returns the value of the named attribute, or "" when
	// the attribute is not set.
	GetAttribute(name string) (string, error)
	// Text returns the element's rendered text.
	Text() (string, error)
}

// Driver is the stateful browser session the finder operates on. The
// window/frame selection it holds is a single shared resource; callers own
// it exclusively for the duration of a lookup.
type Driver interface {
	// FindElement returns the first element in the current browsing
	// context matching the XPath locator.
	FindElement(xpath string) (Element, error)
	// FindElements returns every element in the current browsing context
	// matching the XPath locator. An empty result is not an error.
	FindElements(xpath string) ([]Element, error)

	// WindowHandles returns the handles of all open windows in order.
	WindowHandles() ([]string, error)
	// CurrentWindow returns the handle of the active window.
	CurrentWindow() (string, error)
	// SwitchWindow activates the window at the given index. Negative
	// indices count from the end.
	SwitchWindow(index int) error

	// SwitchFrame descends into a child frame of the current browsing
	// context. The identifier is a frame name, a frame element id, or a
	// decimal sibling index.
	SwitchFrame(id string) error
	// SwitchParentFrame ascends one frame level.
	SwitchParentFrame() error
	// SwitchDefaultContent resets to the window's top-level document.
	SwitchDefaultContent() error
}

// Context identifies where in a multi-window, multi-frame session an
// element was found.
type Context struct {
	Window    int      // window index within WindowHandles order
	FramePath []string // frame identifiers from the top document down
}

// Frame renders the frame path as an absolute path. The empty path is the
// top-level document, "/".
func (c Context) Frame() string {
	return "/" + strings.Join(c.FramePath, "/")
}

func (c Context) String() string {
	return fmt.Sprintf("Window: %d, Frame: %s", c.Window, c.Frame())
}
