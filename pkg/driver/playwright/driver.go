// Package playwright implements the driver contract on top of a
// Playwright browser context, so searches can run against pages the
// library already manages instead of a separate WebDriver remote end.
package playwright

import (
	"fmt"
	"strconv"

	pw "github.com/playwright-community/playwright-go"

	"github.com/swlab-dev/swfinder/pkg/core"
)

var _ core.Driver = (*Driver)(nil)

// Driver adapts a Playwright browser context. Pages stand in for
// windows and the active frame tracks the current browsing context.
type Driver struct {
	context pw.BrowserContext
	page    pw.Page
	frame   pw.Frame
}

// New wraps an existing browser context. The first page becomes the
// active window.
func New(context pw.BrowserContext) (*Driver, error) {
	pages := context.Pages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: context has no pages", core.ErrNoSuchWindow)
	}
	return &Driver{
		context: context,
		page:    pages[0],
		frame:   pages[0].MainFrame(),
	}, nil
}

// FindElement returns the first element matching the XPath locator in
// the active frame.
func (d *Driver) FindElement(xpath string) (core.Element, error) {
	handle, err := d.frame.QuerySelector("xpath=" + xpath)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", xpath, err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", core.ErrNoSuchElement, xpath)
	}
	return &element{handle: handle}, nil
}

// FindElements returns every element matching the XPath locator in the
// active frame. An empty result is not an error.
func (d *Driver) FindElements(xpath string) ([]core.Element, error) {
	handles, err := d.frame.QuerySelectorAll("xpath=" + xpath)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", xpath, err)
	}

	elements := make([]core.Element, 0, len(handles))
	for _, handle := range handles {
		elements = append(elements, &element{handle: handle})
	}
	return elements, nil
}

// WindowHandles returns a synthetic handle per open page, in order.
func (d *Driver) WindowHandles() ([]string, error) {
	pages := d.context.Pages()
	handles := make([]string, len(pages))
	for i := range pages {
		handles[i] = pageHandle(i)
	}
	return handles, nil
}

// CurrentWindow returns the handle of the active page.
func (d *Driver) CurrentWindow() (string, error) {
	for i, page := range d.context.Pages() {
		if page == d.page {
			return pageHandle(i), nil
		}
	}
	return "", fmt.Errorf("%w: active page was closed", core.ErrNoSuchWindow)
}

func pageHandle(index int) string {
	return fmt.Sprintf("page-%d", index)
}

// SwitchWindow activates the page at the given index. Negative indices
// count from the end, so -1 is the newest page.
func (d *Driver) SwitchWindow(index int) error {
	pages := d.context.Pages()
	if index < 0 {
		index += len(pages)
	}
	if index < 0 || index >= len(pages) {
		return fmt.Errorf("%w: index %d of %d pages", core.ErrNoSuchWindow, index, len(pages))
	}

	d.page = pages[index]
	d.frame = d.page.MainFrame()
	return d.page.BringToFront()
}

// SwitchFrame descends into a child frame of the active frame. A
// decimal identifier switches by position; otherwise the identifier is
// matched against the frame's name, then its element's id attribute.
func (d *Driver) SwitchFrame(id string) error {
	children := d.frame.ChildFrames()

	if n, err := strconv.Atoi(id); err == nil {
		if n < 0 || n >= len(children) {
			return fmt.Errorf("%w: index %d of %d frames", core.ErrNoSuchFrame, n, len(children))
		}
		d.frame = children[n]
		return nil
	}

	for _, child := range children {
		if child.Name() == id {
			d.frame = child
			return nil
		}
	}
	for _, child := range children {
		el, err := child.FrameElement()
		if err != nil {
			continue
		}
		attr, err := el.GetAttribute("id")
		if err == nil && attr == id {
			d.frame = child
			return nil
		}
	}
	return fmt.Errorf("%w: %q", core.ErrNoSuchFrame, id)
}

// SwitchParentFrame ascends one frame level. At the top it stays on the
// main frame, matching WebDriver behavior.
func (d *Driver) SwitchParentFrame() error {
	if parent := d.frame.ParentFrame(); parent != nil {
		d.frame = parent
	}
	return nil
}

// SwitchDefaultContent resets to the page's main frame.
func (d *Driver) SwitchDefaultContent() error {
	d.frame = d.page.MainFrame()
	return nil
}

var _ core.Element = (*element)(nil)

type element struct {
	handle pw.ElementHandle
}

func (e *element) GetAttribute(name string) (string, error) {
	return e.handle.GetAttribute(name)
}

func (e *element) Text() (string, error) {
	return e.handle.TextContent()
}
