package webdriver

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/swlab-dev/swfinder/pkg/core"
)

// webElementKey is the W3C WebDriver element reference key.
const webElementKey = "element-6066-11e4-a52e-4f735466cecf"

var _ core.Driver = (*Client)(nil)

type findRequest struct {
	Using string `json:"using"`
	Value string `json:"value"`
}

// FindElement returns the first element matching the XPath locator in the
// current browsing context.
func (c *Client) FindElement(xpath string) (core.Element, error) {
	data, err := c.request("POST", c.sessionPath("/element"), findRequest{Using: "xpath", Value: xpath})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value map[string]string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse element response: %w", err)
	}

	id := elementID(resp.Value)
	if id == "" {
		return nil, fmt.Errorf("%w: empty element reference", core.ErrNoSuchElement)
	}
	return &Element{client: c, id: id}, nil
}

// FindElements returns every element matching the XPath locator in the
// current browsing context. An empty result is not an error.
func (c *Client) FindElements(xpath string) ([]core.Element, error) {
	data, err := c.request("POST", c.sessionPath("/elements"), findRequest{Using: "xpath", Value: xpath})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value []map[string]string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse elements response: %w", err)
	}

	elements := make([]core.Element, 0, len(resp.Value))
	for _, ref := range resp.Value {
		if id := elementID(ref); id != "" {
			elements = append(elements, &Element{client: c, id: id})
		}
	}
	return elements, nil
}

// elementID extracts the element reference from a response value,
// accepting the legacy key some remote ends still send.
func elementID(value map[string]string) string {
	if id, ok := value[webElementKey]; ok {
		return id
	}
	return value["ELEMENT"]
}

// WindowHandles returns the handles of all open windows in order.
func (c *Client) WindowHandles() ([]string, error) {
	data, err := c.request("GET", c.sessionPath("/window/handles"), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value []string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse window handles: %w", err)
	}
	return resp.Value, nil
}

// CurrentWindow returns the handle of the active window.
func (c *Client) CurrentWindow() (string, error) {
	data, err := c.request("GET", c.sessionPath("/window"), nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse window handle: %w", err)
	}
	return resp.Value, nil
}

// SwitchWindow activates the window at the given index. Negative indices
// count from the end, so -1 is the newest window.
func (c *Client) SwitchWindow(index int) error {
	handles, err := c.WindowHandles()
	if err != nil {
		return err
	}

	if index < 0 {
		index += len(handles)
	}
	if index < 0 || index >= len(handles) {
		return fmt.Errorf("%w: index %d of %d windows", core.ErrNoSuchWindow, index, len(handles))
	}

	_, err = c.request("POST", c.sessionPath("/window"), map[string]string{"handle": handles[index]})
	return err
}

// SwitchFrame descends into a child frame. A decimal identifier switches
// by index. Names and ids are resolved by locating the frame element and
// switching to its reference, since the W3C protocol dropped server-side
// switching by name.
func (c *Client) SwitchFrame(id string) error {
	if n, err := strconv.Atoi(id); err == nil {
		_, err := c.request("POST", c.sessionPath("/frame"), map[string]interface{}{"id": n})
		return err
	}

	locator := fmt.Sprintf("//iframe[@name=%[1]q or @id=%[1]q] | //frame[@name=%[1]q or @id=%[1]q]", id)
	el, err := c.FindElement(locator)
	if err != nil {
		if core.IsTransient(err) {
			return fmt.Errorf("%w: %q", core.ErrNoSuchFrame, id)
		}
		return err
	}

	_, err = c.request("POST", c.sessionPath("/frame"), map[string]interface{}{
		"id": el.(*Element).ref(),
	})
	return err
}

// SwitchParentFrame ascends one frame level.
func (c *Client) SwitchParentFrame() error {
	_, err := c.request("POST", c.sessionPath("/frame/parent"), struct{}{})
	return err
}

// SwitchDefaultContent resets to the window's top-level document.
func (c *Client) SwitchDefaultContent() error {
	_, err := c.request("POST", c.sessionPath("/frame"), map[string]interface{}{"id": nil})
	return err
}
