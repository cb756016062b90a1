package webdriver

import (
	"encoding/json"
	"fmt"

	"github.com/swlab-dev/swfinder/pkg/core"
)

var _ core.Element = (*Element)(nil)

// Element is a handle to a DOM element inside a session.
type Element struct {
	client *Client
	id     string
}

// ID returns the remote end's element reference.
func (e *Element) ID() string {
	return e.id
}

// ref returns the wire representation of the element reference.
func (e *Element) ref() map[string]string {
	return map[string]string{webElementKey: e.id}
}

// GetAttribute returns the value of the named attribute, or "" when the
// attribute is not set.
func (e *Element) GetAttribute(name string) (string, error) {
	data, err := e.client.request("GET", e.client.sessionPath("/element/"+e.id+"/attribute/"+name), nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse attribute response: %w", err)
	}
	if resp.Value == nil {
		return "", nil
	}
	return *resp.Value, nil
}

// Text returns the element's rendered text.
func (e *Element) Text() (string, error) {
	data, err := e.client.request("GET", e.client.sessionPath("/element/"+e.id+"/text"), nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse text response: %w", err)
	}
	return resp.Value, nil
}
