// Package webdriver implements the driver contract over the W3C WebDriver
// wire protocol, talking to a remote end such as chromedriver.
package webdriver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/swlab-dev/swfinder/pkg/core"
)

// Client communicates with a WebDriver remote end.
type Client struct {
	http      *http.Client
	baseURL   string
	sessionID string
}

// NewClient creates a client for the given remote end URL.
func NewClient(serverURL string) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(serverURL, "/"),
	}
}

// SessionID returns the current session ID.
func (c *Client) SessionID() string {
	return c.sessionID
}

// HasSession returns true if a session is active.
func (c *Client) HasSession() bool {
	return c.sessionID != ""
}

// request makes an HTTP request to the remote end.
func (c *Client) request(method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Value.Error != "" {
			return nil, mapError(errResp.Value.Error, errResp.Value.Message)
		}
		return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// sessionPath returns path with session ID prefix.
func (c *Client) sessionPath(path string) string {
	return fmt.Sprintf("/session/%s%s", c.sessionID, path)
}

type errorResponse struct {
	Value struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	} `json:"value"`
}

// mapError converts W3C error codes into the shared taxonomy so retry
// logic can tell transient misses from real failures.
func mapError(code, message string) error {
	switch code {
	case "no such element":
		return fmt.Errorf("%w: %s", core.ErrNoSuchElement, message)
	case "stale element reference":
		return fmt.Errorf("%w: %s", core.ErrStaleElement, message)
	case "no such frame":
		return fmt.Errorf("%w: %s", core.ErrNoSuchFrame, message)
	case "no such window":
		return fmt.Errorf("%w: %s", core.ErrNoSuchWindow, message)
	}
	return fmt.Errorf("%s: %s", code, message)
}

// Status checks if the remote end is ready for new sessions.
func (c *Client) Status() (bool, error) {
	data, err := c.request("GET", "/status", nil)
	if err != nil {
		return false, err
	}

	var resp struct {
		Value struct {
			Ready   bool   `json:"ready"`
			Message string `json:"message"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return false, err
	}

	return resp.Value.Ready, nil
}

// NewSession starts a session with the given browser options.
func (c *Client) NewSession(opts Options) error {
	req := map[string]interface{}{
		"capabilities": map[string]interface{}{
			"alwaysMatch": opts.capabilities(),
		},
	}

	data, err := c.request("POST", "/session", req)
	if err != nil {
		return err
	}

	var resp struct {
		Value struct {
			SessionID string `json:"sessionId"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("parse session response: %w", err)
	}
	if resp.Value.SessionID == "" {
		return fmt.Errorf("no session ID in response")
	}

	c.sessionID = resp.Value.SessionID
	return nil
}

// DeleteSession ends the current session.
func (c *Client) DeleteSession() error {
	if c.sessionID == "" {
		return nil
	}

	_, err := c.request("DELETE", c.sessionPath(""), nil)
	c.sessionID = ""
	return err
}

// Close ends the session and cleans up.
func (c *Client) Close() error {
	return c.DeleteSession()
}

// Get navigates the current window to the given URL.
func (c *Client) Get(url string) error {
	_, err := c.request("POST", c.sessionPath("/url"), map[string]string{"url": url})
	return err
}

// Options mirror the browser conveniences of the original session setup.
type Options struct {
	Headless  bool `yaml:"headless"`
	MuteAudio bool `yaml:"muteAudio"`
	Maximize  bool `yaml:"maximize"`
	// Detach keeps the browser open after the session ends.
	Detach bool `yaml:"detach"`
}

func (o Options) capabilities() map[string]interface{} {
	var args []string
	if o.Headless {
		args = append(args, "--headless=new")
	}
	if o.MuteAudio {
		args = append(args, "--mute-audio")
	}
	if o.Maximize {
		args = append(args, "--start-maximized")
	}

	chrome := map[string]interface{}{}
	if len(args) > 0 {
		chrome["args"] = args
	}
	if o.Detach {
		chrome["detach"] = true
	}

	return map[string]interface{}{
		"browserName":        "chrome",
		"goog:chromeOptions": chrome,
	}
}
