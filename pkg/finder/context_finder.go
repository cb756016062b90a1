package finder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/swlab-dev/swfinder/pkg/core"
)

// searchRetry is the per-node budget while probing contexts. Deliberately
// much shorter than the caller's normal budget; the search visits many
// nodes and most of them miss.
var searchRetry = Retrier{Timeout: time.Second, Interval: 100 * time.Millisecond}

// frameLocator enumerates the child frames of the current document.
const frameLocator = "//iframe | //frame"

// ContextFinder works out which window and frame an element actually lives
// in when a direct lookup misses. It walks every window and every nested
// frame depth-first, collects the contexts where the locator resolves, and
// asks the operator to pick one.
type ContextFinder struct {
	driver core.Driver
	in     *bufio.Reader
	out    io.Writer
	retry  Retrier
}

// NewContextFinder creates a ContextFinder. in and out feed the selection
// prompt; nil means stdin/stdout.
func NewContextFinder(driver core.Driver, in io.Reader, out io.Writer) *ContextFinder {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &ContextFinder{
		driver: driver,
		in:     bufio.NewReader(in),
		out:    out,
		retry:  searchRetry,
	}
}

// Search traverses all windows and frames looking for xpath. On success the
// driver is committed to the chosen context and that context is returned.
// The driver is restored to the window and top-level document it started in
// on every other path, including not-found and operator decline.
func (f *ContextFinder) Search(xpath string) (core.Context, error) {
	handles, err := f.driver.WindowHandles()
	if err != nil {
		return core.Context{}, err
	}
	current, err := f.driver.CurrentWindow()
	if err != nil {
		return core.Context{}, err
	}
	start := 0
	for i, h := range handles {
		if h == current {
			start = i
			break
		}
	}

	contexts := f.collect(xpath, len(handles), start)

	// Put the driver back where the caller left it before anything else;
	// this runs on every outcome, not just failures.
	if err := f.driver.SwitchWindow(start); err != nil {
		return core.Context{}, err
	}
	if err := f.driver.SwitchDefaultContent(); err != nil {
		return core.Context{}, err
	}

	if len(contexts) == 0 {
		return core.Context{}, &core.ElementNotFoundError{XPath: xpath}
	}

	fmt.Fprintf(f.out, "Context finder: element found in the following contexts\n\t%q\n", xpath)
	fmt.Fprintln(f.out, formatContexts(contexts, start))

	choice, err := f.prompt(len(contexts))
	if err != nil {
		return core.Context{}, err
	}
	if choice == 0 {
		return core.Context{}, core.ErrSearchAborted
	}

	ctx := contexts[choice-1]
	if ctx.Window != start {
		if err := f.driver.SwitchWindow(ctx.Window); err != nil {
			return core.Context{}, err
		}
	}
	for _, id := range ctx.FramePath {
		if err := f.retry.Do(func() error { return f.driver.SwitchFrame(id) }); err != nil {
			return core.Context{}, err
		}
	}
	return ctx, nil
}

// collect visits every window, the active one first and the rest in their
// original index order, and gathers the contexts in which xpath resolves.
// A window that cannot be entered is skipped, not fatal.
func (f *ContextFinder) collect(xpath string, windows, start int) []core.Context {
	order := make([]int, 0, windows)
	order = append(order, start)
	for i := 0; i < windows; i++ {
		if i != start {
			order = append(order, i)
		}
	}

	var contexts []core.Context
	for _, w := range order {
		if err := f.driver.SwitchWindow(w); err != nil {
			continue
		}
		if err := f.driver.SwitchDefaultContent(); err != nil {
			continue
		}
		contexts = append(contexts, f.dfs(xpath, w, nil)...)
	}
	return contexts
}

// dfs probes the current document for xpath, then descends into each child
// frame in document order. path is copied on descent so sibling branches
// never observe each other's mutations.
func (f *ContextFinder) dfs(xpath string, window int, path []string) []core.Context {
	var contexts []core.Context

	if _, err := f.retry.Locate(func() (core.Element, error) {
		return f.driver.FindElement(xpath)
	}); err == nil {
		contexts = append(contexts, core.Context{
			Window:    window,
			FramePath: append([]string(nil), path...),
		})
	}

	frames, err := f.driver.FindElements(frameLocator)
	if err != nil {
		return contexts
	}
	// Resolve identifiers before the first switch; descending invalidates
	// the sibling element handles.
	ids := make([]string, len(frames))
	for i, el := range frames {
		ids[i] = frameID(el, i)
	}

	for _, id := range ids {
		if err := f.driver.SwitchFrame(id); err != nil {
			continue
		}
		child := append(append([]string(nil), path...), id)
		contexts = append(contexts, f.dfs(xpath, window, child)...)
		if err := f.driver.SwitchParentFrame(); err != nil {
			break
		}
	}
	return contexts
}

// frameID names a frame by its name attribute, then its id, then its
// sibling index as a decimal string.
func frameID(el core.Element, index int) string {
	if name, err := el.GetAttribute("name"); err == nil && name != "" {
		return name
	}
	if id, err := el.GetAttribute("id"); err == nil && id != "" {
		return id
	}
	return strconv.Itoa(index)
}

// formatContexts renders the 1-based candidate list. Hits in the window
// the search started from omit the window part.
func formatContexts(contexts []core.Context, activeWindow int) string {
	var b strings.Builder
	for i, ctx := range contexts {
		fmt.Fprintf(&b, "#%d\n", i+1)
		if ctx.Window == activeWindow {
			fmt.Fprintf(&b, "Frame: %s\n", ctx.Frame())
		} else {
			fmt.Fprintf(&b, "%s\n", ctx)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// prompt reads the operator's pick: a valid 1-based context number, or "n"
// to decline. Anything else re-prompts. Returns 0 on decline; end of input
// counts as declining.
func (f *ContextFinder) prompt(n int) (int, error) {
	for {
		fmt.Fprintf(f.out, "Select the context you want to use [1-%d] / [N]o: ", n)

		line, err := f.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return 0, nil
			}
			return 0, err
		}

		line = strings.ToLower(strings.TrimSpace(line))
		if line == "n" || line == "no" {
			return 0, nil
		}
		if i, aerr := strconv.Atoi(line); aerr == nil && i >= 1 && i <= n {
			return i, nil
		}
	}
}
