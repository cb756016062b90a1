// Package finder resolves element queries against a live browser session.
// Lookups retry transient misses against a deadline, and in interactive
// mode a terminal miss escalates to a search across every window and
// nested frame for the context the element actually lives in.
package finder

import (
	"io"
	"time"

	"github.com/swlab-dev/swfinder/pkg/core"
	"github.com/swlab-dev/swfinder/pkg/xpath"
)

// Finder wraps a driver with retrying lookups and optional interactive
// context search.
type Finder struct {
	driver core.Driver
	retry  Retrier

	// Interactive enables the context search prompt when a lookup misses
	// for good.
	Interactive bool

	contexts *ContextFinder
}

// New creates a Finder with the default retry cadence. in and out feed the
// interactive context prompt; nil means stdin/stdout.
func New(driver core.Driver, in io.Reader, out io.Writer) *Finder {
	return &Finder{
		driver:   driver,
		retry:    Retrier{Timeout: DefaultTimeout, Interval: DefaultInterval},
		contexts: NewContextFinder(driver, in, out),
	}
}

// SetRetry overrides the retry cadence for subsequent lookups.
func (f *Finder) SetRetry(timeout, interval time.Duration) {
	f.retry = Retrier{Timeout: timeout, Interval: interval}
}

// Find compiles q and returns the first matching element.
func (f *Finder) Find(q xpath.Query) (core.Element, error) {
	sel, err := xpath.Build(q)
	if err != nil {
		return nil, err
	}
	return f.FindXPath(sel)
}

// FindXPath returns the first element matching the locator. Transient
// misses are retried until the deadline; in interactive mode a terminal
// miss runs the context search and, if the operator commits to a context,
// the lookup is repeated there.
func (f *Finder) FindXPath(sel string) (core.Element, error) {
	el, err := f.retry.Locate(func() (core.Element, error) {
		return f.driver.FindElement(sel)
	})
	if err == nil {
		return el, nil
	}
	if !core.IsTransient(err) {
		return nil, err
	}

	if f.Interactive {
		if _, serr := f.contexts.Search(sel); serr != nil {
			return nil, serr
		}
		return f.driver.FindElement(sel)
	}

	return nil, &core.ElementNotFoundError{XPath: sel}
}

// FindAll compiles q and returns every matching element. It waits for at
// least one match first, so a page still rendering does not yield an empty
// result.
func (f *Finder) FindAll(q xpath.Query) ([]core.Element, error) {
	sel, err := xpath.Build(q)
	if err != nil {
		return nil, err
	}
	return f.FindAllXPath(sel)
}

// FindAllXPath is FindAll for a pre-compiled locator.
func (f *Finder) FindAllXPath(sel string) ([]core.Element, error) {
	if _, err := f.FindXPath(sel); err != nil {
		return nil, err
	}
	return f.driver.FindElements(sel)
}

// FindOrNone returns the first match or nil, with no retrying and no
// escalation.
func (f *Finder) FindOrNone(q xpath.Query) (core.Element, error) {
	sel, err := xpath.Build(q)
	if err != nil {
		return nil, err
	}
	el, err := f.driver.FindElement(sel)
	if err != nil {
		if core.IsTransient(err) {
			return nil, nil
		}
		return nil, err
	}
	return el, nil
}

// SearchContext runs the context search directly for a pre-compiled
// locator and commits the driver to the chosen context.
func (f *Finder) SearchContext(sel string) (core.Context, error) {
	return f.contexts.Search(sel)
}
