package finder

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/swlab-dev/swfinder/pkg/core"
	"github.com/swlab-dev/swfinder/pkg/xpath"
)

func newTestFinder(d core.Driver, input string, out *bytes.Buffer) *Finder {
	f := New(d, bytes.NewBufferString(input), out)
	f.SetRetry(5*time.Millisecond, time.Millisecond)
	f.contexts.retry = Retrier{Timeout: 5 * time.Millisecond, Interval: time.Millisecond}
	return f
}

func TestFind(t *testing.T) {
	d := newFakeDriver(&fakeFrame{hasTarget: true})
	d.match = "//input[@id='username']"

	f := newTestFinder(d, "", &bytes.Buffer{})
	el, err := f.Find(xpath.Query{Tag: "input", ID: "username"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el == nil {
		t.Fatal("expected element")
	}
}

func TestFindMalformedQuery(t *testing.T) {
	d := newFakeDriver(&fakeFrame{hasTarget: true})
	f := newTestFinder(d, "", &bytes.Buffer{})

	_, err := f.Find(xpath.Query{ID: "(a & b"})
	var perr *xpath.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *xpath.ParseError", err)
	}
}

func TestFindXPathNotFound(t *testing.T) {
	d := newFakeDriver(&fakeFrame{})
	f := newTestFinder(d, "", &bytes.Buffer{})

	_, err := f.FindXPath(targetXPath)
	var nf *core.ElementNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *ElementNotFoundError", err)
	}
}

func TestFindXPathInteractive(t *testing.T) {
	// The element lives in window 1 inside frame-a. In interactive mode
	// a terminal miss runs the context search; once the operator picks a
	// context, the lookup is repeated there.
	d := twoWindowScenario()
	var out bytes.Buffer
	f := newTestFinder(d, "1\n", &out)
	f.Interactive = true

	el, err := f.FindXPath(targetXPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el == nil {
		t.Fatal("expected element")
	}
	if d.cur != 1 {
		t.Errorf("driver window = %d, want 1", d.cur)
	}
	if got := d.framePath(); len(got) != 1 || got[0] != "frame-a" {
		t.Errorf("driver frame path = %v, want [frame-a]", got)
	}
}

func TestFindXPathInteractiveDeclined(t *testing.T) {
	d := twoWindowScenario()
	var out bytes.Buffer
	f := newTestFinder(d, "n\n", &out)
	f.Interactive = true

	_, err := f.FindXPath(targetXPath)
	if !errors.Is(err, core.ErrSearchAborted) {
		t.Fatalf("error = %v, want ErrSearchAborted", err)
	}
}

func TestFindAll(t *testing.T) {
	d := newFakeDriver(&fakeFrame{hasTarget: true})
	f := newTestFinder(d, "", &bytes.Buffer{})

	els, err := f.FindAllXPath(targetXPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(els) != 1 {
		t.Errorf("len = %d, want 1", len(els))
	}
}

func TestFindOrNone(t *testing.T) {
	d := newFakeDriver(&fakeFrame{})
	f := newTestFinder(d, "", &bytes.Buffer{})

	el, err := f.FindOrNone(xpath.Query{ID: "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el != nil {
		t.Errorf("element = %v, want nil", el)
	}
}
