package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Flags:    GlobalFlags,
		Writer:   &out,
		Commands: []*cli.Command{xpathCommand, findCommand},
	}
	err := app.Run(append([]string{"swfinder"}, args...))
	return out.String(), err
}

func TestXPathCommand(t *testing.T) {
	out, err := runApp(t, "xpath", "--tag", "input", "--id", "username")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "//input[@id='username']" {
		t.Errorf("output = %q", out)
	}
}

func TestXPathCommandExpression(t *testing.T) {
	out, err := runApp(t, "xpath", "--class-contains", "btn & !disabled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "//*[contains(@class, 'btn') and not(contains(@class, 'disabled'))]"
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestXPathCommandExtraAttrs(t *testing.T) {
	out, err := runApp(t, "xpath", "--tag", "button", "--attr", "type=submit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "//button[@type='submit']" {
		t.Errorf("output = %q", out)
	}
}

func TestXPathCommandBadAttr(t *testing.T) {
	_, err := runApp(t, "xpath", "--attr", "no-equals-sign")
	if err == nil {
		t.Fatal("expected error for malformed --attr")
	}
}

func TestXPathCommandMalformedExpression(t *testing.T) {
	_, err := runApp(t, "xpath", "--id", "(a & b")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindCommandRequiresLocator(t *testing.T) {
	_, err := runApp(t, "find")
	if err == nil {
		t.Fatal("expected error without XPATH argument")
	}
}
