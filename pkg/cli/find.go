package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/swlab-dev/swfinder/pkg/config"
	"github.com/swlab-dev/swfinder/pkg/driver/webdriver"
	"github.com/swlab-dev/swfinder/pkg/finder"
)

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "Locate an element on a live page",
	ArgsUsage: "XPATH",
	Description: `Starts a browser session, optionally navigates to a URL, and locates
the element matching the XPath locator. With --interactive, a failed
lookup searches every window and frame and prompts for a context.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "Navigate to this URL before searching",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "Lookup timeout in milliseconds",
		},
		&cli.IntFlag{
			Name:  "interval",
			Usage: "Retry interval in milliseconds",
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the browser headless",
		},
		&cli.BoolFlag{
			Name:  "text",
			Usage: "Print the element's text instead of its reference",
		},
	},
	Action: runFind,
}

func runFind(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one XPATH argument")
	}
	locator := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	client := webdriver.NewClient(cfg.Server)
	if err := client.NewSession(cfg.Browser); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer func() { _ = client.Close() }()

	if url := c.String("url"); url != "" {
		if err := client.Get(url); err != nil {
			return fmt.Errorf("navigate to %s: %w", url, err)
		}
	}

	f := finder.New(client, c.App.Reader, c.App.Writer)
	f.SetRetry(cfg.Timeout(), cfg.Interval())
	f.Interactive = cfg.Interactive

	if c.Bool("verbose") {
		fmt.Fprintf(c.App.Writer, "searching %s\n", locator)
	}

	el, err := f.FindXPath(locator)
	if err != nil {
		return err
	}

	if c.Bool("text") {
		text, err := el.Text()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, text)
		return nil
	}

	fmt.Fprintf(c.App.Writer, "found %s\n", el.(*webdriver.Element).ID())
	return nil
}

// loadConfig resolves settings from the config file, then lets command
// line flags override it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("server") {
		cfg.Server = c.String("server")
	}
	if c.IsSet("interactive") {
		cfg.Interactive = c.Bool("interactive")
	}
	if c.IsSet("timeout") {
		cfg.TimeoutMs = c.Int("timeout")
	}
	if c.IsSet("interval") {
		cfg.IntervalMs = c.Int("interval")
	}
	if c.IsSet("headless") {
		cfg.Browser.Headless = c.Bool("headless")
	}
	return cfg, nil
}
