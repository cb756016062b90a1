package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/swlab-dev/swfinder/pkg/xpath"
)

var xpathCommand = &cli.Command{
	Name:  "xpath",
	Usage: "Compile a query into an XPath locator",
	Description: `Builds an XPath locator from attribute query expressions. Each flag
value is a boolean expression over attribute values, e.g.:

  swfinder xpath --tag input --id "user | email"
  swfinder xpath --class-contains "btn & !disabled" --axis descendant`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "axis",
			Usage: "XPath axis (child, descendant, parent, following, ...)",
		},
		&cli.StringFlag{
			Name:  "tag",
			Usage: "Element tag name",
		},
		&cli.StringFlag{
			Name:  "id",
			Usage: "Query expression for the id attribute",
		},
		&cli.StringFlag{
			Name:  "id-contains",
			Usage: "Query expression for substrings of the id attribute",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Query expression for the name attribute",
		},
		&cli.StringFlag{
			Name:  "class",
			Usage: "Query expression for the class attribute",
		},
		&cli.StringFlag{
			Name:  "class-contains",
			Usage: "Query expression for substrings of the class attribute",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Query expression for the element text",
		},
		&cli.StringFlag{
			Name:  "text-contains",
			Usage: "Query expression for substrings of the element text",
		},
		&cli.StringFlag{
			Name:  "num",
			Usage: "Query expression for the element position",
		},
		&cli.StringSliceFlag{
			Name:  "attr",
			Usage: "Extra attribute query as key=expression (repeatable)",
		},
	},
	Action: runXPath,
}

func runXPath(c *cli.Context) error {
	query, err := queryFromFlags(c)
	if err != nil {
		return err
	}

	locator, err := xpath.Build(query)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, locator)
	return nil
}

func queryFromFlags(c *cli.Context) (xpath.Query, error) {
	query := xpath.Query{
		Axis:              c.String("axis"),
		Tag:               c.String("tag"),
		ID:                c.String("id"),
		IDContains:        c.String("id-contains"),
		Name:              c.String("name"),
		ClassName:         c.String("class"),
		ClassNameContains: c.String("class-contains"),
		Text:              c.String("text"),
		TextContains:      c.String("text-contains"),
		Num:               c.String("num"),
	}

	for _, attr := range c.StringSlice("attr") {
		key, value, ok := strings.Cut(attr, "=")
		if !ok {
			return query, fmt.Errorf("invalid --attr %q, expected key=expression", attr)
		}
		if query.Attrs == nil {
			query.Attrs = map[string]string{}
		}
		query.Attrs[key] = value
	}

	return query, nil
}
