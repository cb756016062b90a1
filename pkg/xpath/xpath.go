// Package xpath compiles attribute-matching queries into XPath locator
// strings.
//
// Attribute values are small boolean expressions over literal strings:
// "&" and "|" for and/or, "!" for negation, parentheses for grouping, and
// quotes for literals that contain operator characters. Unquoted text may
// contain spaces, so Text: "Sign In" matches the whole phrase.
package xpath

import (
	"fmt"
	"sort"
	"strings"
)

// axes recognized by Build.
var axes = map[string]bool{
	"ancestor":           true,
	"ancestor-or-self":   true,
	"child":              true,
	"descendant":         true,
	"descendant-or-self": true,
	"following":          true,
	"following-sibling":  true,
	"parent":             true,
	"preceding":          true,
	"preceding-sibling":  true,
	"self":               true,
}

// Query describes an element lookup. Zero-value fields are omitted from
// the compiled locator.
type Query struct {
	Axis string // XPath axis; empty means a document-wide descendant search
	Tag  string // element tag filter; empty means "*"

	ID                string
	IDContains        string
	Name              string
	ClassName         string // compiled against @class
	ClassNameContains string
	Text              string // compiled against text()
	TextContains      string
	Num               string // compiled against position()

	// Attrs holds additional attribute expressions keyed by attribute
	// name. A key ending in "_contains" selects substring matching.
	Attrs map[string]string
}

// Build compiles q into an XPath locator string, e.g.
// Query{Tag: "input", ID: "username"} becomes //input[@id='username'].
func Build(q Query) (string, error) {
	axis := "//"
	if q.Axis != "" {
		if !axes[q.Axis] {
			return "", fmt.Errorf("unknown axis %q", q.Axis)
		}
		axis = q.Axis + "::"
	}

	tag := q.Tag
	if tag == "" {
		tag = "*"
	}

	preds, err := compilePredicates(q)
	if err != nil {
		return "", err
	}
	if len(preds) == 0 {
		return axis + tag, nil
	}
	return axis + tag + "[" + strings.Join(preds, " and ") + "]", nil
}

func compilePredicates(q Query) ([]string, error) {
	type pair struct {
		key  string
		expr string
	}
	pairs := []pair{
		{"id", q.ID},
		{"id_contains", q.IDContains},
		{"name", q.Name},
		{"class_name", q.ClassName},
		{"class_name_contains", q.ClassNameContains},
		{"text", q.Text},
		{"text_contains", q.TextContains},
		{"num", q.Num},
	}

	// Extra attributes go last, sorted, so the output is deterministic.
	extra := make([]string, 0, len(q.Attrs))
	for k := range q.Attrs {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		pairs = append(pairs, pair{k, q.Attrs[k]})
	}

	var preds []string
	for _, p := range pairs {
		if p.expr == "" {
			continue
		}
		e, err := Parse(p.expr)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", p.key, err)
		}
		preds = append(preds, Compile(p.key, e))
	}
	return preds, nil
}
