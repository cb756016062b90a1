package xpath

import "strings"

// Compile renders a parsed expression as an XPath predicate fragment for
// the given attribute key.
//
// The key's base name picks the comparison target: "class_name" maps to
// @class, "text" to text(), "num" to position(), anything else to
// @<name>. A "_contains" suffix selects substring matching via contains()
// instead of exact equality.
func Compile(key string, e Expr) string {
	return render(e, valueFormat(key), true)
}

func valueFormat(key string) func(string) string {
	base, contains := strings.CutSuffix(key, "_contains")

	var target string
	switch base {
	case "class_name":
		target = "@class"
	case "text":
		target = "text()"
	case "num":
		target = "position()"
	default:
		target = "@" + base
	}

	if contains {
		return func(v string) string { return "contains(" + target + ", '" + v + "')" }
	}
	return func(v string) string { return target + "='" + v + "'" }
}

// render walks the tree bottom-up. Every and/or node is parenthesized
// except the single top-level one; a not operand always gets its own
// parentheses so precedence survives in the compiled predicate.
func render(e Expr, format func(string) string, top bool) string {
	switch n := e.(type) {
	case *Literal:
		return format(n.Value)
	case *Not:
		return "not(" + render(n.X, format, true) + ")"
	case *And:
		s := render(n.L, format, false) + " and " + render(n.R, format, false)
		if !top {
			s = "(" + s + ")"
		}
		return s
	case *Or:
		s := render(n.L, format, false) + " or " + render(n.R, format, false)
		if !top {
			s = "(" + s + ")"
		}
		return s
	}
	return ""
}
