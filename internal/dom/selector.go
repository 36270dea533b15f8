package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// The pipeline only ever queries a handful of fixed selectors, so this
// implements just the subset it uses: tag names, .class, [attr="value"],
// compounds of those, and the descendant combinator.

// simpleSelector matches a single element.
type simpleSelector struct {
	tag     string
	classes []string
	attrs   [][2]string
}

// parseSelector splits a selector into whitespace-separated simple selectors.
func parseSelector(s string) ([]simpleSelector, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty selector")
	}
	sels := make([]simpleSelector, 0, len(parts))
	for _, part := range parts {
		sel, err := parseSimple(part)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", s, err)
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func parseSimple(s string) (simpleSelector, error) {
	var sel simpleSelector
	i := 0
	// Optional leading tag name.
	for i < len(s) && s[i] != '.' && s[i] != '[' {
		i++
	}
	sel.tag = strings.ToLower(s[:i])

	for i < len(s) {
		switch s[i] {
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return sel, fmt.Errorf("empty class name")
			}
			sel.classes = append(sel.classes, s[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return sel, fmt.Errorf("unterminated attribute selector")
			}
			body := s[i+1 : i+j]
			eq := strings.IndexByte(body, '=')
			if eq < 0 {
				sel.attrs = append(sel.attrs, [2]string{strings.TrimSpace(body), ""})
			} else {
				key := strings.TrimSpace(body[:eq])
				val := strings.TrimSpace(body[eq+1:])
				val = strings.Trim(val, `"'`)
				sel.attrs = append(sel.attrs, [2]string{key, val})
			}
			i += j + 1
		default:
			return sel, fmt.Errorf("unexpected character %q", s[i])
		}
	}
	return sel, nil
}

// matches reports whether the element node satisfies the simple selector.
func (sel simpleSelector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if sel.tag != "" && sel.tag != n.Data {
		return false
	}
	for _, class := range sel.classes {
		if !HasClass(n, class) {
			return false
		}
	}
	for _, attr := range sel.attrs {
		if Attr(n, attr[0]) != attr[1] {
			return false
		}
	}
	return true
}

// FirstMatch returns the first element in document order matching the
// selector, or nil when nothing matches or the selector cannot be parsed.
func FirstMatch(root *html.Node, selector string) *html.Node {
	sels, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	return firstMatch(root, sels)
}

func firstMatch(root *html.Node, sels []simpleSelector) *html.Node {
	last := sels[len(sels)-1]
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if last.matches(n) && ancestorsMatch(n, sels[:len(sels)-1]) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// ancestorsMatch checks the descendant combinator: each remaining simple
// selector must match some strict ancestor, innermost-first.
func ancestorsMatch(n *html.Node, sels []simpleSelector) bool {
	if len(sels) == 0 {
		return true
	}
	want := sels[len(sels)-1]
	for p := n.Parent; p != nil; p = p.Parent {
		if want.matches(p) && ancestorsMatch(p, sels[:len(sels)-1]) {
			return true
		}
	}
	return false
}
