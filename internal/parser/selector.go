package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Resolve tries each candidate selector in order against root and
// returns the first element that matches. The boolean is false when no
// candidate matches at all. Page markup drifts across categories and
// layout revisions; an ordered fallback list absorbs that drift without
// hard-coding one selector per revision.
func Resolve(root *goquery.Selection, candidates ...string) (*goquery.Selection, bool) {
	for _, sel := range candidates {
		if m := root.Find(sel).First(); m.Length() > 0 {
			return m, true
		}
	}
	return nil, false
}

// ResolveText returns the first non-empty trimmed text among the
// candidate selectors, in candidate order then document order.
func ResolveText(root *goquery.Selection, candidates ...string) (string, bool) {
	for _, sel := range candidates {
		var text string
		root.Find(sel).EachWithBreak(func(_ int, m *goquery.Selection) bool {
			if t := strings.TrimSpace(m.Text()); t != "" {
				text = t
				return false
			}
			return true
		})
		if text != "" {
			return text, true
		}
	}
	return "", false
}

// ResolveAttr returns the first non-empty value of attr among the
// candidate selectors.
func ResolveAttr(root *goquery.Selection, attr string, candidates ...string) (string, bool) {
	for _, sel := range candidates {
		var val string
		root.Find(sel).EachWithBreak(func(_ int, m *goquery.Selection) bool {
			if v, ok := m.Attr(attr); ok && strings.TrimSpace(v) != "" {
				val = strings.TrimSpace(v)
				return false
			}
			return true
		})
		if val != "" {
			return val, true
		}
	}
	return "", false
}

// ResolveAll returns every match of a single selector in document
// order. The result is a plain goquery selection: finite, restartable,
// nothing memoized between calls.
func ResolveAll(root *goquery.Selection, selector string) *goquery.Selection {
	return root.Find(selector)
}

// leadingText returns the first non-empty text node in the subtree of
// the first matched element, in document order. Script and style
// contents are ignored.
func leadingText(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var walk func(n *html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.TextNode {
			return strings.TrimSpace(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return ""
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if t := walk(c); t != "" {
				return t
			}
		}
		return ""
	}
	return walk(s.Nodes[0])
}
