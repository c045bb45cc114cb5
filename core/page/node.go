package page

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr reports whether the attribute changed.
func setAttr(n *html.Node, key, val string) bool {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			if a.Val == val {
				return false
			}
			n.Attr[i].Val = val
			return true
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return true
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

func classes(n *html.Node) []string {
	v, _ := attr(n, "class")
	return strings.Fields(v)
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(classes(n), class)
}

// setClass adds or removes class and reports whether anything changed.
func setClass(n *html.Node, class string, on bool) bool {
	list := classes(n)
	present := slices.Contains(list, class)
	if present == on {
		return false
	}
	if on {
		list = append(list, class)
	} else {
		list = slices.DeleteFunc(list, func(c string) bool { return c == class })
	}
	if len(list) == 0 {
		removeAttr(n, "class")
		return true
	}
	setAttr(n, "class", strings.Join(list, " "))
	return true
}

// setText replaces the children of n with a single text node and reports
// whether the content changed.
func setText(n *html.Node, text string) bool {
	if c := n.FirstChild; c != nil && c.NextSibling == nil && c.Type == html.TextNode && c.Data == text {
		return false
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return true
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}
