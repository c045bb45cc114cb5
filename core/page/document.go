package page

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/christopherstationary/website/core/i18n"
)

const (
	keyAttr         = "data-lang"
	langButtonClass = "lang-btn"
	activeClass     = "active"
)

// Document is a parsed page whose marked elements can be localized.
// Elements carrying data-lang="<key>" receive the resolved text: inputs
// and textareas as their placeholder, everything else as text content.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	mutations int
	notices   []Notice
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Localize implements i18n.Target. Elements whose key falls back keep
// their current text. Language buttons are marked active when their
// data-lang equals lang, and the root element's lang attribute is set.
func (d *Document) Localize(resolve i18n.ResolveFunc, lang string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	walk(d.root, func(node *html.Node) {
		if node.Type != html.ElementNode {
			return
		}

		if node.DataAtom == atom.Html {
			if setAttr(node, "lang", lang) {
				n++
			}
			return
		}

		key, ok := attr(node, keyAttr)
		if !ok {
			return
		}

		if hasClass(node, langButtonClass) {
			if setClass(node, activeClass, key == lang) {
				n++
			}
			return
		}

		res := resolve(key)
		if !res.Translated() {
			return
		}

		var changed bool
		switch node.DataAtom {
		case atom.Input, atom.Textarea:
			changed = setAttr(node, "placeholder", res.String())
		default:
			changed = setText(node, res.String())
		}
		if changed {
			n++
		}
	})

	d.mutations += n
	return n
}

// Mutations returns the number of element writes performed so far.
func (d *Document) Mutations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mutations
}

// Lang returns the root element's lang attribute.
func (d *Document) Lang() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var lang string
	walk(d.root, func(node *html.Node) {
		if node.DataAtom == atom.Html && node.Type == html.ElementNode {
			lang, _ = attr(node, "lang")
		}
	})
	return lang
}

// Keys lists the distinct data-lang keys of text elements, in document order.
func (d *Document) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var keys []string
	walk(d.root, func(node *html.Node) {
		if node.Type != html.ElementNode || hasClass(node, langButtonClass) {
			return
		}
		if key, ok := attr(node, keyAttr); ok && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	})
	return keys
}

// Render writes the current markup.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}
