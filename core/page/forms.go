package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/christopherstationary/website/core/form"
)

const (
	errorClass        = "error"
	errorMessageClass = "error-message"
)

// skippedInputTypes carry no user value.
var skippedInputTypes = map[string]bool{
	"submit": true,
	"button": true,
	"reset":  true,
	"image":  true,
}

// Form reads the fields of the form element with the given id: its input,
// textarea and select descendants. A field is named by its name attribute,
// or its id when unnamed.
func (d *Document) Form(id string) (*form.Form, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	formNode := d.formNode(id)
	if formNode == nil {
		return nil, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}

	f := &form.Form{ID: id}
	walk(formNode, func(n *html.Node) {
		if !isField(n) {
			return
		}
		inputType, _ := attr(n, "type")
		_, required := attr(n, "required")
		f.Fields = append(f.Fields, form.Field{
			Name:     fieldName(n),
			Kind:     form.ParseKind(inputType),
			Required: required,
			Value:    fieldValue(n),
		})
	})
	return f, nil
}

// FormSink returns a sink applying form effects to the form with the
// given id: error markers and messages plus the submit button state and label.
// Notifications are collected and available via Notices.
func (d *Document) FormSink(id string) form.Sink {
	return form.SinkFunc(func(e form.Effect) {
		d.apply(id, e)
	})
}

// Notice is a notification shown to the visitor.
type Notice struct {
	Level   form.Level
	Message string
}

// Notices returns the notifications received through form sinks.
func (d *Document) Notices() []Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Notice(nil), d.notices...)
}

func (d *Document) apply(id string, e form.Effect) {
	d.mu.Lock()
	defer d.mu.Unlock()

	formNode := d.formNode(id)
	if formNode == nil {
		return
	}

	switch e := e.(type) {
	case form.ShowError:
		if field := fieldNode(formNode, e.Field); field != nil {
			clearError(field)
			setClass(field, errorClass, true)
			msg := &html.Node{
				Type:     html.ElementNode,
				Data:     "div",
				DataAtom: atom.Div,
				Attr:     []html.Attribute{{Key: "class", Val: errorMessageClass}},
			}
			msg.AppendChild(&html.Node{Type: html.TextNode, Data: e.Message})
			if field.Parent != nil {
				field.Parent.InsertBefore(msg, field.NextSibling)
			}
		}
	case form.ClearError:
		if field := fieldNode(formNode, e.Field); field != nil {
			clearError(field)
		}
	case form.SetSubmitEnabled:
		if btn := submitButton(formNode); btn != nil {
			if e.Enabled {
				removeAttr(btn, "disabled")
			} else {
				setAttr(btn, "disabled", "")
			}
		}
	case form.SetSubmitLabel:
		if btn := submitButton(formNode); btn != nil {
			if btn.DataAtom == atom.Input {
				setAttr(btn, "value", e.Label)
			} else {
				setText(btn, e.Label)
			}
		}
	case form.ResetForm:
		// Values live in the controller; the markup already holds the defaults.
	case form.Notify:
		d.notices = append(d.notices, Notice{Level: e.Level, Message: e.Message})
	}
}

func (d *Document) formNode(id string) *html.Node {
	return find(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return n.Type == html.ElementNode && n.DataAtom == atom.Form && ok && v == id
	})
}

func isField(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Textarea, atom.Select:
		return true
	case atom.Input:
		t, _ := attr(n, "type")
		return !skippedInputTypes[t]
	default:
		return false
	}
}

func fieldName(n *html.Node) string {
	if name, ok := attr(n, "name"); ok && name != "" {
		return name
	}
	id, _ := attr(n, "id")
	return id
}

func fieldNode(formNode *html.Node, name string) *html.Node {
	return find(formNode, func(n *html.Node) bool {
		return isField(n) && fieldName(n) == name
	})
}

func fieldValue(n *html.Node) string {
	switch n.DataAtom {
	case atom.Textarea:
		return textContent(n)
	case atom.Select:
		var first, selected *html.Node
		walk(n, func(c *html.Node) {
			if c.Type != html.ElementNode || c.DataAtom != atom.Option {
				return
			}
			if first == nil {
				first = c
			}
			if _, ok := attr(c, "selected"); ok && selected == nil {
				selected = c
			}
		})
		if selected == nil {
			selected = first
		}
		if selected == nil {
			return ""
		}
		if v, ok := attr(selected, "value"); ok {
			return v
		}
		return textContent(selected)
	default:
		v, _ := attr(n, "value")
		return v
	}
}

// clearError removes the error class from field and the message element
// that directly follows it. Messages belonging to sibling fields stay.
func clearError(field *html.Node) {
	setClass(field, errorClass, false)
	for c := field.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		if c.Type == html.ElementNode && hasClass(c, errorMessageClass) {
			field.Parent.RemoveChild(c)
		}
		return
	}
}

func submitButton(formNode *html.Node) *html.Node {
	return find(formNode, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		t, _ := attr(n, "type")
		return (n.DataAtom == atom.Button && t == "submit") || (n.DataAtom == atom.Input && t == "submit")
	})
}
