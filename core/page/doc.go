// Package page adapts HTML markup to the localization store and the form
// controller.
//
// A Document implements i18n.Target, so it can be bound to a store:
//
//	doc, err := page.Parse(f)
//	store.Bind(doc)
//	doc.Render(os.Stdout)
//
// Form reads a form's fields into a form.Form, and FormSink applies the
// controller's effects back onto the markup.
package page
