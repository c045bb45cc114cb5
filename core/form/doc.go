// Package form validates the site's contact forms and drives their submission.
//
// A Validator checks each field by Kind and required-ness: required fields
// must be non-blank, email fields must look like local@domain.tld and
// telephone fields may hold digits, spaces, dashes and parentheses with an
// optional leading plus, and must contain at least nine digits. Messages
// come from a Translator (usually *i18n.Store) or, without one, from a
// fixed English table.
//
// A Controller binds one Form to the page. Its handlers (Blur, Focus,
// Input, Submit, Reset) return Effect values describing what the page
// should change, and forward them to an optional Sink:
//
//	ctrl, err := form.NewController(contact,
//		form.WithTranslator(store),
//		form.WithSubmitter(form.NewSimulatedSubmitter()),
//		form.WithSink(form.SinkFunc(page.Apply)),
//	)
//	effects, err := ctrl.Submit(ctx)
//
// Valid submissions are handed to a Submitter. SimulatedSubmitter waits a
// fixed delay; EmailSubmitter mails the submission to an inbox.
package form
