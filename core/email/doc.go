// Package email defines the EmailSender used to deliver contact form
// submissions, along with DevSender, which writes messages to disk.
//
//	sender := email.NewDevSender("./dev_emails")
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "info@example.com",
//		ReplyTo:  "visitor@example.com",
//		Subject:  "New inquiry",
//		BodyHTML: "<p>Hello</p>",
//		Tag:      "contact",
//	})
//
// The Postmark implementation lives in integration/email/postmark.
package email
