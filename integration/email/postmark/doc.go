// Package postmark delivers contact form messages through the Postmark
// transactional e-mail API. It implements email.EmailSender.
//
//	sender, err := postmark.New(postmark.Config{
//		PostmarkServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
//		PostmarkAccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),
//		SenderEmail:          "site@example.com",
//		SupportEmail:         "info@example.com",
//	})
//
// Opens and HTML link clicks are tracked.
package postmark
