// Package s3 serves dictionaries from Amazon S3 or an S3-compatible service
// such as MinIO. Source implements i18n.Source:
//
//	src, err := s3.New(ctx, s3.Config{
//		Bucket: "site-assets",
//		Region: "eu-west-1",
//		Prefix: "languages/",
//	})
//	store, err := i18n.NewStore(i18n.WithSource(src))
//
// Errors are classified into the package's sentinel errors (ErrNotFound,
// ErrAccessDenied and so on) so callers can use errors.Is.
package s3
