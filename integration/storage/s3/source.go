package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/christopherstationary/website/core/i18n"
)

// maxObjectSize caps a downloaded dictionary.
const maxObjectSize = 4 << 20

// Client is the subset of the S3 API used by Source.
type Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Config locates the dictionaries. Objects are named <Prefix><lang><Extension>.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	Prefix         string `env:"S3_PREFIX" envDefault:"languages/"`
	Extension      string `env:"S3_EXTENSION" envDefault:".json"`
}

// Option configures a Source.
type Option func(*options)

type options struct {
	client        Client
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithClient sets a pre-configured client. Mostly useful in tests.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets the HTTP client used for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds an AWS config load option.
func WithConfigOption(opt func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, opt)
	}
}

// WithClientOption adds an S3 client option.
func WithClientOption(opt func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, opt)
	}
}

// Source implements i18n.Source over an S3 bucket or an S3-compatible service.
type Source struct {
	client    Client
	bucket    string
	prefix    string
	extension string
}

var _ i18n.Source = (*Source)(nil)

// New creates a Source. Without static credentials the default AWS
// credential chain is used.
func New(ctx context.Context, cfg Config, opts ...Option) (*Source, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		if cfg.Region == "" {
			return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
		}

		awsOptions := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	ext := cfg.Extension
	if ext == "" {
		ext = ".json"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &Source{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    cfg.Prefix,
		extension: ext,
	}, nil
}

// Key returns the object key holding lang's dictionary.
func (s *Source) Key(lang string) string {
	return s.prefix + lang + s.extension
}

// Fetch downloads and decodes lang's dictionary.
func (s *Source) Fetch(ctx context.Context, lang string) (map[string]any, error) {
	key := s.Key(lang)
	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxObjectSize+1))
	if err != nil {
		return nil, classifyS3Error(err, "read")
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, key)
	}

	return i18n.Decode(path.Base(key), data)
}

// Put uploads a dictionary document for lang. The document must decode
// with the configured extension.
func (s *Source) Put(ctx context.Context, lang string, data []byte) error {
	key := s.Key(lang)
	if _, err := i18n.Decode(path.Base(key), data); err != nil {
		return fmt.Errorf("refusing to upload %s: %w", key, err)
	}

	_, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(s.extension)),
	})
	return classifyS3Error(err, "put")
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".toml":
		return "application/toml"
	default:
		return "application/octet-stream"
	}
}
