package i18n

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"time"
)

// Source fetches the raw nested dictionary document for one language.
type Source interface {
	Fetch(ctx context.Context, lang string) (map[string]any, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, lang string) (map[string]any, error)

func (f SourceFunc) Fetch(ctx context.Context, lang string) (map[string]any, error) {
	return f(ctx, lang)
}

// FSSource reads dictionaries from a file system. Pattern is a fmt template
// receiving the language code, e.g. "languages/%s.json".
type FSSource struct {
	fsys    fs.FS
	pattern string
}

// NewFSSource returns a Source reading fmt.Sprintf(pattern, lang) from fsys.
func NewFSSource(fsys fs.FS, pattern string) *FSSource {
	return &FSSource{fsys: fsys, pattern: pattern}
}

func (s *FSSource) Fetch(ctx context.Context, lang string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := fmt.Sprintf(s.pattern, lang)
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", name, err)
	}
	return Decode(name, data)
}

// maxDictionarySize caps a fetched dictionary body.
const maxDictionarySize = 4 << 20

// HTTPSource fetches dictionaries from a base URL, one file per language.
type HTTPSource struct {
	baseURL   string
	extension string
	client    *http.Client
}

// HTTPSourceOption configures an HTTPSource.
type HTTPSourceOption func(*HTTPSource)

// WithHTTPClient sets the HTTP client used for fetching.
func WithHTTPClient(client *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) {
		if client != nil {
			s.client = client
		}
	}
}

// WithExtension sets the file extension appended to the language code. Default ".json".
func WithExtension(ext string) HTTPSourceOption {
	return func(s *HTTPSource) {
		if ext != "" {
			s.extension = ext
		}
	}
}

// NewHTTPSource returns a Source fetching <baseURL>/<lang><ext>.
func NewHTTPSource(baseURL string, opts ...HTTPSourceOption) *HTTPSource {
	s := &HTTPSource{
		baseURL:   baseURL,
		extension: ".json",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSource) Fetch(ctx context.Context, lang string) (map[string]any, error) {
	name := lang + s.extension
	u, err := url.JoinPath(s.baseURL, name)
	if err != nil {
		return nil, fmt.Errorf("build dictionary URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch dictionary %s: unexpected status %d", u, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDictionarySize))
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", u, err)
	}
	return Decode(name, data)
}
