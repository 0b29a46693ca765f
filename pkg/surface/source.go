package surface

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SourceKind identifies where a surface document lives.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source locates a descriptor or OpenAPI document.
type Source struct {
	Kind     SourceKind
	Location string
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}

// SourceFromFile points at a path on disk.
func SourceFromFile(path string) Source {
	return Source{Kind: SourceKindFile, Location: filepath.Clean(path)}
}

// SourceFromFS points at a path inside the fetcher's fs.FS.
func SourceFromFS(name string) Source {
	return Source{Kind: SourceKindFS, Location: name}
}

// SourceFromURL validates raw as an absolute http(s) URL.
func SourceFromURL(raw string) (Source, error) {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return Source{}, fmt.Errorf("surface: invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Source{}, fmt.Errorf("surface: unsupported URL scheme %q", parsed.Scheme)
	}
	return Source{Kind: SourceKindURL, Location: raw}, nil
}

// ParseSource treats http:// and https:// values as URLs and anything else
// as a file path.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Source{}, ErrSourceRequired
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return SourceFromURL(trimmed)
	}
	return SourceFromFile(trimmed), nil
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFileSystem resolves SourceKindFS locations against files.
func WithFileSystem(files fs.FS) FetcherOption {
	return func(f *Fetcher) {
		f.fs = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.http = client
	}
}

// WithRequestTimeout caps each URL fetch.
func WithRequestTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = timeout
	}
}

// Fetcher reads surface documents from files, an fs.FS, or HTTP. URL sources
// are disabled unless an HTTP client is configured.
type Fetcher struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// NewFetcher applies opts.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fetch returns the raw bytes behind src.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(src.Location) == "" {
		return nil, ErrSourceRequired
	}

	switch src.Kind {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("surface: read %s: %w", src.Location, err)
		}
		return data, nil
	case SourceKindFS:
		if f.fs == nil {
			return nil, errors.New("surface: filesystem is not configured")
		}
		data, err := fs.ReadFile(f.fs, src.Location)
		if err != nil {
			return nil, fmt.Errorf("surface: read %s: %w", src.Location, err)
		}
		return data, nil
	case SourceKindURL:
		if f.http == nil {
			return nil, ErrHTTPDisabled
		}
		return f.fetchURL(ctx, src.Location)
	default:
		return nil, fmt.Errorf("surface: unsupported source kind %q", src.Kind)
	}
}

// Load fetches src and parses it as a descriptor.
func (f *Fetcher) Load(ctx context.Context, src Source) (Descriptor, error) {
	data, err := f.Fetch(ctx, src)
	if err != nil {
		return Descriptor{}, err
	}
	return Parse(data, src.Location)
}

// LoadOpenAPI fetches src and builds a descriptor from schemaName.
func (f *Fetcher) LoadOpenAPI(ctx context.Context, src Source, schemaName string) (Descriptor, error) {
	data, err := f.Fetch(ctx, src)
	if err != nil {
		return Descriptor{}, err
	}
	return FromOpenAPI(ctx, data, schemaName)
}

func (f *Fetcher) fetchURL(ctx context.Context, location string) ([]byte, error) {
	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("surface: fetch %s: %w", location, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("surface: fetch %s: unexpected status %s", location, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
