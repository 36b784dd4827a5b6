package scriptfs

import (
	"log/slog"
	"net/http"
	"time"
)

// ReadOption represents options for reading lines from a URL
type ReadOption func(*readOptions)

type readOptions struct {
	encoding string
	client   *http.Client
	timeout  time.Duration
	logger   *slog.Logger
}

// defaultReadOptions returns default read options
func defaultReadOptions() *readOptions {
	return &readOptions{
		encoding: "", // UTF-8, leading BOM stripped
		timeout:  30 * time.Second,
		logger:   discardLogger(),
	}
}

// WithEncoding decodes the content with the named charset (for example
// "windows-1252" or "utf-16le") instead of UTF-8
func WithEncoding(name string) ReadOption {
	return func(opts *readOptions) {
		opts.encoding = name
	}
}

// WithHTTPClient sets the client used for http and https URLs
func WithHTTPClient(client *http.Client) ReadOption {
	return func(opts *readOptions) {
		opts.client = client
	}
}

// WithHTTPTimeout sets the timeout of the default HTTP client.
// Ignored when WithHTTPClient is given.
func WithHTTPTimeout(timeout time.Duration) ReadOption {
	return func(opts *readOptions) {
		opts.timeout = timeout
	}
}

// WithReadLogger sets the logger used to report opened URLs
func WithReadLogger(logger *slog.Logger) ReadOption {
	return func(opts *readOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

func (opts *readOptions) httpClient() *http.Client {
	if opts.client != nil {
		return opts.client
	}

	return &http.Client{Timeout: opts.timeout}
}
