package scriptfs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ToURL returns the file URL of path. Relative paths are resolved against
// the working directory and existing directories get a trailing slash.
func ToURL(path string) (*url.URL, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, newAbsolutePathError(path, err)
	}

	slashed := filepath.ToSlash(absPath)
	if !strings.HasPrefix(slashed, "/") {
		// Windows drive letter paths
		slashed = "/" + slashed
	}
	if DirectoryExist(absPath) && !strings.HasSuffix(slashed, "/") {
		slashed += "/"
	}

	return &url.URL{Scheme: "file", Path: slashed}, nil
}

// AsURL returns the file URL of path as a string
func AsURL(path string) (string, error) {
	u, err := ToURL(path)
	if err != nil {
		return "", err
	}

	return u.String(), nil
}

// ReadLines reads the resource at rawURL as text and returns its lines
// with trailing empty lines removed. Supported schemes are file, http
// and https.
func ReadLines(rawURL string, options ...ReadOption) ([]string, error) {
	return ReadLinesContext(context.Background(), rawURL, options...)
}

// ReadLinesContext is ReadLines with a context bounding HTTP requests
func ReadLinesContext(ctx context.Context, rawURL string, options ...ReadOption) ([]string, error) {
	opts := defaultReadOptions()
	for _, opt := range options {
		opt(opts)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newParseURLError(rawURL, err)
	}
	if u.Scheme == "" {
		return nil, newParseURLError(rawURL, fmt.Errorf("no scheme in %q", rawURL))
	}

	enc, err := lookupEncoding(opts.encoding)
	if err != nil {
		return nil, err
	}

	stream, err := openURL(ctx, u, rawURL, opts)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	opts.logger.Debug("reading lines",
		"url", rawURL,
		"scheme", u.Scheme)

	lines, err := scanLines(transform.NewReader(stream, enc.NewDecoder()))
	if err != nil {
		return nil, newReadURLError(rawURL, err)
	}

	opts.logger.Debug("read lines",
		"url", rawURL,
		"count", len(lines))

	return lines, nil
}

func openURL(ctx context.Context, u *url.URL, rawURL string, opts *readOptions) (io.ReadCloser, error) {
	switch strings.ToLower(u.Scheme) {
	case "file":
		file, err := os.Open(fileURLPath(u))
		if err != nil {
			return nil, newOpenURLError(rawURL, 0, err)
		}
		return file, nil
	case "http", "https":
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, newParseURLError(rawURL, err)
		}

		response, err := opts.httpClient().Do(request)
		if err != nil {
			return nil, newOpenURLError(rawURL, 0, err)
		}

		if response.StatusCode < 200 || response.StatusCode > 299 {
			response.Body.Close()
			return nil, newOpenURLError(rawURL, response.StatusCode,
				fmt.Errorf("unexpected status %s", response.Status))
		}

		return response.Body, nil
	default:
		return nil, newUnsupportedSchemeError(rawURL)
	}
}

// fileURLPath converts a file URL to a local path
func fileURLPath(u *url.URL) string {
	if u.Opaque != "" {
		// file:relative/path
		return filepath.FromSlash(u.Opaque)
	}

	path := u.Path
	if runtime.GOOS == "windows" && len(path) > 2 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8BOM, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, newUnknownEncodingError(name, err)
	}

	return enc, nil
}
