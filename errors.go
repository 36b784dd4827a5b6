package scriptfs

import (
	"strings"

	"github.com/boostgo/errorx"
)

var (
	ErrAmbiguousScript = errorx.New("scriptfs.script.ambiguous")

	ErrWalkVisit    = errorx.New("scriptfs.directory.walk.visit")
	ErrInvalidRegex = errorx.New("scriptfs.search.invalid_regex")
	ErrInvalidGlob  = errorx.New("scriptfs.search.invalid_glob")

	ErrOpenFile      = errorx.New("scriptfs.file.open")
	ErrReadFileLines = errorx.New("scriptfs.file.read.lines")
	ErrAbsolutePath  = errorx.New("scriptfs.file.absolute_path")

	ErrParseURL          = errorx.New("scriptfs.url.parse")
	ErrUnsupportedScheme = errorx.New("scriptfs.url.unsupported_scheme")
	ErrOpenURL           = errorx.New("scriptfs.url.open")
	ErrReadURL           = errorx.New("scriptfs.url.read")
	ErrUnknownEncoding   = errorx.New("scriptfs.url.unknown_encoding")
)

// AmbiguousScriptError is returned when a lookup by name matches more
// than one file under Root. Paths holds the absolute path of every match.
type AmbiguousScriptError struct {
	Root  string
	Paths []string
}

func (e *AmbiguousScriptError) Error() string {
	return "found several script files under " + e.Root + ":\n" + strings.Join(e.Paths, ";\n")
}

func (e *AmbiguousScriptError) Unwrap() error {
	return ErrAmbiguousScript
}

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type walkErrorContext struct {
	Root  string `json:"root"`
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type patternErrorContext struct {
	Pattern string `json:"pattern"`
	Error   error  `json:"error"`
}

type urlErrorContext struct {
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
	Error  error  `json:"error"`
}

func newWalkVisitError(root, path string, err error) error {
	return ErrWalkVisit.
		SetError(err).
		SetData(walkErrorContext{
			Root:  root,
			Path:  path,
			Error: err,
		})
}

func newInvalidRegexError(pattern string, err error) error {
	return ErrInvalidRegex.
		SetError(err).
		SetData(patternErrorContext{
			Pattern: pattern,
			Error:   err,
		})
}

func newInvalidGlobError(pattern string, err error) error {
	return ErrInvalidGlob.
		SetError(err).
		SetData(patternErrorContext{
			Pattern: pattern,
			Error:   err,
		})
}

func newOpenFileError(path string, err error) error {
	return ErrOpenFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReadFileLinesError(path string, err error) error {
	return ErrReadFileLines.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newAbsolutePathError(path string, err error) error {
	return ErrAbsolutePath.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newParseURLError(rawURL string, err error) error {
	return ErrParseURL.
		SetError(err).
		SetData(urlErrorContext{
			URL:   rawURL,
			Error: err,
		})
}

func newUnsupportedSchemeError(rawURL string) error {
	return ErrUnsupportedScheme.
		SetData(urlErrorContext{
			URL: rawURL,
		})
}

func newOpenURLError(rawURL string, status int, err error) error {
	return ErrOpenURL.
		SetError(err).
		SetData(urlErrorContext{
			URL:    rawURL,
			Status: status,
			Error:  err,
		})
}

func newReadURLError(rawURL string, err error) error {
	return ErrReadURL.
		SetError(err).
		SetData(urlErrorContext{
			URL:   rawURL,
			Error: err,
		})
}

func newUnknownEncodingError(name string, err error) error {
	return ErrUnknownEncoding.
		SetError(err).
		SetData(struct {
			Encoding string `json:"encoding"`
			Error    error  `json:"error"`
		}{
			Encoding: name,
			Error:    err,
		})
}
