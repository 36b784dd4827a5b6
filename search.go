package scriptfs

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FileNamesMatching returns the base names of files under root whose
// whole name matches the regular expression pattern.
func FileNamesMatching(pattern, root string, options ...SearchOption) ([]string, error) {
	results, err := FindFilesByRegex(root, pattern, options...)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, filepath.Base(result.Path))
	}

	return names, nil
}

// FindFilesByRegex finds files by regex pattern. The pattern must match
// the whole file name unless WithPartialMatch is given.
func FindFilesByRegex(root string, pattern string, options ...SearchOption) ([]SearchResult, error) {
	opts := defaultSearchOptions()
	for _, opt := range options {
		opt(opts)
	}

	expr := pattern
	if !opts.partialMatch {
		expr = "^(?:" + expr + ")$"
	}
	if !opts.caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, newInvalidRegexError(pattern, err)
	}

	return collect(root, opts, "regex", func(name string) bool {
		return re.MatchString(name)
	}), nil
}

// FindFiles finds files by name pattern (supports wildcards)
func FindFiles(root string, pattern string, options ...SearchOption) ([]SearchResult, error) {
	opts := defaultSearchOptions()
	for _, opt := range options {
		opt(opts)
	}

	if !opts.caseSensitive {
		pattern = strings.ToLower(pattern)
	}

	// Surface malformed patterns before walking
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, newInvalidGlobError(pattern, err)
	}

	return collect(root, opts, "glob", func(name string) bool {
		if !opts.caseSensitive {
			name = strings.ToLower(name)
		}
		matched, _ := filepath.Match(pattern, name)
		return matched
	}), nil
}

func collect(root string, opts *searchOptions, matchedBy string, match func(name string) bool) []SearchResult {
	var results []SearchResult
	for node := range AllFiles(root, opts.walk...) {
		if opts.limitResults > 0 && len(results) >= opts.limitResults {
			break
		}

		if !match(node.Name) {
			continue
		}

		results = append(results, SearchResult{
			Path:      node.Path,
			Info:      node.Info,
			MatchedBy: matchedBy,
		})
	}

	return results
}
