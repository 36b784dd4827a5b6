package scriptfs

// SearchOption represents options for search operations
type SearchOption func(*searchOptions)

type searchOptions struct {
	walk          []WalkOption
	caseSensitive bool
	partialMatch  bool
	limitResults  int
}

// defaultSearchOptions returns default search options
func defaultSearchOptions() *searchOptions {
	return &searchOptions{
		caseSensitive: true,
		partialMatch:  false,
		limitResults:  0, // No limit
	}
}

// WithMaxDepth sets maximum directory depth for search
func WithMaxDepth(depth int) SearchOption {
	return func(opts *searchOptions) {
		opts.walk = append(opts.walk, WithWalkMaxDepth(depth))
	}
}

// WithSearchFollowSymlinks enables following symbolic links
func WithSearchFollowSymlinks() SearchOption {
	return func(opts *searchOptions) {
		opts.walk = append(opts.walk, WithWalkFollowSymlinks())
	}
}

// WithIgnoreHidden ignores hidden files and directories
func WithIgnoreHidden() SearchOption {
	return func(opts *searchOptions) {
		opts.walk = append(opts.walk, WithWalkIgnoreHidden())
	}
}

// WithWalkOptions passes walk options through to the underlying tree walk
func WithWalkOptions(options ...WalkOption) SearchOption {
	return func(opts *searchOptions) {
		opts.walk = append(opts.walk, options...)
	}
}

// WithCaseSensitive sets case sensitivity for searches
func WithCaseSensitive(sensitive bool) SearchOption {
	return func(opts *searchOptions) {
		opts.caseSensitive = sensitive
	}
}

// WithPartialMatch lets a regex match any part of the name instead of
// the whole name
func WithPartialMatch() SearchOption {
	return func(opts *searchOptions) {
		opts.partialMatch = true
	}
}

// WithLimitResults limits the number of results returned. Zero or a
// negative limit means no limit.
func WithLimitResults(limit int) SearchOption {
	return func(opts *searchOptions) {
		opts.limitResults = limit
	}
}
