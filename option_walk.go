package scriptfs

import (
	"io"
	"log/slog"
)

// WalkOption represents options for tree walking
type WalkOption func(*walkOptions)

type walkOptions struct {
	maxDepth       int
	followSymlinks bool
	ignoreHidden   bool
	logger         *slog.Logger
}

// defaultWalkOptions returns default walk options
func defaultWalkOptions() *walkOptions {
	return &walkOptions{
		maxDepth:       -1, // No limit
		followSymlinks: false,
		ignoreHidden:   false,
		logger:         discardLogger(),
	}
}

// WithWalkMaxDepth limits how deep the walker descends. Depth 0 lists only
// the root directory.
func WithWalkMaxDepth(depth int) WalkOption {
	return func(opts *walkOptions) {
		opts.maxDepth = depth
	}
}

// WithWalkFollowSymlinks treats symbolic links as the entry they point to
func WithWalkFollowSymlinks() WalkOption {
	return func(opts *walkOptions) {
		opts.followSymlinks = true
	}
}

// WithWalkIgnoreHidden skips dot files and does not descend into dot directories
func WithWalkIgnoreHidden() WalkOption {
	return func(opts *walkOptions) {
		opts.ignoreHidden = true
	}
}

// WithWalkLogger sets the logger used to report skipped directories
func WithWalkLogger(logger *slog.Logger) WalkOption {
	return func(opts *walkOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
