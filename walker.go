package scriptfs

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrStopWalk can be returned from a WalkFiles visitor to end the walk
// early without reporting an error.
var ErrStopWalk = errors.New("scriptfs: stop walk")

// VisitFunc is called for every file found by WalkFiles
type VisitFunc func(node FileNode) error

type pendingDir struct {
	path  string
	depth int
}

// AllFiles returns a lazy sequence of every regular file under root.
// Directories are never yielded. A missing or unreadable root, and any
// subdirectory that cannot be listed, contribute no entries.
//
// Every call starts a fresh traversal when the sequence is ranged over.
func AllFiles(root string, options ...WalkOption) iter.Seq[FileNode] {
	opts := defaultWalkOptions()
	for _, opt := range options {
		opt(opts)
	}

	return func(yield func(FileNode) bool) {
		walkFiles(root, opts, yield)
	}
}

// WalkFiles calls fn for every regular file under root, in the same order
// AllFiles yields them.
func WalkFiles(root string, fn VisitFunc, options ...WalkOption) error {
	var visitErr error
	for node := range AllFiles(root, options...) {
		if err := fn(node); err != nil {
			if !errors.Is(err, ErrStopWalk) {
				visitErr = newWalkVisitError(root, node.Path, err)
			}
			break
		}
	}

	return visitErr
}

func walkFiles(root string, opts *walkOptions, yield func(FileNode) bool) {
	// The root is always resolved, even when links below it are not followed
	rootNode, err := NewFileNode(root, true)
	if err != nil || !rootNode.IsDir {
		return
	}

	var visited map[string]struct{}
	if opts.followSymlinks {
		visited = make(map[string]struct{})
	}

	// Directories are walked in the order they were found
	pending := []pendingDir{{path: root, depth: 0}}
	for len(pending) > 0 {
		current := pending[0]
		pending[0] = pendingDir{}
		pending = pending[1:]

		if visited != nil && !markVisited(visited, current.path, opts) {
			continue
		}

		for _, child := range listChildren(current.path, opts) {
			switch {
			case child.IsFile:
				if !yield(child) {
					return
				}
			case child.IsDir:
				if opts.maxDepth >= 0 && current.depth >= opts.maxDepth {
					continue
				}
				pending = append(pending, pendingDir{
					path:  child.Path,
					depth: current.depth + 1,
				})
			}
		}
	}
}

// markVisited records the resolved path of dir and reports false if it was
// already walked through another link.
func markVisited(visited map[string]struct{}, dir string, opts *walkOptions) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}

	if _, seen := visited[resolved]; seen {
		opts.logger.Debug("skipping already visited directory",
			"path", dir,
			"real_path", resolved)
		return false
	}

	visited[resolved] = struct{}{}
	return true
}

// listChildren reads a single directory. Listing failures are swallowed
// and reported as an empty listing.
func listChildren(dir string, opts *walkOptions) []FileNode {
	entries, err := os.ReadDir(dir)
	if err != nil {
		opts.logger.Debug("skipping unreadable directory",
			"path", dir,
			"error", err)
		return nil
	}

	children := make([]FileNode, 0, len(entries))
	for _, entry := range entries {
		if opts.ignoreHidden && isHidden(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		var info os.FileInfo
		if entry.Type()&os.ModeSymlink != 0 && opts.followSymlinks {
			info, err = os.Stat(path)
		} else {
			info, err = entry.Info()
		}
		if err != nil {
			// Broken link or entry removed since the listing
			opts.logger.Debug("skipping entry",
				"path", path,
				"error", err)
			continue
		}

		children = append(children, nodeFromInfo(path, info))
	}

	return children
}

// isHidden checks if a file/directory is hidden
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
