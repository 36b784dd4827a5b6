package scriptfs

import (
	"os"
	"path/filepath"
)

// FileNode represents a filesystem entry as seen at the time it was listed
type FileNode struct {
	Path   string
	Name   string
	IsFile bool
	IsDir  bool
	Info   os.FileInfo
}

// NewFileNode stats path and returns its node. Symlinks are reported as
// neither file nor directory unless followSymlinks is set.
func NewFileNode(path string, followSymlinks bool) (FileNode, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileNode{}, err
	}

	if info.Mode()&os.ModeSymlink != 0 && followSymlinks {
		if info, err = os.Stat(path); err != nil {
			return FileNode{}, err
		}
	}

	return nodeFromInfo(path, info), nil
}

func nodeFromInfo(path string, info os.FileInfo) FileNode {
	return FileNode{
		Path:   path,
		Name:   filepath.Base(path),
		IsFile: info.Mode().IsRegular(),
		IsDir:  info.IsDir(),
		Info:   info,
	}
}

// Children lists the entries of a directory node. A node that is not a
// directory, or a directory that cannot be read, has no children.
func (n FileNode) Children(options ...WalkOption) []FileNode {
	if !n.IsDir {
		return nil
	}

	opts := defaultWalkOptions()
	for _, opt := range options {
		opt(opts)
	}

	return listChildren(n.Path, opts)
}

// MatchKind is the outcome of a single script lookup
type MatchKind int

const (
	MatchNotFound MatchKind = iota
	MatchFound
	MatchAmbiguous
)

func (k MatchKind) String() string {
	switch k {
	case MatchFound:
		return "found"
	case MatchAmbiguous:
		return "ambiguous"
	default:
		return "not_found"
	}
}

// ScriptMatch is the result of FindScriptFileIn. Paths is only set for
// an ambiguous match.
type ScriptMatch struct {
	Kind  MatchKind
	Path  string
	Paths []string
}

// NotFound returns an empty lookup result
func NotFound() ScriptMatch {
	return ScriptMatch{Kind: MatchNotFound}
}

// Found returns a lookup result resolved to path
func Found(path string) ScriptMatch {
	return ScriptMatch{Kind: MatchFound, Path: path}
}

// Ambiguous returns a lookup result that matched every one of paths
func Ambiguous(paths []string) ScriptMatch {
	return ScriptMatch{Kind: MatchAmbiguous, Paths: paths}
}

// OK reports whether the lookup resolved to exactly one file
func (m ScriptMatch) OK() bool {
	return m.Kind == MatchFound
}

// SearchResult represents a search result
type SearchResult struct {
	Path      string
	Info      os.FileInfo
	MatchedBy string // regex or glob
}
