package scriptfs

import (
	"path/filepath"
)

// FindScriptFilesIn returns the paths of all files named name under root.
//
// If root/name is itself a regular file it is returned alone and the tree
// is not walked. Otherwise every file under root whose base name equals name
// (case-sensitive) is returned. The result is nil when nothing matches.
func FindScriptFilesIn(root, name string, options ...WalkOption) []string {
	opts := defaultWalkOptions()
	for _, opt := range options {
		opt(opts)
	}

	// The direct file is judged the same way the walker judges entries
	direct := filepath.Join(root, name)
	if node, err := NewFileNode(direct, opts.followSymlinks); err == nil && node.IsFile {
		return []string{direct}
	}

	var paths []string
	for node := range AllFiles(root, options...) {
		if node.Name == name {
			paths = append(paths, node.Path)
		}
	}

	return paths
}

// FindScriptFileIn resolves name under root to exactly one file.
//
// A nil root, or no matching file, gives a NotFound match. Several
// matching files give an *AmbiguousScriptError listing all of them; no
// attempt is made to pick one.
func FindScriptFileIn(root *string, name string, options ...WalkOption) (ScriptMatch, error) {
	if root == nil {
		return NotFound(), nil
	}

	paths := FindScriptFilesIn(*root, name, options...)
	switch len(paths) {
	case 0:
		return NotFound(), nil
	case 1:
		return Found(paths[0]), nil
	}

	absPaths := make([]string, 0, len(paths))
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		absPaths = append(absPaths, absPath)
	}

	return Ambiguous(absPaths), &AmbiguousScriptError{
		Root:  *root,
		Paths: absPaths,
	}
}

// FindScriptFile is FindScriptFileIn for callers holding a plain string.
// An empty root means no root was given.
func FindScriptFile(root, name string, options ...WalkOption) (ScriptMatch, error) {
	if root == "" {
		return NotFound(), nil
	}

	return FindScriptFileIn(&root, name, options...)
}
