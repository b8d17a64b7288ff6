// Package gitwalk walks a directory tree while honoring the layered
// .gitignore-style rule files found in it, pruning ignored subtrees
// before they are ever entered.
package gitwalk

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// Direction selects the traversal order.
type Direction int

const (
	// TopDown yields a directory before any of its retained children.
	TopDown Direction = iota
	// BottomUp is accepted for API symmetry but not supported.
	BottomUp
)

// ErrBottomUp is returned by New when bottom-up traversal is requested.
var ErrBottomUp = errors.New("gitwalk: bottom-up traversal is not supported")

// Entry is one visited directory level: the directory path plus the
// child directory and file names that survived rule filtering. The
// names in Dirs determine exactly which subtrees are visited next.
type Entry struct {
	Path  string   `json:"path"`
	Dirs  []string `json:"dirs"`
	Files []string `json:"files"`
}

// readDir is the directory listing primitive, a variable so tests can
// observe or fail listings.
var readDir = os.ReadDir

// Walker produces a lazy, top-down traversal of a directory tree.
// Walkers share no mutable state, so any number of them may run
// concurrently over the same tree.
type Walker struct {
	top  string
	opts walkOptions
}

// New validates the configuration and returns a Walker. The starting
// path is not touched until the first entry is requested; a missing or
// unlistable start directory surfaces through the error-handler
// contract like any other listing failure.
func New(top string, opts ...Option) (*Walker, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.direction != TopDown {
		return nil, ErrBottomUp
	}

	return &Walker{top: top, opts: options}, nil
}

// Entries returns the traversal as a lazy sequence of (entry, error)
// pairs. Listing, rule resolution and filtering for a level happen only
// when that level is requested, so stopping early costs nothing for
// unvisited subtrees.
//
// Well-formed levels arrive as (entry, nil). When no error handler is
// configured, the first listing failure arrives as (nil, error) and
// ends the sequence; with a handler installed, failures go to the
// handler and the affected directory is skipped.
func (w *Walker) Entries() iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		w.walk(w.top, yield)
	}
}

// walk visits dir and its retained subtree. It reports false once the
// consumer stopped or a listing failure ended the sequence.
func (w *Walker) walk(dir string, yield func(*Entry, error) bool) bool {
	children, err := readDir(dir)
	if err != nil {
		listErr := fmt.Errorf("gitwalk: listing %q: %w", dir, err)
		w.opts.logger.Error("Walk: cannot list %q: %v", dir, err)
		if w.opts.onError != nil {
			w.opts.onError(listErr)
			return true // skip this directory, keep walking siblings
		}
		yield(nil, listErr)
		return false
	}

	dirs, files, symlinked := w.classify(dir, children)

	rules := w.ruleSet(dir)
	relDir := w.relative(dir)

	// The retained lists are fresh slices: they are the sole source of
	// truth for descent, never an alias of the raw listing.
	var keptDirs []string
	for _, name := range dirs {
		if rules.Ignored(path.Join(relDir, name), true) {
			w.opts.logger.Debug("Walk: pruned directory %q", path.Join(relDir, name))
			continue
		}
		keptDirs = append(keptDirs, name)
	}

	var keptFiles []string
	for _, name := range files {
		if rules.Ignored(path.Join(relDir, name), false) {
			w.opts.logger.Debug("Walk: excluded file %q", path.Join(relDir, name))
			continue
		}
		keptFiles = append(keptFiles, name)
	}

	// Descend over a private copy: the consumer may mutate the yielded
	// entry, and the retained list must stay the sole source of truth.
	descend := slices.Clone(keptDirs)

	if !yield(&Entry{Path: dir, Dirs: keptDirs, Files: keptFiles}, nil) {
		return false
	}

	for _, name := range descend {
		if symlinked[name] && !w.opts.followSymlinks {
			w.opts.logger.Debug("Walk: not following symlink %q", path.Join(relDir, name))
			continue
		}
		if !w.walk(filepath.Join(dir, name), yield) {
			return false
		}
	}
	return true
}

// classify splits a raw listing into directory and file names. A
// symlink pointing at a directory is listed under dirs but remembered
// in symlinked so descent can honor the follow-symlinks flag; broken
// symlinks surface as files.
func (w *Walker) classify(dir string, children []os.DirEntry) (dirs, files []string, symlinked map[string]bool) {
	symlinked = make(map[string]bool)
	for _, child := range children {
		name := child.Name()
		switch {
		case child.IsDir():
			dirs = append(dirs, name)
		case child.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(filepath.Join(dir, name))
			if err == nil && info.IsDir() {
				dirs = append(dirs, name)
				symlinked[name] = true
			} else {
				files = append(files, name)
			}
		default:
			files = append(files, name)
		}
	}
	return dirs, files, symlinked
}

// relative converts a visited directory to its slash-separated path
// relative to the start path. The start path itself maps to the empty
// string, not ".", so child names are matched without a leading "./".
func (w *Walker) relative(dir string) string {
	rel, err := filepath.Rel(w.top, dir)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
