// Package ignore compiles ordered ignore-rule lines into a queryable
// rule set and reads per-directory rule files.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// RuleSet is the compiled form of an ordered pattern list. A path is
// ignored if the last pattern in the list that matches it is
// non-negated, retained if the last match is a negation, and retained
// when nothing matches.
type RuleSet struct {
	matcher gitignore.GitIgnore
}

// Compile builds a RuleSet from ordered raw pattern lines. Comment and
// blank lines are handled by the pattern library; no lines compile to a
// rule set that ignores nothing. Malformed patterns are the library's
// concern and are dropped silently.
func Compile(lines []string) *RuleSet {
	matcher := gitignore.New(strings.NewReader(strings.Join(lines, "\n")), "", nil)
	return &RuleSet{matcher: matcher}
}

// Ignored reports whether rel, a slash-separated path relative to the
// walk's start path, is excluded by the rule set. Directories are
// queried as directory paths so trailing-slash patterns apply to them
// only. The start path itself ("" or ".") is never ignored.
func (r *RuleSet) Ignored(rel string, isDir bool) (ignored bool) {
	if r == nil || r.matcher == nil {
		return false
	}
	if rel == "" || rel == "." {
		return false
	}

	// The pattern library has panicked on odd inputs before; an
	// undecidable path is kept rather than dropped.
	defer func() {
		if recover() != nil {
			ignored = false
		}
	}()

	match := r.matcher.Relative(filepath.ToSlash(rel), isDir)
	return match != nil && match.Ignore()
}

// ReadRuleFile returns the ordered lines of the rule file called name
// in dir. A missing or unreadable file is not an error; it simply
// contributes no lines.
func ReadRuleFile(dir, name string) []string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}
