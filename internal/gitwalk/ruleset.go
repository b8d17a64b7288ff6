package gitwalk

import (
	"path/filepath"

	"github.com/bethropolis/gitwalk/internal/ignore"
)

// ruleSet builds the effective rule set for dir by collecting rule-file
// lines from dir up through every ancestor to the filesystem root,
// including ancestors above the start path. The visited directory's
// lines come first and the root's last; with last-match-wins matching
// this makes an outer rule outrank an inner negation.
//
// The chain is rebuilt from scratch for every visited directory rather
// than inherited incrementally, so a rule file added anywhere on the
// ancestor chain is always picked up against a consistent chain.
func (w *Walker) ruleSet(dir string) *ignore.RuleSet {
	abs, err := filepath.Abs(dir)
	if err != nil {
		w.opts.logger.Warn("RuleSet: cannot resolve %q: %v", dir, err)
		abs = dir
	}

	var lines []string
	for current := abs; ; {
		if fileLines := ignore.ReadRuleFile(current, w.opts.ruleFileName); len(fileLines) > 0 {
			w.opts.logger.Debug("RuleSet: %d line(s) from %s", len(fileLines), filepath.Join(current, w.opts.ruleFileName))
			lines = append(lines, fileLines...)
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return ignore.Compile(lines)
}
