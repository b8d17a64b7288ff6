// Package summary handles display of scan results and statistics
package summary

import (
	"time"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Stats accumulates counters over one walk.
type Stats struct {
	Dirs     int64         // directories visited (yielded)
	Files    int64         // files retained
	Skipped  int64         // directories skipped due to listing errors
	Duration time.Duration // wall time of the walk
}

// DisplayResults shows the end results of a scan operation
func DisplayResults(logger Logger, stats Stats, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Visited %d directories, kept %d files.", stats.Dirs, stats.Files)
	if stats.Skipped > 0 {
		logger.Info("Skipped %d unreadable directories.", stats.Skipped)
	}
	logger.Info("Walk complete in %v.", stats.Duration.Round(time.Millisecond))
}
