// Package app wires configuration, walker, printer and summary into
// the gitwalk command.
package app

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bethropolis/gitwalk/internal/gitwalk"
	"github.com/bethropolis/gitwalk/internal/logger"
	"github.com/bethropolis/gitwalk/internal/printer"
	"github.com/bethropolis/gitwalk/internal/summary"
)

// Config holds all command configuration settings
type Config struct {
	// Directory settings
	RootDir        string
	RuleFile       string
	FollowSymlinks bool
	KeepGoing      bool

	// Output settings
	Format      string
	Match       string
	ShowDirs    bool
	OutputFile  string
	NoColor     bool
	ShowSummary bool

	// Logging settings
	Verbose  bool
	Quiet    bool
	LogLevel string
}

// App encapsulates the command's runtime state.
type App struct {
	cfg       *Config
	log       *logger.Logger
	output    io.Writer
	closer    io.Closer
	useColors bool
}

// New prepares the output destination and logger for the given config.
func New(cfg *Config) (*App, error) {
	useColors := !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && cfg.OutputFile == ""
	color.NoColor = !useColors

	var output io.Writer = os.Stdout
	var closer io.Closer
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("app: failed to create output file: %w", err)
		}
		output = file
		closer = file
	}

	log := logger.New(os.Stderr, cfg.Verbose, useColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:       cfg,
		log:       log,
		output:    output,
		closer:    closer,
		useColors: useColors,
	}, nil
}

// Close releases the output file, if one was opened.
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// Run executes the walk and renders its entries.
func (a *App) Run() error {
	startTime := time.Now()

	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("app: invalid root directory path %q: %w", a.cfg.RootDir, err)
	}
	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		return fmt.Errorf("app: cannot access root directory %q: %w", absRootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("app: path %q is not a directory", absRootDir)
	}

	if a.cfg.Match != "" && !doublestar.ValidatePattern(a.cfg.Match) {
		return fmt.Errorf("app: invalid match pattern %q", a.cfg.Match)
	}

	format, err := printer.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	p := printer.New().
		WithOutput(a.output).
		WithColors(a.useColors && a.cfg.OutputFile == "").
		WithFormat(format).
		WithDirs(a.cfg.ShowDirs)

	var stats summary.Stats

	walkOptions := []gitwalk.Option{
		gitwalk.WithLogger(a.log),
		gitwalk.WithFollowSymlinks(a.cfg.FollowSymlinks),
		gitwalk.WithRuleFileName(a.cfg.RuleFile),
	}
	if a.cfg.KeepGoing {
		walkOptions = append(walkOptions, gitwalk.WithErrorHandler(func(err error) {
			stats.Skipped++
			a.log.Warn("Skipping directory: %v", err)
		}))
	}

	walker, err := gitwalk.New(absRootDir, walkOptions...)
	if err != nil {
		return err
	}

	infoLog("Walking directory: %s", absRootDir)

	for entry, walkErr := range walker.Entries() {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(absRootDir, entry.Path)
		if relErr != nil || rel == "." {
			rel = ""
		}
		rel = filepath.ToSlash(rel)

		files := entry.Files
		if a.cfg.Match != "" {
			files = nil
			for _, name := range entry.Files {
				if doublestar.MatchUnvalidated(a.cfg.Match, path.Join(rel, name)) {
					files = append(files, name)
				}
			}
		}

		p.PrintEntry(rel, entry, files)
		stats.Dirs++
		stats.Files += int64(len(files))
	}

	p.Finalize()

	stats.Duration = time.Since(startTime)
	if a.cfg.ShowSummary {
		summary.DisplayResults(a.log, stats, a.cfg.Quiet)
	}
	return nil
}
