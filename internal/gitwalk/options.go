package gitwalk

import "github.com/bethropolis/gitwalk/internal/utils"

// DefaultRuleFileName is the rule file consulted in each directory
// unless WithRuleFileName overrides it.
const DefaultRuleFileName = ".gitignore"

// ErrorHandler receives a per-directory listing failure. When a handler
// is installed the failed directory is skipped and the walk continues.
type ErrorHandler func(err error)

// walkOptions holds the resolved Walker configuration.
type walkOptions struct {
	direction      Direction
	followSymlinks bool
	ruleFileName   string
	onError        ErrorHandler
	logger         utils.Logger
}

// defaultOptions returns the default walk configuration.
func defaultOptions() walkOptions {
	return walkOptions{
		direction:      TopDown,
		followSymlinks: false,
		ruleFileName:   DefaultRuleFileName,
		logger:         &utils.NoopLogger{},
	}
}

// Option is a functional option for configuring a Walker.
type Option func(*walkOptions)

// WithDirection sets the traversal order. Only TopDown is supported;
// New rejects BottomUp with ErrBottomUp before any iteration begins.
func WithDirection(d Direction) Option {
	return func(opts *walkOptions) {
		opts.direction = d
	}
}

// WithFollowSymlinks controls whether descent follows symbolic links to
// directories. The default is to list them but not enter them.
func WithFollowSymlinks(follow bool) Option {
	return func(opts *walkOptions) {
		opts.followSymlinks = follow
	}
}

// WithRuleFileName overrides the per-directory rule file name.
func WithRuleFileName(name string) Option {
	return func(opts *walkOptions) {
		if name != "" {
			opts.ruleFileName = name
		}
	}
}

// WithErrorHandler installs a handler for per-directory listing
// failures. Without one, the first failure ends the sequence.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(opts *walkOptions) {
		opts.onError = handler
	}
}

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *walkOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}
