package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/gitwalk/internal/app"
	"github.com/bethropolis/gitwalk/internal/gitwalk"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the gitwalk CLI.
func newRootCommand() *cobra.Command {
	cfg := &app.Config{RootDir: "."}

	cmd := &cobra.Command{
		Use:   "gitwalk [directory]",
		Short: "walk a directory tree, honoring nested .gitignore rules",
		Long: `gitwalk recursively lists the files and directories of a tree the way a
developer sees them: anything excluded by the tree's layered .gitignore
rules (including rule files above the starting directory) is pruned.`,
		Example: `  # List tracked-worthy files under the current directory
  gitwalk

  # Render a tree of a project, including directories
  gitwalk --format tree ~/src/project

  # Only Go files, keep going past unreadable directories
  gitwalk --match '**/*.go' --keep-going .`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.RootDir = args[0]
			}
			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()
			return application.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.RuleFile, "rule-file", gitwalk.DefaultRuleFileName, "name of the per-directory ignore-rule file")
	flags.BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "descend into symbolic links to directories")
	flags.BoolVar(&cfg.KeepGoing, "keep-going", false, "log unreadable directories and continue instead of failing")
	flags.StringVar(&cfg.Format, "format", "list", "output format (list, tree, json)")
	flags.StringVar(&cfg.Match, "match", "", "only print files matching this glob (doublestar syntax)")
	flags.BoolVar(&cfg.ShowDirs, "dirs", false, "include directories in list output")
	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "write to file instead of stdout")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")
	flags.BoolVar(&cfg.ShowSummary, "summary", false, "print walk statistics at the end")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress info messages")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "set the logging level (debug, info, warn, error, none)")

	return cmd
}
