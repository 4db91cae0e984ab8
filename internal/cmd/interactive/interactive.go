package interactive

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/logger"
	"github.com/schmitthub/dockhand/internal/shell"
	"github.com/spf13/cobra"
)

// InteractiveOptions holds options for the interactive command.
type InteractiveOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)
	Config    func() *config.Config
}

// NewCmdInteractive creates the interactive command. Running dockhand with
// no arguments lands here too.
func NewCmdInteractive(f *cmdutil.Factory, runF func(context.Context, *InteractiveOptions) error) *cobra.Command {
	opts := &InteractiveOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"shell", "i"},
		Short:   "Start an interactive session",
		Long: `Start an interactive session with TAB completion and command history.

The session keeps a prompt open and dispatches each submitted line the
way the one-shot commands would. The containers and images commands open
numbered menus: pick a row by number and act on it without retyping
names. History stays in memory and is gone when the session ends.`,
		Example: `  # Start a session
  dockhand interactive

  # The bare binary does the same
  dockhand`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return interactiveRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func interactiveRun(ctx context.Context, opts *InteractiveOptions) error {
	cfg := opts.Config()
	watchSettings(cfg, opts.IOStreams)
	historySize := cfg.Settings.History.GetSize()
	return shell.New(opts.IOStreams, opts.Client, historySize).Run(ctx)
}

// watchSettings re-applies the logging level when the settings file changes
// while a session is open. Watching is best effort: without a settings file
// the session works the same, minus live level changes.
func watchSettings(cfg *config.Config, ios *iostreams.IOStreams) {
	if err := cfg.Watch(settingsChanged(cfg, ios)); err != nil {
		ios.Logger.Debug().Err(err).Msg("settings watch unavailable")
	}
}

// settingsChanged returns the handler run on each settings file change.
func settingsChanged(cfg *config.Config, ios *iostreams.IOStreams) func(fsnotify.Event) {
	return func(event fsnotify.Event) {
		if err := cfg.Reload(); err != nil {
			ios.Logger.Warn().Err(err).Msg("failed to reload settings")
			return
		}
		logger.SetLevel(cfg.Settings.Logging.GetLevel())
		ios.Logger.Info().Str("file", event.Name).Msg("settings reloaded")
	}
}

// Run starts a session straight from the factory. The root command lands
// here when invoked with no subcommand at all.
func Run(ctx context.Context, f *cmdutil.Factory) error {
	return interactiveRun(ctx, &InteractiveOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
		Config:    f.Config,
	})
}
