package root

import (
	configcmd "github.com/schmitthub/dockhand/internal/cmd/config"
	"github.com/schmitthub/dockhand/internal/cmd/container"
	"github.com/schmitthub/dockhand/internal/cmd/image"
	"github.com/schmitthub/dockhand/internal/cmd/interactive"
	"github.com/schmitthub/dockhand/internal/cmd/monitor"
	"github.com/schmitthub/dockhand/internal/cmd/network"
	versioncmd "github.com/schmitthub/dockhand/internal/cmd/version"
	"github.com/schmitthub/dockhand/internal/cmd/volume"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	internalconfig "github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the dockhand CLI.
func NewCmdRoot(f *cmdutil.Factory, version, commit string) (*cobra.Command, error) {
	var debug bool

	cmd := &cobra.Command{
		Use:   "dockhand [command]",
		Short: "A friendly command-line companion for the Docker engine",
		Long: `Dockhand drives the Docker CLI for you: grouped commands for containers,
images, networks and volumes, monitoring views, and an interactive session
with TAB completion and numbered menus.

Run it bare to enter the interactive session:

  dockhand

Or call any command directly:

  dockhand ps
  dockhand containers logs web --tail 100
  dockhand monitor stats`,
		SilenceUsage: true,
		// Main() owns error printing so SilentError stays silent.
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("dockhand starting")

			// Settings problems are worth one warning, not a dead CLI.
			if err := f.Config().LoadError(); err != nil {
				f.IOStreams.PrintWarning("settings not loaded, using defaults: %v", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmdutil.FlagErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			// The bare binary opens the interactive session.
			return interactive.Run(cmd.Context(), f)
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, commit))

	// Register top-level aliases (shortcuts to subcommands)
	registerAliases(cmd, f)

	// Add management commands
	cmd.AddCommand(container.NewCmdContainer(f))
	cmd.AddCommand(image.NewCmdImage(f))
	cmd.AddCommand(network.NewCmdNetwork(f))
	cmd.AddCommand(volume.NewCmdVolume(f))
	cmd.AddCommand(monitor.NewCmdMonitor(f))

	// Add utility commands
	cmd.AddCommand(interactive.NewCmdInteractive(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, nil))

	return cmd, nil
}

// initializeLogger sets up file logging from the loaded settings. Logging is
// best effort: any failure leaves the nop logger in place and the CLI moves
// on without it.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	cfg := f.Config()
	lc := cfg.Settings.Logging

	// The settings file can pin debug level without the flag.
	if lc.GetLevel() == "debug" {
		debug = true
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init()
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: lc.FileEnabled,
		MaxSizeMB:   lc.GetMaxSizeMB(),
		MaxAgeDays:  lc.GetMaxAgeDays(),
		MaxBackups:  lc.GetMaxBackups(),
	}
	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init()
	}
}
