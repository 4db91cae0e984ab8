// Package config provides the settings management command.
package config

import (
	initcmd "github.com/schmitthub/dockhand/internal/cmd/config/init"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dockhand settings",
		Long: `Manage the optional dockhand settings file.

Settings control the engine binary, logging, colors, and shell history.
Without a settings file sensible defaults apply; individual keys can be
overridden with DOCKHAND_* environment variables either way.`,
	}

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))

	return cmd
}
