// Package network provides the network inspection command.
package network

import (
	"github.com/schmitthub/dockhand/internal/cmd/network/list"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdNetwork creates the network management command.
func NewCmdNetwork(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"network"},
		Short:   "Inspect networks",
		Example: `  # List networks
  dockhand networks list`,
		// No RunE - this is a parent command
	}

	cmd.AddCommand(list.NewCmdList(f, nil))

	return cmd
}
