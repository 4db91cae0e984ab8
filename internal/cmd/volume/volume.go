// Package volume provides the volume inspection command.
package volume

import (
	"github.com/schmitthub/dockhand/internal/cmd/volume/list"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdVolume creates the volume management command.
func NewCmdVolume(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume"},
		Short:   "Inspect volumes",
		Example: `  # List volumes
  dockhand volumes list`,
		// No RunE - this is a parent command
	}

	cmd.AddCommand(list.NewCmdList(f, nil))

	return cmd
}
