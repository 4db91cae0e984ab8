// Package image provides the image management command and its subcommands.
package image

import (
	"github.com/schmitthub/dockhand/internal/cmd/image/build"
	"github.com/schmitthub/dockhand/internal/cmd/image/history"
	imageimport "github.com/schmitthub/dockhand/internal/cmd/image/import"
	"github.com/schmitthub/dockhand/internal/cmd/image/list"
	"github.com/schmitthub/dockhand/internal/cmd/image/load"
	"github.com/schmitthub/dockhand/internal/cmd/image/pull"
	"github.com/schmitthub/dockhand/internal/cmd/image/push"
	"github.com/schmitthub/dockhand/internal/cmd/image/remove"
	"github.com/schmitthub/dockhand/internal/cmd/image/save"
	"github.com/schmitthub/dockhand/internal/cmd/image/tag"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdImage creates the image management command.
// This is a parent command that groups image-related subcommands.
func NewCmdImage(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long: `Manage images through the Docker CLI.

Subcommands cover the local image store plus registry push and pull.`,
		Example: `  # List local images
  dockhand images list

  # Pull an image
  dockhand images pull nginx:latest

  # Build from a Dockerfile
  dockhand images build -t myapp:dev .`,
		// No RunE - this is a parent command
	}

	// Add subcommands
	cmd.AddCommand(build.NewCmdBuild(f, nil))
	cmd.AddCommand(history.NewCmdHistory(f, nil))
	cmd.AddCommand(imageimport.NewCmdImport(f, nil))
	cmd.AddCommand(list.NewCmdList(f, nil))
	cmd.AddCommand(load.NewCmdLoad(f, nil))
	cmd.AddCommand(pull.NewCmdPull(f, nil))
	cmd.AddCommand(push.NewCmdPush(f, nil))
	cmd.AddCommand(remove.NewCmdRemove(f, nil))
	cmd.AddCommand(save.NewCmdSave(f, nil))
	cmd.AddCommand(tag.NewCmdTag(f, nil))

	return cmd
}
