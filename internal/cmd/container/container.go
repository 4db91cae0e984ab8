// Package container provides the container management command and its subcommands.
package container

import (
	"github.com/schmitthub/dockhand/internal/cmd/container/attach"
	"github.com/schmitthub/dockhand/internal/cmd/container/commit"
	"github.com/schmitthub/dockhand/internal/cmd/container/cp"
	"github.com/schmitthub/dockhand/internal/cmd/container/create"
	"github.com/schmitthub/dockhand/internal/cmd/container/diff"
	"github.com/schmitthub/dockhand/internal/cmd/container/exec"
	"github.com/schmitthub/dockhand/internal/cmd/container/export"
	"github.com/schmitthub/dockhand/internal/cmd/container/inspect"
	"github.com/schmitthub/dockhand/internal/cmd/container/kill"
	"github.com/schmitthub/dockhand/internal/cmd/container/list"
	"github.com/schmitthub/dockhand/internal/cmd/container/logs"
	"github.com/schmitthub/dockhand/internal/cmd/container/pause"
	"github.com/schmitthub/dockhand/internal/cmd/container/port"
	"github.com/schmitthub/dockhand/internal/cmd/container/remove"
	"github.com/schmitthub/dockhand/internal/cmd/container/rename"
	"github.com/schmitthub/dockhand/internal/cmd/container/restart"
	"github.com/schmitthub/dockhand/internal/cmd/container/size"
	"github.com/schmitthub/dockhand/internal/cmd/container/start"
	"github.com/schmitthub/dockhand/internal/cmd/container/stop"
	"github.com/schmitthub/dockhand/internal/cmd/container/top"
	"github.com/schmitthub/dockhand/internal/cmd/container/unpause"
	"github.com/schmitthub/dockhand/internal/cmd/container/update"
	"github.com/schmitthub/dockhand/internal/cmd/container/wait"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdContainer creates the container management command.
// This is a parent command that groups container-related subcommands.
func NewCmdContainer(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "containers",
		Aliases: []string{"container"},
		Short:   "Manage containers",
		Long: `Manage containers through the Docker CLI.

Every subcommand shells out to the docker binary, so anything visible to
"docker ps" on this machine is visible here.`,
		Example: `  # List all containers, including stopped ones
  dockhand containers list

  # Start a container
  dockhand containers start web

  # Tail the last 50 log lines
  dockhand containers logs web

  # Remove a container (prompts for confirmation)
  dockhand containers remove web`,
		// No RunE - this is a parent command
	}

	// Add subcommands
	cmd.AddCommand(attach.NewCmdAttach(f, nil))
	cmd.AddCommand(commit.NewCmdCommit(f, nil))
	cmd.AddCommand(cp.NewCmdCp(f, nil))
	cmd.AddCommand(create.NewCmdCreate(f, nil))
	cmd.AddCommand(diff.NewCmdDiff(f, nil))
	cmd.AddCommand(exec.NewCmdExec(f, nil))
	cmd.AddCommand(export.NewCmdExport(f, nil))
	cmd.AddCommand(inspect.NewCmdInspect(f, nil))
	cmd.AddCommand(kill.NewCmdKill(f, nil))
	cmd.AddCommand(list.NewCmdList(f, nil))
	cmd.AddCommand(logs.NewCmdLogs(f, nil))
	cmd.AddCommand(pause.NewCmdPause(f, nil))
	cmd.AddCommand(port.NewCmdPort(f, nil))
	cmd.AddCommand(remove.NewCmdRemove(f, nil))
	cmd.AddCommand(rename.NewCmdRename(f, nil))
	cmd.AddCommand(restart.NewCmdRestart(f, nil))
	cmd.AddCommand(size.NewCmdSize(f, nil))
	cmd.AddCommand(start.NewCmdStart(f, nil))
	cmd.AddCommand(stop.NewCmdStop(f, nil))
	cmd.AddCommand(top.NewCmdTop(f, nil))
	cmd.AddCommand(unpause.NewCmdUnpause(f, nil))
	cmd.AddCommand(update.NewCmdUpdate(f, nil))
	cmd.AddCommand(wait.NewCmdWait(f, nil))

	return cmd
}
