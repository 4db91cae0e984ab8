package root

import (
	"fmt"

	containerAttach "github.com/schmitthub/dockhand/internal/cmd/container/attach"
	containerCommit "github.com/schmitthub/dockhand/internal/cmd/container/commit"
	containerCp "github.com/schmitthub/dockhand/internal/cmd/container/cp"
	containerCreate "github.com/schmitthub/dockhand/internal/cmd/container/create"
	containerDiff "github.com/schmitthub/dockhand/internal/cmd/container/diff"
	containerExec "github.com/schmitthub/dockhand/internal/cmd/container/exec"
	containerExport "github.com/schmitthub/dockhand/internal/cmd/container/export"
	containerInspect "github.com/schmitthub/dockhand/internal/cmd/container/inspect"
	containerKill "github.com/schmitthub/dockhand/internal/cmd/container/kill"
	containerList "github.com/schmitthub/dockhand/internal/cmd/container/list"
	containerLogs "github.com/schmitthub/dockhand/internal/cmd/container/logs"
	containerPause "github.com/schmitthub/dockhand/internal/cmd/container/pause"
	containerPort "github.com/schmitthub/dockhand/internal/cmd/container/port"
	containerRemove "github.com/schmitthub/dockhand/internal/cmd/container/remove"
	containerRename "github.com/schmitthub/dockhand/internal/cmd/container/rename"
	containerRestart "github.com/schmitthub/dockhand/internal/cmd/container/restart"
	containerStart "github.com/schmitthub/dockhand/internal/cmd/container/start"
	containerStop "github.com/schmitthub/dockhand/internal/cmd/container/stop"
	containerTop "github.com/schmitthub/dockhand/internal/cmd/container/top"
	containerUnpause "github.com/schmitthub/dockhand/internal/cmd/container/unpause"
	containerUpdate "github.com/schmitthub/dockhand/internal/cmd/container/update"
	containerWait "github.com/schmitthub/dockhand/internal/cmd/container/wait"
	imageBuild "github.com/schmitthub/dockhand/internal/cmd/image/build"
	imageHistory "github.com/schmitthub/dockhand/internal/cmd/image/history"
	imageImport "github.com/schmitthub/dockhand/internal/cmd/image/import"
	imageLoad "github.com/schmitthub/dockhand/internal/cmd/image/load"
	imagePull "github.com/schmitthub/dockhand/internal/cmd/image/pull"
	imagePush "github.com/schmitthub/dockhand/internal/cmd/image/push"
	imageRemove "github.com/schmitthub/dockhand/internal/cmd/image/remove"
	imageSave "github.com/schmitthub/dockhand/internal/cmd/image/save"
	imageTag "github.com/schmitthub/dockhand/internal/cmd/image/tag"
	monitorCharts "github.com/schmitthub/dockhand/internal/cmd/monitor/charts"
	monitorDashboard "github.com/schmitthub/dockhand/internal/cmd/monitor/dashboard"
	monitorEvents "github.com/schmitthub/dockhand/internal/cmd/monitor/events"
	monitorStats "github.com/schmitthub/dockhand/internal/cmd/monitor/stats"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// Alias defines a top-level command alias to a subcommand.
// This follows Docker's pattern where `docker ps` is an alias for
// `docker container ls`. Each alias creates a new command instance from the
// factory, overriding only Use and optionally Example, while inheriting all
// other properties (flags, RunE, etc.).
type Alias struct {
	// Use sets the command's Use field (required)
	Use string
	// Example optionally replaces the command's Example field (empty preserves original)
	Example string
	// Command is a factory function that creates the target command
	Command func(*cmdutil.Factory) *cobra.Command
}

// topLevelAliases defines all top-level shortcuts to subcommands.
var topLevelAliases = []Alias{
	{
		Use:     "attach CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerAttach.NewCmdAttach(f, nil) },
	},
	{
		Use:     "build PATH",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageBuild.NewCmdBuild(f, nil) },
	},
	{
		Use:     "charts [TYPE]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return monitorCharts.NewCmdCharts(f, nil) },
	},
	{
		Use:     "commit CONTAINER REPOSITORY[:TAG]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerCommit.NewCmdCommit(f, nil) },
	},
	{
		Use:     "cp SRC_PATH DEST_PATH",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerCp.NewCmdCp(f, nil) },
	},
	{
		Use:     "create IMAGE",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerCreate.NewCmdCreate(f, nil) },
	},
	{
		Use:     "dashboard",
		Command: func(f *cmdutil.Factory) *cobra.Command { return monitorDashboard.NewCmdDashboard(f, nil) },
	},
	{
		Use:     "diff CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerDiff.NewCmdDiff(f, nil) },
	},
	{
		Use:     "events",
		Command: func(f *cmdutil.Factory) *cobra.Command { return monitorEvents.NewCmdEvents(f, nil) },
	},
	{
		Use:     "exec CONTAINER COMMAND [ARG...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerExec.NewCmdExec(f, nil) },
	},
	{
		Use:     "export CONTAINER OUTPUT",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerExport.NewCmdExport(f, nil) },
	},
	{
		Use:     "history IMAGE",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageHistory.NewCmdHistory(f, nil) },
	},
	{
		Use:     "import FILE [IMAGE]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageImport.NewCmdImport(f, nil) },
	},
	{
		Use:     "inspect CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerInspect.NewCmdInspect(f, nil) },
	},
	{
		Use:     "kill CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerKill.NewCmdKill(f, nil) },
	},
	{
		Use:     "load FILE",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageLoad.NewCmdLoad(f, nil) },
	},
	{
		Use:     "logs CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerLogs.NewCmdLogs(f, nil) },
	},
	{
		Use:     "pause CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerPause.NewCmdPause(f, nil) },
	},
	{
		Use:     "port CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerPort.NewCmdPort(f, nil) },
	},
	{
		Use:     "ps",
		Example: psExample,
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerList.NewCmdList(f, nil) },
	},
	{
		Use:     "pull IMAGE",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imagePull.NewCmdPull(f, nil) },
	},
	{
		Use:     "push IMAGE",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imagePush.NewCmdPush(f, nil) },
	},
	{
		Use:     "rename CONTAINER NEW_NAME",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerRename.NewCmdRename(f, nil) },
	},
	{
		Use:     "restart CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerRestart.NewCmdRestart(f, nil) },
	},
	{
		Use:     "rm CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerRemove.NewCmdRemove(f, nil) },
	},
	{
		Use:     "rmi IMAGE [IMAGE...]",
		Example: rmiExample,
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageRemove.NewCmdRemove(f, nil) },
	},
	{
		Use:     "save IMAGE OUTPUT",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageSave.NewCmdSave(f, nil) },
	},
	{
		Use:     "start CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerStart.NewCmdStart(f, nil) },
	},
	{
		Use:     "stats",
		Command: func(f *cmdutil.Factory) *cobra.Command { return monitorStats.NewCmdStats(f, nil) },
	},
	{
		Use:     "stop CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerStop.NewCmdStop(f, nil) },
	},
	{
		Use:     "tag SOURCE TARGET",
		Command: func(f *cmdutil.Factory) *cobra.Command { return imageTag.NewCmdTag(f, nil) },
	},
	{
		Use:     "top CONTAINER",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerTop.NewCmdTop(f, nil) },
	},
	{
		Use:     "unpause CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerUnpause.NewCmdUnpause(f, nil) },
	},
	{
		Use:     "update CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerUpdate.NewCmdUpdate(f, nil) },
	},
	{
		Use:     "wait CONTAINER [CONTAINER...]",
		Command: func(f *cmdutil.Factory) *cobra.Command { return containerWait.NewCmdWait(f, nil) },
	},
}

// registerAliases adds all top-level aliases to the root command.
// Each alias gets a fresh command instance from its factory, ensuring
// flags, RunE, and other properties are inherited automatically.
func registerAliases(root *cobra.Command, f *cmdutil.Factory) {
	for _, alias := range topLevelAliases {
		if alias.Use == "" {
			panic("alias has empty Use field")
		}
		if alias.Command == nil {
			panic(fmt.Sprintf("alias %q has nil Command factory", alias.Use))
		}
		cmd := alias.Command(f)
		if cmd == nil {
			panic(fmt.Sprintf("alias %q factory returned nil command", alias.Use))
		}
		cmd.Use = alias.Use
		// Leaf shorthands like "ls" stay on the group command; the top
		// level keeps the Docker names only.
		cmd.Aliases = nil
		if alias.Example != "" {
			cmd.Example = alias.Example
		}
		root.AddCommand(cmd)
	}
}

const psExample = `  # List all containers
  dockhand ps

  # Only running containers
  dockhand ps --filter status=running

  # Only IDs, for scripting
  dockhand ps -q`

const rmiExample = `  # Remove an image
  dockhand rmi nginx:latest

  # Remove several at once
  dockhand rmi nginx:latest redis:7`
