package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/signals"
)

// menuAction is one entry in a sub-menu's action table. The table drives
// both the rendered footer and action-name validation, so the two cannot
// drift apart.
type menuAction struct {
	name  string
	usage string
	desc  string
}

var containerMenuActions = []menuAction{
	{"start", "start <number>", "Start container"},
	{"stop", "stop <number>", "Stop container"},
	{"restart", "restart <number>", "Restart container"},
	{"pause", "pause <number>", "Pause container"},
	{"unpause", "unpause <number>", "Unpause container"},
	{"remove", "remove <number>", "Remove container"},
	{"logs", "logs <number>", "Show logs"},
	{"exec", "exec <number> <cmd>", "Execute command"},
	{"inspect", "inspect <number>", "Inspect container"},
	{"info", "info <number>", "Get container info"},
	{"top", "top <number>", "Show processes"},
	{"attach", "attach <number>", "Attach to container"},
	{"commit", "commit <number> <repo> [tag]", "Commit container"},
	{"cp", "cp <number> <src> <dest>", "Copy files"},
	{"diff", "diff <number>", "Show diff"},
	{"export", "export <number> <file>", "Export container"},
	{"kill", "kill <number> [signal]", "Kill container"},
	{"port", "port <number>", "Show ports"},
	{"rename", "rename <number> <new>", "Rename container"},
	{"update", "update <number> [memory] [cpus]", "Update container limits"},
	{"wait", "wait <number>", "Wait for container"},
}

// containerMenu lists containers, renders the numbered table with its
// action footer, and loops on `<action> <number> [args...]` lines. Every
// number refers to the listing captured on entry; the snapshot is not
// refreshed while the menu is open, so rows keep the meaning the table
// showed even when engine state has moved on.
func (s *Session) containerMenu(ctx context.Context, reader lineReader) error {
	client, err := s.client(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	snapshot, err := client.ListContainers(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(snapshot) == 0 {
		s.ios.PrintInfo("No containers found.")
		return nil
	}
	s.renderContainerMenu(snapshot)

	for {
		reader.SetPrompt(s.prompt("containers"))
		line, err := reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.ios.PrintInfo("Use 'back' to return to the main menu.")
			continue
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		// A leading group noun is tolerated: "containers start 3" and
		// "start 3" mean the same thing here. The bare noun redraws the
		// captured table.
		if fields[0] == "containers" {
			fields = fields[1:]
			if len(fields) == 0 {
				s.renderContainerMenu(snapshot)
				continue
			}
		}

		switch fields[0] {
		case "back":
			return nil
		case "exit", "quit":
			return errExit
		}

		s.report(s.containerAction(ctx, reader, client, snapshot, fields))
	}
}

// containerAction resolves and runs one action line against the snapshot.
// The index is validated before anything touches the engine; a rejected
// selection never produces a subprocess call.
func (s *Session) containerAction(ctx context.Context, reader lineReader, client *engine.Client, snapshot []engine.Container, fields []string) error {
	action := fields[0]
	if !knownAction(containerMenuActions, action) {
		return fmt.Errorf("unknown action %q: type 'back' for the main menu", action)
	}
	if len(fields) < 2 {
		return fmt.Errorf("usage: %s <number>", action)
	}
	target, err := pick(snapshot, fields[1])
	if err != nil {
		return err
	}
	name := target.Name
	args := fields[2:]

	switch action {
	case "start":
		if err := client.StartContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' started successfully", name)

	case "stop":
		if err := client.StopContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' stopped successfully", name)

	case "restart":
		if err := client.RestartContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' restarted successfully", name)

	case "pause":
		if err := client.PauseContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' paused successfully", name)

	case "unpause":
		if err := client.UnpauseContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' unpaused successfully", name)

	case "remove":
		if !s.confirm(reader, "Are you sure you want to remove container '%s'?", name) {
			return nil
		}
		if err := client.RemoveContainer(ctx, name); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' removed successfully", name)

	case "logs":
		logs, err := client.Logs(ctx, name, logTailLines)
		if err != nil {
			return err
		}
		s.renderLogs(logs)
		return nil

	case "exec":
		if len(args) == 0 {
			return errors.New("usage: exec <number> <command>")
		}
		out, err := client.Exec(ctx, name, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "inspect", "info":
		out, err := client.Inspect(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "top":
		out, err := client.Top(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "attach":
		s.ios.PrintInfo("Attaching to '%s' (detach with Ctrl-P Ctrl-Q)...", name)
		attachCtx, stop := signals.SetupSignalContext(ctx)
		defer stop()
		err := client.Attach(attachCtx, s.ios.In, s.ios.Out, s.ios.ErrOut, name)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case "commit":
		if len(args) == 0 {
			return errors.New("usage: commit <number> <repository> [tag]")
		}
		ref := args[0]
		if len(args) > 1 {
			ref += ":" + args[1]
		}
		if err := client.Commit(ctx, name, ref); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' committed as '%s'", name, ref)

	case "cp":
		if len(args) < 2 {
			return errors.New("usage: cp <number> <container-path> <host-path>")
		}
		if err := client.Copy(ctx, name+":"+args[0], args[1]); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Copied '%s:%s' to '%s'", name, args[0], args[1])

	case "diff":
		out, err := client.Diff(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "export":
		if len(args) == 0 {
			return errors.New("usage: export <number> <file>")
		}
		if err := client.Export(ctx, name, args[0]); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' exported to %s", name, args[0])

	case "kill":
		signal := ""
		if len(args) > 0 {
			signal = args[0]
		}
		if err := client.Kill(ctx, name, signal); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' killed successfully", name)

	case "port":
		out, err := client.Port(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "rename":
		if len(args) == 0 {
			return errors.New("usage: rename <number> <new-name>")
		}
		if err := client.Rename(ctx, name, args[0]); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' renamed to '%s'", name, args[0])

	case "update":
		opts := engine.UpdateContainerOptions{}
		if len(args) > 0 {
			opts.Memory = args[0]
		}
		if len(args) > 1 {
			opts.CPUs = args[1]
		}
		if err := client.UpdateContainer(ctx, name, opts); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' updated successfully", name)

	case "wait":
		var status string
		err := s.ios.RunWithProgress(fmt.Sprintf("Waiting for '%s' to stop...", name), func() (err error) {
			status, err = client.WaitContainer(ctx, name)
			return err
		})
		if err != nil {
			return err
		}
		return s.ios.PrintSuccess("Container '%s' exited with status %s", name, status)
	}

	return nil
}

// knownAction reports whether name appears in the action table.
func knownAction(actions []menuAction, name string) bool {
	for _, a := range actions {
		if a.name == name {
			return true
		}
	}
	return false
}
