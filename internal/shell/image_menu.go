package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/schmitthub/dockhand/internal/engine"
)

var imageMenuActions = []menuAction{
	{"remove", "remove <number>", "Remove image"},
	{"tag", "tag <number> <new-tag>", "Tag image"},
	{"push", "push <number>", "Push image"},
	{"history", "history <number>", "Show history"},
	{"save", "save <number> <file>", "Save image"},
}

// imageMenu is the image counterpart of containerMenu: same stale-snapshot
// loop, smaller action table.
func (s *Session) imageMenu(ctx context.Context, reader lineReader) error {
	client, err := s.client(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	snapshot, err := client.ListImages(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(snapshot) == 0 {
		s.ios.PrintInfo("No images found.")
		return nil
	}
	s.renderImageMenu(snapshot)

	for {
		reader.SetPrompt(s.prompt("images"))
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
		if fields[0] == "images" {
			fields = fields[1:]
			if len(fields) == 0 {
				s.renderImageMenu(snapshot)
				continue
			}
		}

		switch fields[0] {
		case "back":
			return nil
		case "exit", "quit":
			return errExit
		}

		s.report(s.imageAction(ctx, reader, client, snapshot, fields))
	}
}

// imageAction resolves and runs one action line against the snapshot.
// Selections name images by their repository:tag reference.
func (s *Session) imageAction(ctx context.Context, reader lineReader, client *engine.Client, snapshot []engine.Image, fields []string) error {
	action := fields[0]
	if !knownAction(imageMenuActions, action) {
		return fmt.Errorf("unknown action %q: type 'back' for the main menu", action)
	}
	if len(fields) < 2 {
		return fmt.Errorf("usage: %s <number>", action)
	}
	target, err := pick(snapshot, fields[1])
	if err != nil {
		return err
	}
	ref := target.Reference()
	args := fields[2:]

	switch action {
	case "remove":
		if !s.confirm(reader, "Are you sure you want to remove image '%s'?", ref) {
			return nil
		}
		if err := client.RemoveImage(ctx, ref); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Image '%s' removed successfully", ref)

	case "tag":
		if len(args) == 0 {
			return errors.New("usage: tag <number> <new-tag>")
		}
		if err := client.TagImage(ctx, ref, args[0]); err != nil {
			return err
		}
		return s.ios.PrintSuccess("Image '%s' tagged as '%s'", ref, args[0])

	case "push":
		err := s.ios.RunWithProgress(fmt.Sprintf("Pushing %s...", ref), func() error {
			return client.PushImage(ctx, ref)
		})
		if err != nil {
			return err
		}
		return s.ios.PrintSuccess("Image '%s' pushed successfully", ref)

	case "history":
		out, err := client.ImageHistory(ctx, ref)
		if err != nil {
			return err
		}
		fmt.Fprint(s.ios.Out, out)
		return nil

	case "save":
		if len(args) == 0 {
			return errors.New("usage: save <number> <file>")
		}
		err := s.ios.RunWithProgress(fmt.Sprintf("Saving %s...", ref), func() error {
			return client.SaveImage(ctx, ref, args[0])
		})
		if err != nil {
			return err
		}
		return s.ios.PrintSuccess("Image '%s' saved to %s", ref, args[0])
	}

	return nil
}
