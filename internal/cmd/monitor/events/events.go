package events

import (
	"context"
	"errors"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/signals"
	"github.com/spf13/cobra"
)

// EventsOptions holds options for the events command.
type EventsOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)
}

// NewCmdEvents creates the monitor events command.
func NewCmdEvents(f *cmdutil.Factory, runF func(context.Context, *EventsOptions) error) *cobra.Command {
	opts := &EventsOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream engine events",
		Long: `Stream engine events to the terminal until interrupted.

Events are printed as the engine emits them. Press Ctrl+C to stop.`,
		Example: `  # Follow the event stream
  dockhand monitor events`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return eventsRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func eventsRun(ctx context.Context, opts *EventsOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	ios.PrintInfo("Monitoring Docker events (Press Ctrl+C to stop)...")

	// Interrupt cancels the stream, not the process.
	streamCtx, stop := signals.SetupSignalContext(ctx)
	defer stop()

	err = client.Events(streamCtx, ios.Out, ios.ErrOut)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
