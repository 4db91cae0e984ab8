package wait

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// WaitOptions holds options for the wait command.
type WaitOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdWait creates the container wait command.
func NewCmdWait(f *cmdutil.Factory, runF func(context.Context, *WaitOptions) error) *cobra.Command {
	opts := &WaitOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "wait CONTAINER [CONTAINER...]",
		Short: "Block until containers stop, then print their exit codes",
		Example: `  # Wait for a container to finish
  dockhand containers wait batch-job`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return waitRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func waitRun(ctx context.Context, opts *WaitOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	var failed bool
	for _, name := range opts.Containers {
		code, err := client.WaitContainer(ctx, name)
		if err != nil {
			failed = true
			fmt.Fprintf(ios.ErrOut, "%s %s: %v\n", cs.FailureIcon(), name, err)
			continue
		}
		fmt.Fprintln(ios.Out, code)
	}

	if failed {
		return cmdutil.SilentError
	}
	return nil
}
