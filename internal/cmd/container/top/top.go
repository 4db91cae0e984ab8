package top

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// TopOptions holds options for the top command.
type TopOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdTop creates the container top command.
func NewCmdTop(f *cmdutil.Factory, runF func(context.Context, *TopOptions) error) *cobra.Command {
	opts := &TopOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "top CONTAINER",
		Short: "Display the running processes of a container",
		Example: `  # Show processes inside a container
  dockhand containers top web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return topRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func topRun(ctx context.Context, opts *TopOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Top(ctx, opts.Container)
	if err != nil {
		return fmt.Errorf("listing processes in %s: %w", opts.Container, err)
	}

	fmt.Fprint(opts.IOStreams.Out, out)
	return nil
}
