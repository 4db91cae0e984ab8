package size

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// SizeOptions holds options for the size command.
type SizeOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdSize creates the container size command.
func NewCmdSize(f *cmdutil.Factory, runF func(context.Context, *SizeOptions) error) *cobra.Command {
	opts := &SizeOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "size CONTAINER",
		Short: "Show the disk size of a container",
		Example: `  # Show how much disk a container uses
  dockhand containers size web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return sizeRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func sizeRun(ctx context.Context, opts *SizeOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.ContainerSize(ctx, opts.Container)
	if err != nil {
		return fmt.Errorf("sizing %s: %w", opts.Container, err)
	}

	fmt.Fprintf(opts.IOStreams.Out, "%s: %s\n", opts.Container, out)
	return nil
}
