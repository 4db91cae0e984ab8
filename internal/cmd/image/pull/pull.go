package pull

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// PullOptions holds options for the pull command.
type PullOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Reference string
}

// NewCmdPull creates the image pull command.
func NewCmdPull(f *cmdutil.Factory, runF func(context.Context, *PullOptions) error) *cobra.Command {
	opts := &PullOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "pull IMAGE",
		Short: "Pull an image from a registry",
		Example: `  # Pull the latest tag
  dockhand images pull nginx

  # Pull a specific tag
  dockhand images pull postgres:16`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Reference = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pullRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pullRun(ctx context.Context, opts *PullOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	err = opts.IOStreams.RunWithProgress(fmt.Sprintf("Pulling %s...", opts.Reference), func() error {
		return client.PullImage(ctx, opts.Reference)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Reference)
	return nil
}
