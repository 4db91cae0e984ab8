package push

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// PushOptions holds options for the push command.
type PushOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Reference string
}

// NewCmdPush creates the image push command.
func NewCmdPush(f *cmdutil.Factory, runF func(context.Context, *PushOptions) error) *cobra.Command {
	opts := &PushOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "push IMAGE",
		Short: "Push an image to a registry",
		Example: `  # Push a tagged image
  dockhand images push registry.example.com/app:1.4`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Reference = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pushRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pushRun(ctx context.Context, opts *PushOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	err = opts.IOStreams.RunWithProgress(fmt.Sprintf("Pushing %s...", opts.Reference), func() error {
		return client.PushImage(ctx, opts.Reference)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Reference)
	return nil
}
