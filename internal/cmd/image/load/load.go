package load

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// LoadOptions holds options for the load command.
type LoadOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	File string
}

// NewCmdLoad creates the image load command.
func NewCmdLoad(f *cmdutil.Factory, runF func(context.Context, *LoadOptions) error) *cobra.Command {
	opts := &LoadOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load images from a tar archive",
		Long: `Load images from a tar archive produced by images save. Tags and
layers are restored as they were at save time.`,
		Example: `  # Restore a saved image
  dockhand images load nginx.tar`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return loadRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func loadRun(ctx context.Context, opts *LoadOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	err = opts.IOStreams.RunWithProgress(fmt.Sprintf("Loading %s...", opts.File), func() error {
		return client.LoadImage(ctx, opts.File)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.File)
	return nil
}
