package history

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Reference string
}

// NewCmdHistory creates the image history command.
func NewCmdHistory(f *cmdutil.Factory, runF func(context.Context, *HistoryOptions) error) *cobra.Command {
	opts := &HistoryOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "history IMAGE",
		Short: "Show the layer history of an image",
		Example: `  # Show how an image was built
  dockhand images history nginx:latest`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Reference = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return historyRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func historyRun(ctx context.Context, opts *HistoryOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.ImageHistory(ctx, opts.Reference)
	if err != nil {
		return err
	}

	fmt.Fprint(opts.IOStreams.Out, out)
	return nil
}
