package save

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// SaveOptions holds options for the save command.
type SaveOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Reference string
	Output    string
}

// NewCmdSave creates the image save command.
func NewCmdSave(f *cmdutil.Factory, runF func(context.Context, *SaveOptions) error) *cobra.Command {
	opts := &SaveOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "save IMAGE OUTPUT",
		Short: "Save an image with all its layers to a tar archive",
		Example: `  # Archive an image for transfer
  dockhand images save nginx:latest nginx.tar`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Reference = args[0]
			opts.Output = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return saveRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func saveRun(ctx context.Context, opts *SaveOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	err = opts.IOStreams.RunWithProgress(fmt.Sprintf("Saving %s...", opts.Reference), func() error {
		return client.SaveImage(ctx, opts.Reference, opts.Output)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Output)
	return nil
}
