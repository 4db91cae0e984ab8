package tag

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// TagOptions holds options for the tag command.
type TagOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Source string
	Target string
}

// NewCmdTag creates the image tag command.
func NewCmdTag(f *cmdutil.Factory, runF func(context.Context, *TagOptions) error) *cobra.Command {
	opts := &TagOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "tag SOURCE TARGET",
		Short: "Create a new tag for an existing image",
		Example: `  # Tag a local build for a registry
  dockhand images tag app:dev registry.example.com/app:1.4`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			opts.Target = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return tagRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func tagRun(ctx context.Context, opts *TagOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.TagImage(ctx, opts.Source, opts.Target); err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Target)
	return nil
}
