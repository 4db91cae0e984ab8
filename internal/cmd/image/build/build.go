package build

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Tag  string
	Path string
}

// NewCmdBuild creates the image build command.
func NewCmdBuild(f *cmdutil.Factory, runF func(context.Context, *BuildOptions) error) *cobra.Command {
	opts := &BuildOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "build PATH",
		Short: "Build an image from a Dockerfile",
		Long: `Build an image from the Dockerfile in PATH.

The build context is the given directory and the resulting image is
tagged with --tag.`,
		Example: `  # Build the current directory
  dockhand images build --tag app:dev .

  # Build a subdirectory
  dockhand images build -t api:1.0 ./services/api`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return buildRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Name and tag for the built image")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func buildRun(ctx context.Context, opts *BuildOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	err = opts.IOStreams.RunWithProgress(fmt.Sprintf("Building %s...", opts.Tag), func() error {
		return client.BuildImage(ctx, opts.Tag, opts.Path)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Tag)
	return nil
}
