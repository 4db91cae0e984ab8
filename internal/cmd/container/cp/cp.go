package cp

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// CpOptions holds options for the cp command.
type CpOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Source string
	Dest   string
}

// NewCmdCp creates the container cp command.
func NewCmdCp(f *cmdutil.Factory, runF func(context.Context, *CpOptions) error) *cobra.Command {
	opts := &CpOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "cp SRC_PATH DEST_PATH",
		Short: "Copy files between a container and the local filesystem",
		Long: `Copy files or directories between a container and the local
filesystem. Either side may use the CONTAINER:PATH form.`,
		Example: `  # Copy out of a container
  dockhand containers cp web:/etc/nginx/nginx.conf ./nginx.conf

  # Copy into a container
  dockhand containers cp ./app.tar web:/tmp/app.tar`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			opts.Dest = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return cpRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func cpRun(ctx context.Context, opts *CpOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.Copy(ctx, opts.Source, opts.Dest); err != nil {
		return fmt.Errorf("copying %s to %s: %w", opts.Source, opts.Dest, err)
	}

	fmt.Fprintf(opts.IOStreams.Out, "%s -> %s\n", opts.Source, opts.Dest)
	return nil
}
