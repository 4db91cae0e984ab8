package export

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
	Output    string
}

// NewCmdExport creates the container export command.
func NewCmdExport(f *cmdutil.Factory, runF func(context.Context, *ExportOptions) error) *cobra.Command {
	opts := &ExportOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "export CONTAINER OUTPUT",
		Short: "Export a container's filesystem as a tar archive",
		Example: `  # Export a container to a tarball
  dockhand containers export web web-backup.tar`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			opts.Output = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return exportRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func exportRun(ctx context.Context, opts *ExportOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.Export(ctx, opts.Container, opts.Output); err != nil {
		return fmt.Errorf("exporting %s: %w", opts.Container, err)
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Output)
	return nil
}
