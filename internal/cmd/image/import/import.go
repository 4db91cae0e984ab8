// Package imageimport implements the image import command. The directory is
// named "import" to match the verb; the package name differs because import
// is a Go keyword.
package imageimport

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// ImportOptions holds options for the import command.
type ImportOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	File      string
	Reference string
}

// NewCmdImport creates the image import command.
func NewCmdImport(f *cmdutil.Factory, runF func(context.Context, *ImportOptions) error) *cobra.Command {
	opts := &ImportOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "import FILE [IMAGE]",
		Short: "Create an image from a filesystem tarball",
		Long: `Create an image from a filesystem tarball, such as one produced by
containers export. The optional IMAGE argument names the result.`,
		Example: `  # Import a tarball as an unnamed image
  dockhand images import web-backup.tar

  # Import and name the result
  dockhand images import web-backup.tar web:restored`,
		Args: cmdutil.RequiresRangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			if len(args) > 1 {
				opts.Reference = args[1]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return importRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func importRun(ctx context.Context, opts *ImportOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.ImportImage(ctx, opts.File, opts.Reference); err != nil {
		return err
	}

	if opts.Reference != "" {
		fmt.Fprintln(opts.IOStreams.Out, opts.Reference)
	}
	return nil
}
