package port

import (
	"context"
	"fmt"
	"strings"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// PortOptions holds options for the port command.
type PortOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdPort creates the container port command.
func NewCmdPort(f *cmdutil.Factory, runF func(context.Context, *PortOptions) error) *cobra.Command {
	opts := &PortOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "port CONTAINER",
		Short: "List port mappings for a container",
		Example: `  # Show published ports
  dockhand containers port web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return portRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func portRun(ctx context.Context, opts *PortOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Port(ctx, opts.Container)
	if err != nil {
		return fmt.Errorf("listing ports for %s: %w", opts.Container, err)
	}

	if strings.TrimSpace(out) == "" {
		return ios.PrintInfo("Container '%s' has no published ports", opts.Container)
	}

	fmt.Fprint(ios.Out, out)
	return nil
}
