package exec

import (
	"context"
	"fmt"
	"strings"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// ExecOptions holds options for the exec command.
type ExecOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
	Command   string
}

// NewCmdExec creates the container exec command.
func NewCmdExec(f *cmdutil.Factory, runF func(context.Context, *ExecOptions) error) *cobra.Command {
	opts := &ExecOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "exec CONTAINER COMMAND [ARG...]",
		Short: "Run a command in a running container",
		Long: `Run a command in a running container.

Everything after the container name is joined and handed to "sh -c"
inside the container, so pipes and globs expand there, not on the host.`,
		Example: `  # Run a single command
  dockhand containers exec web ls /app

  # Shell features work inside the container
  dockhand containers exec web "ps aux | grep nginx"`,
		Args: cmdutil.RequiresMinArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			opts.Command = strings.Join(args[1:], " ")
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return execRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func execRun(ctx context.Context, opts *ExecOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Exec(ctx, opts.Container, opts.Command)
	if err != nil {
		return fmt.Errorf("exec in %s: %w", opts.Container, err)
	}

	fmt.Fprint(opts.IOStreams.Out, out)
	return nil
}
