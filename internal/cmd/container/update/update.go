package update

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// UpdateOptions holds options for the update command.
type UpdateOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Memory  engine.MemBytes
	CPUs    string
	Restart string

	Containers []string
}

// NewCmdUpdate creates the container update command.
func NewCmdUpdate(f *cmdutil.Factory, runF func(context.Context, *UpdateOptions) error) *cobra.Command {
	opts := &UpdateOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "update CONTAINER [CONTAINER...]",
		Short: "Update resource limits of one or more containers",
		Long: `Update resource limits of running containers without restarting
them. At least one of --memory, --cpus, or --restart is required.`,
		Example: `  # Cap memory at 512 MiB
  dockhand containers update --memory 512m web

  # Limit CPU and change the restart policy
  dockhand containers update --cpus 1.5 --restart unless-stopped web db`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return updateRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().VarP(&opts.Memory, "memory", "m", "Memory limit (e.g. 512m, 2g)")
	cmd.Flags().StringVar(&opts.CPUs, "cpus", "", "Number of CPUs (e.g. 1.5)")
	cmd.Flags().StringVar(&opts.Restart, "restart", "", "Restart policy (no, on-failure, always, unless-stopped)")

	return cmd
}

func updateRun(ctx context.Context, opts *UpdateOptions) error {
	if opts.Memory.Value() == 0 && opts.CPUs == "" && opts.Restart == "" {
		return cmdutil.FlagErrorf("at least one of --memory, --cpus, or --restart must be set")
	}

	engineOpts := engine.UpdateContainerOptions{
		CPUs:    opts.CPUs,
		Restart: opts.Restart,
	}
	if opts.Memory.Value() != 0 {
		engineOpts.Memory = opts.Memory.String()
	}

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.UpdateContainer(ctx, name, engineOpts)
	})
}
