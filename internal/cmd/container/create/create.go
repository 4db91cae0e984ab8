package create

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// CreateOptions holds options for the create command.
type CreateOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Name    string
	Ports   []string
	Volumes []string
	Env     []string

	Image string
}

// NewCmdCreate creates the container create command.
func NewCmdCreate(f *cmdutil.Factory, runF func(context.Context, *CreateOptions) error) *cobra.Command {
	opts := &CreateOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "create IMAGE",
		Short: "Create and start a detached container from an image",
		Long: `Create a named container from an image and start it detached.

Port mappings are validated locally before anything reaches the engine,
so a typo fails fast instead of leaving a half-created container.`,
		Example: `  # Run nginx with a published port
  dockhand containers create --name web -p 8080:80 nginx:latest

  # Mount a volume and set environment variables
  dockhand containers create --name db \
    -v pgdata:/var/lib/postgresql/data \
    -e POSTGRES_PASSWORD=secret \
    postgres:16`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Image = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return createRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Name for the new container (required)")
	cmd.Flags().StringArrayVarP(&opts.Ports, "publish", "p", nil, "Publish a container port (host:container)")
	cmd.Flags().StringArrayVarP(&opts.Volumes, "volume", "v", nil, "Mount a volume (host:container)")
	cmd.Flags().StringArrayVarP(&opts.Env, "env", "e", nil, "Set an environment variable (KEY=VALUE)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func createRun(ctx context.Context, opts *CreateOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	createOpts := engine.CreateContainerOptions{
		Name:    opts.Name,
		Image:   opts.Image,
		Ports:   opts.Ports,
		Volumes: opts.Volumes,
		Env:     opts.Env,
	}
	if err := client.CreateContainer(ctx, createOpts); err != nil {
		return fmt.Errorf("creating container %s: %w", opts.Name, err)
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Name)
	return nil
}
