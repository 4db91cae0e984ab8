package list

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// ListOptions holds options for the network list command.
type ListOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Format *cmdutil.FormatFlags
}

// networkRow is the display shape for one network.
type networkRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Driver string `json:"driver"`
	Scope  string `json:"scope"`
}

// NewCmdList creates the network list command.
func NewCmdList(f *cmdutil.Factory, runF func(context.Context, *ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List networks",
		Example: `  # List networks
  dockhand networks list

  # Only IDs, for scripting
  dockhand networks list -q`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return listRun(cmd.Context(), opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

func listRun(ctx context.Context, opts *ListOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	networks, err := client.ListNetworks(ctx)
	if err != nil {
		return fmt.Errorf("listing networks: %w", err)
	}

	if len(networks) == 0 && opts.Format.IsDefault() && !opts.Format.Quiet {
		return ios.PrintEmpty("networks")
	}

	rows := make([]networkRow, len(networks))
	for i, n := range networks {
		rows[i] = networkRow{
			ID:     n.ID,
			Name:   n.Name,
			Driver: n.Driver,
			Scope:  n.Scope,
		}
	}

	switch {
	case opts.Format.Quiet:
		for _, r := range rows {
			fmt.Fprintln(ios.Out, r.ID)
		}
		return nil
	case opts.Format.IsJSON():
		return cmdutil.WriteJSON(ios.Out, rows)
	case opts.Format.IsTemplate():
		return cmdutil.ExecuteTemplate(ios.Out, opts.Format.Template(), cmdutil.ToAny(rows))
	default:
		table := ios.NewTablePrinter("ID", "NAME", "DRIVER", "SCOPE")
		for _, r := range rows {
			table.AddRow(r.ID, r.Name, r.Driver, r.Scope)
		}
		return table.Render()
	}
}
