package list

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// containerListValidFilterKeys are the filter keys accepted by the engine's
// ps command that make sense here.
var containerListValidFilterKeys = []string{
	"id",
	"name",
	"label",
	"status",
	"ancestor",
	"network",
	"volume",
	"health",
	"exited",
}

// ListOptions holds options for the container list command.
type ListOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Format *cmdutil.FormatFlags
	Filter *cmdutil.FilterFlags
}

// containerRow is the display shape for one container.
type containerRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
	Ports  string `json:"ports"`
}

// NewCmdList creates the container list command.
func NewCmdList(f *cmdutil.Factory, runF func(context.Context, *ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List containers",
		Long: `List all containers, including stopped ones.

Filters narrow the listing before it leaves the engine, so they accept
exactly what "docker ps --filter" accepts for the supported keys.`,
		Example: `  # List all containers
  dockhand containers list

  # Only running containers
  dockhand containers list --filter status=running

  # Only IDs, for scripting
  dockhand containers list -q

  # Structured output
  dockhand containers list --json
  dockhand containers list --format '{{.Name}}: {{.Status}}'`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return listRun(cmd.Context(), opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)
	opts.Filter = cmdutil.AddFilterFlags(cmd)

	return cmd
}

func listRun(ctx context.Context, opts *ListOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	filters, err := opts.Filter.Parse()
	if err != nil {
		return err
	}
	if err := cmdutil.ValidateFilterKeys(filters, containerListValidFilterKeys); err != nil {
		return err
	}

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	containers, err := client.ListContainers(ctx, cmdutil.FilterArgs(filters)...)
	if err != nil {
		return fmt.Errorf("listing containers: %w", err)
	}

	if len(containers) == 0 && opts.Format.IsDefault() && !opts.Format.Quiet {
		return ios.PrintEmpty("containers")
	}

	rows := make([]containerRow, len(containers))
	for i, c := range containers {
		rows[i] = containerRow{
			ID:     shortID(c.ID),
			Name:   c.Name,
			Image:  c.Image,
			Status: c.Status,
			Ports:  c.Ports,
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
		table := ios.NewTablePrinter("ID", "NAME", "IMAGE", "STATUS", "PORTS")
		for i, r := range rows {
			status := r.Status
			if containers[i].IsRunning() {
				status = cs.Green(status)
			} else {
				status = cs.Red(status)
			}
			table.AddRow(r.ID, r.Name, r.Image, status, r.Ports)
		}
		return table.Render()
	}
}

// shortID trims a full container ID down to the familiar 12-character form.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
