package list

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// imageListValidFilterKeys are the filter keys the engine's images command
// accepts.
var imageListValidFilterKeys = []string{
	"dangling",
	"label",
	"before",
	"since",
	"reference",
}

// ListOptions holds options for the image list command.
type ListOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Format *cmdutil.FormatFlags
	Filter *cmdutil.FilterFlags
}

// imageRow is the display shape for one image.
type imageRow struct {
	ID         string `json:"id"`
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
	Size       string `json:"size"`
	Created    string `json:"created"`
}

// NewCmdList creates the image list command.
func NewCmdList(f *cmdutil.Factory, runF func(context.Context, *ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List images",
		Example: `  # List local images
  dockhand images list

  # Only dangling images
  dockhand images list --filter dangling=true

  # Only IDs, for scripting
  dockhand images list -q`,
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

	filters, err := opts.Filter.Parse()
	if err != nil {
		return err
	}
	if err := cmdutil.ValidateFilterKeys(filters, imageListValidFilterKeys); err != nil {
		return err
	}

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	images, err := client.ListImages(ctx, cmdutil.FilterArgs(filters)...)
	if err != nil {
		return fmt.Errorf("listing images: %w", err)
	}

	if len(images) == 0 && opts.Format.IsDefault() && !opts.Format.Quiet {
		return ios.PrintEmpty("images")
	}

	rows := make([]imageRow, len(images))
	for i, img := range images {
		rows[i] = imageRow{
			ID:         shortID(img.ID),
			Repository: img.Repository,
			Tag:        img.Tag,
			Size:       img.Size,
			Created:    img.Created,
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
		table := ios.NewTablePrinter("ID", "REPOSITORY", "TAG", "SIZE", "CREATED")
		for _, r := range rows {
			table.AddRow(r.ID, r.Repository, r.Tag, r.Size, r.Created)
		}
		return table.Render()
	}
}

// shortID trims a full image ID down to the familiar 12-character form.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
