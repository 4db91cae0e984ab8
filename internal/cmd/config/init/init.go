package init

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	internalconfig "github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	IOStreams *iostreams.IOStreams

	// NewLoader returns the settings loader. Tests swap in a loader rooted
	// in a temp directory.
	NewLoader func() (*internalconfig.SettingsLoader, error)
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams: f.IOStreams,
		NewLoader: internalconfig.NewSettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Write a commented default settings file.

An existing settings file is left untouched; the command only reports
where it lives.`,
		Example: `  # Create the settings scaffold
  dockhand config init`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams

	loader, err := opts.NewLoader()
	if err != nil {
		return err
	}

	existed := loader.Exists()
	if err := loader.EnsureExists(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	if existed {
		ios.PrintInfo("Settings file already exists at %s", loader.Path())
		return nil
	}

	ios.PrintSuccess("Wrote default settings to %s", loader.Path())
	return nil
}
