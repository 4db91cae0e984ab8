package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/engine/enginetest"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/stretchr/testify/require"
)

func TestExportRun(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("export -o web-backup.tar web", "")
	tio := iostreams.NewTestIOStreams()
	client := engine.NewWithRunner("docker", stub)

	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Client: func(context.Context) (*engine.Client, error) {
			return client, nil
		},
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	cmd := NewCmdExport(f, nil)
	cmd.SetArgs([]string{"web", "web-backup.tar"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "web-backup.tar\n", tio.OutBuf.String())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"export", "-o", "web-backup.tar", "web"}, calls[0])
}

func TestNewCmdExport_RequiresTwoArgs(t *testing.T) {
	f := &cmdutil.Factory{}
	cmd := NewCmdExport(f, nil)

	cmd.SetArgs([]string{"web"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	require.Contains(t, err.Error(), "export: 'export' requires 2 arguments")
}
