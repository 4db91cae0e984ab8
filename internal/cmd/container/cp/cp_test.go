package cp

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

func TestCpRun(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("cp web:/etc/nginx.conf ./nginx.conf", "")
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

	cmd := NewCmdCp(f, nil)
	cmd.SetArgs([]string{"web:/etc/nginx.conf", "./nginx.conf"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "web:/etc/nginx.conf -> ./nginx.conf\n", tio.OutBuf.String())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"cp", "web:/etc/nginx.conf", "./nginx.conf"}, calls[0])
}

func TestNewCmdCp_RequiresTwoArgs(t *testing.T) {
	f := &cmdutil.Factory{}
	cmd := NewCmdCp(f, nil)

	cmd.SetArgs([]string{"only-one"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cp: 'cp' requires 2 arguments")
}
