package top

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

func TestTopRun(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("top web", "UID   PID   CMD\nroot  1     nginx\n")
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

	cmd := NewCmdTop(f, nil)
	cmd.SetArgs([]string{"web"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Contains(t, tio.OutBuf.String(), "nginx")

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"top", "web"}, calls[0])
}
