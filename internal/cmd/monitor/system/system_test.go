package system

import (
	"context"
	"testing"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/engine/enginetest"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRun(t *testing.T) {
	const report = "Client:\n Version: 27.0.3\n\nServer:\n Containers: 4\n  Running: 2\n"

	tio := iostreams.NewTestIOStreams()
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("system info", report)
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Client: func(context.Context) (*engine.Client, error) {
			return engine.NewWithRunner("docker", stub), nil
		},
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	cmd := NewCmdSystem(f, nil)
	cmd.SetArgs([]string{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"system", "info"}, calls[0])
	assert.Equal(t, report, tio.OutBuf.String())
}

func TestSystemRun_EngineFailure(t *testing.T) {
	tio := iostreams.NewTestIOStreams()
	stub := enginetest.NewStubRunner()
	stub.RegisterError("system info", "Cannot connect to the Docker daemon")
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Client: func(context.Context) (*engine.Client, error) {
			return engine.NewWithRunner("docker", stub), nil
		},
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	cmd := NewCmdSystem(f, nil)
	cmd.SetArgs([]string{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot connect to the Docker daemon")
}
