package start

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

func TestNewCmdStart(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		output     StartOptions
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:   "single container",
			args:   []string{"web"},
			output: StartOptions{Containers: []string{"web"}},
		},
		{
			name:   "multiple containers",
			args:   []string{"web", "db"},
			output: StartOptions{Containers: []string{"web", "db"}},
		},
		{
			name:       "no container specified",
			args:       []string{},
			wantErr:    true,
			wantErrMsg: "start: 'start' requires at least 1 argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{
				Config: func() *config.Config {
					return config.NewConfigForTest(nil)
				},
			}

			var gotOpts *StartOptions
			cmd := NewCmdStart(f, func(_ context.Context, opts *StartOptions) error {
				gotOpts = opts
				return nil
			})

			cmd.SetArgs(tt.args)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err := cmd.ExecuteC()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			require.Equal(t, tt.output.Containers, gotOpts.Containers)
		})
	}
}

func testFactory(t *testing.T, stub *enginetest.StubRunner) (*cmdutil.Factory, *iostreams.TestIOStreams) {
	t.Helper()

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
	return f, tio
}

func TestStartRun(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("start web", "web\n")
	stub.RegisterOutput("start db", "db\n")
	f, tio := testFactory(t, stub)

	cmd := NewCmdStart(f, nil)
	cmd.SetArgs([]string{"web", "db"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "web\ndb\n", tio.OutBuf.String())
	require.Empty(t, tio.ErrBuf.String())
}

func TestStartRun_PartialFailure(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("start web", "web\n")
	stub.RegisterError("start missing", "Error response from daemon: No such container: missing")
	f, tio := testFactory(t, stub)

	cmd := NewCmdStart(f, nil)
	cmd.SetArgs([]string{"web", "missing"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	err := cmd.Execute()
	require.ErrorIs(t, err, cmdutil.SilentError)
	require.Equal(t, "web\n", tio.OutBuf.String())
	require.Contains(t, tio.ErrBuf.String(), "missing: ")
	require.Contains(t, tio.ErrBuf.String(), "No such container: missing")
}
