package remove

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/shlex"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/engine/enginetest"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRemove(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		args       []string
		output     RemoveOptions
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:   "single container",
			args:   []string{"web"},
			output: RemoveOptions{Containers: []string{"web"}},
		},
		{
			name:   "force flag",
			input:  "--force",
			args:   []string{"web"},
			output: RemoveOptions{Force: true, Containers: []string{"web"}},
		},
		{
			name:   "force shorthand",
			input:  "-f",
			args:   []string{"web", "db"},
			output: RemoveOptions{Force: true, Containers: []string{"web", "db"}},
		},
		{
			name:       "no container specified",
			args:       []string{},
			wantErr:    true,
			wantErrMsg: "remove: 'remove' requires at least 1 argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{
				Config: func() *config.Config {
					return config.NewConfigForTest(nil)
				},
			}

			var gotOpts *RemoveOptions
			cmd := NewCmdRemove(f, func(_ context.Context, opts *RemoveOptions) error {
				gotOpts = opts
				return nil
			})

			argv := tt.args
			if tt.input != "" {
				parsed, err := shlex.Split(tt.input)
				require.NoError(t, err)
				argv = append(parsed, tt.args...)
			}

			cmd.SetArgs(argv)
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
			require.Equal(t, tt.output.Force, gotOpts.Force)
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

func TestRemoveRun_NonInteractiveSkipsPrompt(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("rm web", "web\n")
	f, tio := testFactory(t, stub)

	cmd := NewCmdRemove(f, nil)
	cmd.SetArgs([]string{"web"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "web\n", tio.OutBuf.String())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"rm", "web"}, calls[0])
}

func TestRemoveRun_PromptDeclined(t *testing.T) {
	stub := enginetest.NewStubRunner()
	f, tio := testFactory(t, stub)
	tio.SetStdinTTY(true)
	tio.SetStdoutTTY(true)
	tio.InBuf.SetInput("n\n")

	cmd := NewCmdRemove(f, nil)
	cmd.SetArgs([]string{"web"})
	cmd.SetIn(tio.InBuf)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Contains(t, tio.OutBuf.String(), "Are you sure you want to remove container 'web'? (y/N):")
	require.Empty(t, stub.Calls(), "declined prompt must not reach the engine")
}

func TestRemoveRun_PromptAccepted(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("rm web", "web\n")
	f, tio := testFactory(t, stub)
	tio.SetStdinTTY(true)
	tio.SetStdoutTTY(true)
	tio.InBuf.SetInput("y\n")

	cmd := NewCmdRemove(f, nil)
	cmd.SetArgs([]string{"web"})
	cmd.SetIn(tio.InBuf)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Contains(t, tio.OutBuf.String(), "web\n")

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"rm", "web"}, calls[0])
}

func TestRemoveRun_ForceSkipsPromptOnTTY(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("rm web", "web\n")
	f, tio := testFactory(t, stub)
	tio.SetStdinTTY(true)
	tio.SetStdoutTTY(true)

	cmd := NewCmdRemove(f, nil)
	cmd.SetArgs([]string{"--force", "web"})
	cmd.SetIn(tio.InBuf)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.NotContains(t, tio.OutBuf.String(), "Are you sure")
	require.Len(t, stub.Calls(), 1)
}

func TestRemoveRun_EngineFailure(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterError("rm web", "Error response from daemon: you cannot remove a running container")
	f, tio := testFactory(t, stub)

	cmd := NewCmdRemove(f, nil)
	cmd.SetArgs([]string{"web"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	err := cmd.Execute()
	require.ErrorIs(t, err, cmdutil.SilentError)
	require.Contains(t, tio.ErrBuf.String(), "you cannot remove a running container")
}
