package commit

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

func TestNewCmdCommit(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		output     CommitOptions
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:   "container and reference",
			args:   []string{"web", "myapp:snapshot"},
			output: CommitOptions{Container: "web", Reference: "myapp:snapshot"},
		},
		{
			name:       "missing reference",
			args:       []string{"web"},
			wantErr:    true,
			wantErrMsg: "commit: 'commit' requires 2 arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{
				Config: func() *config.Config {
					return config.NewConfigForTest(nil)
				},
			}

			var gotOpts *CommitOptions
			cmd := NewCmdCommit(f, func(_ context.Context, opts *CommitOptions) error {
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
			require.Equal(t, tt.output.Container, gotOpts.Container)
			require.Equal(t, tt.output.Reference, gotOpts.Reference)
		})
	}
}

func TestCommitRun(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("commit web myapp:snapshot", "sha256:deadbeef\n")
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

	cmd := NewCmdCommit(f, nil)
	cmd.SetArgs([]string{"web", "myapp:snapshot"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "myapp:snapshot\n", tio.OutBuf.String())

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"commit", "web", "myapp:snapshot"}, calls[0])
}

func TestCommitRun_InvalidReference(t *testing.T) {
	stub := enginetest.NewStubRunner()
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

	cmd := NewCmdCommit(f, nil)
	cmd.SetArgs([]string{"web", "not a ref!"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	err := cmd.Execute()
	require.Error(t, err)
	require.Empty(t, stub.Calls(), "invalid reference must not reach the engine")
}
