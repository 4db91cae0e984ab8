package imageimport

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdImport(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		output     ImportOptions
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:   "file only",
			input:  "web-backup.tar",
			output: ImportOptions{File: "web-backup.tar"},
		},
		{
			name:   "file and reference",
			input:  "web-backup.tar web:restored",
			output: ImportOptions{File: "web-backup.tar", Reference: "web:restored"},
		},
		{
			name:       "no arguments",
			input:      "",
			wantErr:    true,
			wantErrMsg: "import: 'import' requires at least 1 and at most 2 arguments",
		},
		{
			name:       "too many arguments",
			input:      "a.tar b:1 c:2",
			wantErr:    true,
			wantErrMsg: "import: 'import' requires at least 1 and at most 2 arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreams.NewTestIOStreams().IOStreams
			f := &cmdutil.Factory{
				IOStreams: ios,
				Config: func() *config.Config {
					return config.NewConfigForTest(nil)
				},
			}

			argv, err := shlex.Split(tt.input)
			require.NoError(t, err)

			var gotOpts *ImportOptions
			cmd := NewCmdImport(f, func(_ context.Context, opts *ImportOptions) error {
				gotOpts = opts
				return nil
			})
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.output.File, gotOpts.File)
			assert.Equal(t, tt.output.Reference, gotOpts.Reference)
		})
	}
}

func testFactory(t *testing.T) (*cmdutil.Factory, *enginetest.StubRunner, *iostreams.TestIOStreams) {
	t.Helper()

	tio := iostreams.NewTestIOStreams()
	stub := enginetest.NewStubRunner()
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Client: func(context.Context) (*engine.Client, error) {
			return engine.NewWithRunner("docker", stub), nil
		},
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}
	return f, stub, tio
}

func TestImportRun_FileOnly(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("import", "")

	cmd := NewCmdImport(f, nil)
	cmd.SetArgs([]string{"web-backup.tar"})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"import", "web-backup.tar"}, calls[0])
	assert.Empty(t, tio.OutBuf.String())
}

func TestImportRun_WithReference(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("import", "")

	cmd := NewCmdImport(f, nil)
	cmd.SetArgs([]string{"web-backup.tar", "web:restored"})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"import", "web-backup.tar", "web:restored"}, calls[0])
	assert.Equal(t, "web:restored\n", tio.OutBuf.String())
}
