package load

import (
	"bytes"
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

func TestNewCmdLoad(t *testing.T) {
	ios := iostreams.NewTestIOStreams().IOStreams
	f := &cmdutil.Factory{
		IOStreams: ios,
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	var gotOpts *LoadOptions
	cmd := NewCmdLoad(f, func(_ context.Context, opts *LoadOptions) error {
		gotOpts = opts
		return nil
	})
	cmd.SetArgs([]string{"nginx.tar"})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t, "nginx.tar", gotOpts.File)
}

func TestNewCmdLoad_RequiresFile(t *testing.T) {
	ios := iostreams.NewTestIOStreams().IOStreams
	f := &cmdutil.Factory{
		IOStreams: ios,
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	cmd := NewCmdLoad(f, func(_ context.Context, opts *LoadOptions) error {
		return nil
	})
	cmd.SetArgs([]string{})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load: 'load' requires 1 argument")
}

func TestLoadRun(t *testing.T) {
	tio := iostreams.NewTestIOStreams()
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("load", "")
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Client: func(context.Context) (*engine.Client, error) {
			return engine.NewWithRunner("docker", stub), nil
		},
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	cmd := NewCmdLoad(f, nil)
	cmd.SetArgs([]string{"nginx.tar"})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"load", "-i", "nginx.tar"}, calls[0])
	assert.Equal(t, "nginx.tar\n", tio.OutBuf.String())
}
