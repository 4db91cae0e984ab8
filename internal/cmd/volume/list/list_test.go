package list

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

const volumesJSON = `{"Name":"pgdata","Driver":"local","Mountpoint":"/var/lib/docker/volumes/pgdata/_data"}
{"Name":"app_cache","Driver":"local","Mountpoint":"/var/lib/docker/volumes/app_cache/_data"}
`

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

func TestListRun_Table(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("volume ls", volumesJSON)

	cmd := NewCmdList(f, nil)
	cmd.SetArgs([]string{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"volume", "ls", "--format", "json"}, calls[0])

	out := tio.OutBuf.String()
	assert.Contains(t, out, "MOUNTPOINT")
	assert.Contains(t, out, "pgdata")
	assert.Contains(t, out, "/var/lib/docker/volumes/app_cache/_data")
}

func TestListRun_Quiet(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("volume ls", volumesJSON)

	cmd := NewCmdList(f, nil)
	cmd.SetArgs([]string{"-q"})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t, "pgdata\napp_cache\n", tio.OutBuf.String())
}

func TestListRun_JSON(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("volume ls", volumesJSON)

	cmd := NewCmdList(f, nil)
	cmd.SetArgs([]string{"--json"})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Contains(t, tio.OutBuf.String(), `"name": "pgdata"`)
	assert.Contains(t, tio.OutBuf.String(), `"driver": "local"`)
}

func TestListRun_Empty(t *testing.T) {
	f, stub, tio := testFactory(t)
	stub.RegisterOutput("volume ls", "")

	cmd := NewCmdList(f, nil)
	cmd.SetArgs([]string{})
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)

	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Contains(t, tio.ErrBuf.String(), "No volumes found.")
}
