package shell

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/engine/enginetest"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/logger/loggertest"
)

const containerFixture = `{"ID":"aaa111","Names":"web","Image":"nginx:latest","Status":"Up 2 hours","Ports":"0.0.0.0:8080->80/tcp"}
{"ID":"bbb222","Names":"db","Image":"postgres:16","Status":"Exited (0) 3 hours ago","Ports":""}
{"ID":"ccc333","Names":"cache","Image":"redis:7","Status":"Up 5 minutes","Ports":"6379/tcp"}
{"ID":"ddd444","Names":"worker","Image":"app:dev","Status":"Up 10 minutes","Ports":""}
{"ID":"eee555","Names":"proxy","Image":"traefik:v3","Status":"Exited (1) 1 day ago","Ports":""}
`

const imageFixture = `{"ID":"img111","Repository":"nginx","Tag":"latest","Size":"187MB","CreatedAt":"2026-08-01 10:00:00 +0000 UTC"}
{"ID":"img222","Repository":"postgres","Tag":"16","Size":"419MB","CreatedAt":"2026-07-15 08:30:00 +0000 UTC"}
{"ID":"img333","Repository":"redis","Tag":"7","Size":"117MB","CreatedAt":"2026-06-20 12:00:00 +0000 UTC"}
`

type scriptStep struct {
	line string
	err  error
}

// scriptReader feeds canned lines to the session and records every prompt
// it was shown. An exhausted script returns io.EOF, the same way a real
// editor reports Ctrl-D.
type scriptReader struct {
	steps   []scriptStep
	prompts []string
	closed  bool
}

func script(lines ...string) *scriptReader {
	r := &scriptReader{}
	for _, l := range lines {
		r.steps = append(r.steps, scriptStep{line: l})
	}
	return r
}

func (r *scriptReader) Readline() (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.line, step.err
}

func (r *scriptReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptReader) Close() error {
	r.closed = true
	return nil
}

func newTestSession(t *testing.T, stub *enginetest.StubRunner, reader *scriptReader) (*Session, *iostreams.TestIOStreams) {
	t.Helper()

	tio := iostreams.NewTestIOStreams()
	client := engine.NewWithRunner("docker", stub)
	s := New(tio.IOStreams, func(context.Context) (*engine.Client, error) {
		return client, nil
	}, 100)
	s.newReader = func() (lineReader, error) { return reader, nil }
	return s, tio
}

func TestSessionRun_EOFEndsSession(t *testing.T) {
	reader := script()
	s, tio := newTestSession(t, enginetest.NewStubRunner(), reader)

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "Entering interactive mode. Type 'help' for available commands or 'exit' to quit.")
	require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
	require.True(t, reader.closed)
}

func TestSessionRun_ExitCommands(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		t.Run(cmd, func(t *testing.T) {
			s, tio := newTestSession(t, enginetest.NewStubRunner(), script(cmd))

			require.NoError(t, s.Run(context.Background()))
			require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
		})
	}
}

func TestSessionRun_UnknownCommand(t *testing.T) {
	s, tio := newTestSession(t, enginetest.NewStubRunner(), script("frobnicate", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "[error] Unknown command. Type 'help' for available commands.")
	require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
}

func TestSessionRun_BlankLinesIgnored(t *testing.T) {
	s, tio := newTestSession(t, enginetest.NewStubRunner(), script("", "   ", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.NotContains(t, tio.ErrBuf.String(), "Unknown command")
}

func TestSessionRun_InterruptStaysInSession(t *testing.T) {
	reader := &scriptReader{steps: []scriptStep{
		{err: readline.ErrInterrupt},
		{line: "exit"},
	}}
	s, tio := newTestSession(t, enginetest.NewStubRunner(), reader)

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "Use 'exit' to leave the session.")
	require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
}

func TestSessionRun_EditorFailure(t *testing.T) {
	s, _ := newTestSession(t, enginetest.NewStubRunner(), script())
	s.newReader = func() (lineReader, error) { return nil, errors.New("no tty") }

	err := s.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening line editor")
}

func TestSessionRun_PromptScoping(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("ps -a --format json", containerFixture)

	reader := script("containers", "back", "exit")
	s, _ := newTestSession(t, stub, reader)

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, []string{
		"dockhand> ",
		"dockhand:containers> ",
		"dockhand> ",
	}, reader.prompts)
}

func TestSessionRun_HelpListsEveryCommand(t *testing.T) {
	s, tio := newTestSession(t, enginetest.NewStubRunner(), script("help", "exit"))

	require.NoError(t, s.Run(context.Background()))
	out := tio.OutBuf.String()
	require.Contains(t, out, "Interactive Mode Commands:")
	for _, cmd := range []string{
		"containers", "images", "networks", "volumes",
		"stats", "system", "events", "dashboard", "charts",
		"help", "exit", "quit",
	} {
		require.Contains(t, out, "  "+cmd+" - ", "help should list %q", cmd)
	}
}

func TestSessionRun_LogsSessionLifecycle(t *testing.T) {
	tl := loggertest.New()
	tio := iostreams.NewTestIOStreams()
	tio.IOStreams.Logger = tl

	client := engine.NewWithRunner("docker", enginetest.NewStubRunner())
	s := New(tio.IOStreams, func(context.Context) (*engine.Client, error) {
		return client, nil
	}, 100)
	s.newReader = func() (lineReader, error) { return script("exit"), nil }

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tl.Output(), "interactive session started")
	require.Contains(t, tl.Output(), "interactive session ended")
	require.Contains(t, tl.Output(), "session_id")
}

func TestSessionRun_Networks(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("network ls --format json", `{"ID":"net111","Name":"bridge","Driver":"bridge","Scope":"local"}
{"ID":"net222","Name":"appnet","Driver":"overlay","Scope":"swarm"}
`)
	s, tio := newTestSession(t, stub, script("networks", "exit"))

	require.NoError(t, s.Run(context.Background()))
	out := tio.OutBuf.String()
	require.Contains(t, out, "Docker Networks")
	require.Contains(t, out, "bridge")
	require.Contains(t, out, "appnet")
	require.Contains(t, out, "overlay")
}

func TestSessionRun_NetworksEmpty(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("network ls --format json", "")
	s, tio := newTestSession(t, stub, script("networks", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "[info] No networks found.")
}

func TestSessionRun_Volumes(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("volume ls --format json", `{"Name":"pgdata","Driver":"local","Mountpoint":"/var/lib/docker/volumes/pgdata/_data"}
`)
	s, tio := newTestSession(t, stub, script("volumes", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.OutBuf.String(), "Docker Volumes")
	require.Contains(t, tio.OutBuf.String(), "pgdata")
}

func TestSessionRun_Stats(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("stats --no-stream --format json", `{"Name":"web","CPUPerc":"72.50%","MemUsage":"512MiB / 2GiB","MemPerc":"25.00%","NetIO":"1.2MB / 800kB","BlockIO":"0B / 0B"}
`)
	s, tio := newTestSession(t, stub, script("stats", "exit"))

	require.NoError(t, s.Run(context.Background()))
	out := tio.OutBuf.String()
	require.Contains(t, out, "Container Statistics")
	require.Contains(t, out, "web")
	require.Contains(t, out, "72.50%")
	require.Contains(t, out, "512MiB / 2GiB")
}

func TestSessionRun_StatsEmpty(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("stats --no-stream --format json", "")
	s, tio := newTestSession(t, stub, script("stats", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "[info] No running containers to show stats for.")
}

func TestSessionRun_SystemInfo(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("system info", "Containers: 3\n Running: 2\nImages: 12\nServer Version: 27.0\n")
	s, tio := newTestSession(t, stub, script("system", "exit"))

	require.NoError(t, s.Run(context.Background()))
	out := tio.OutBuf.String()
	require.Contains(t, out, "Docker System Information")
	require.Contains(t, out, "Containers:")
	require.Contains(t, out, "Server Version: 27.0")
}

func TestSessionRun_Events(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RunAttachedFn = func(_ context.Context, _ io.Reader, out, _ io.Writer, _ []string) error {
		_, _ = io.WriteString(out, "2026-08-23T10:00:00Z container start web\n")
		return nil
	}
	s, tio := newTestSession(t, stub, script("events", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "[info] Monitoring Docker events (Press Ctrl+C to stop)...")
	require.Contains(t, tio.OutBuf.String(), "─ Events ─")
	require.Contains(t, tio.OutBuf.String(), "container start web")
}

func TestSessionRun_EventsInterruptIsClean(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RunAttachedFn = func(context.Context, io.Reader, io.Writer, io.Writer, []string) error {
		return context.Canceled
	}
	s, tio := newTestSession(t, stub, script("events", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.NotContains(t, tio.ErrBuf.String(), "[error]")
	require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
}

func TestSessionRun_EngineFailureKeepsSessionAlive(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterError("network ls", "Cannot connect to the Docker daemon")
	s, tio := newTestSession(t, stub, script("networks", "exit"))

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, tio.ErrBuf.String(), "[error]")
	require.Contains(t, tio.ErrBuf.String(), "Cannot connect to the Docker daemon")
	require.Contains(t, tio.ErrBuf.String(), "Goodbye!")
}

func TestSessionRun_Charts(t *testing.T) {
	stub := enginetest.NewStubRunner()
	stub.RegisterOutput("stats --no-stream --format json", `{"Name":"web","CPUPerc":"12.00%","MemUsage":"512MiB / 2GiB","MemPerc":"25.00%","NetIO":"1.2MB / 800kB","BlockIO":"4.1MB / 0B"}
`)
	stub.RegisterOutput("ps -a --format json", containerFixture)
	stub.RegisterOutput("images --format json", imageFixture)
	s, tio := newTestSession(t, stub, script("charts", "exit"))

	require.NoError(t, s.Run(context.Background()))
	out := tio.OutBuf.String()
	require.Contains(t, out, "CPU Usage Chart")
	require.Contains(t, out, "Memory Usage Chart")
	require.Contains(t, out, "Container Status Overview")
	require.Contains(t, out, "Image Size Distribution")
}
