// Package acceptance provides end-to-end CLI tests using testscript.
// Every script runs against a fake `docker` shell script installed on PATH,
// so the suite exercises the full command path (cobra wiring, readiness
// probe, subprocess runner, output formatting) without a real daemon.
//
// Run with: go test ./test/cli/... -v
package acceptance

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/schmitthub/dockhand/internal/dockhand"
)

// TestMain registers the dockhand binary with testscript so scripts can
// `exec dockhand ...` against the real entry point in-process.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"dockhand": dockhand.Main,
	}))
}

// fakeDocker is a stand-in for the docker CLI. It answers exactly the
// invocations dockhand issues, reading canned line-delimited JSON from
// $FAKE_DOCKER_DIR when a script provides it. Unknown subcommands exit 0
// with no output, matching an engine that has nothing to report.
const fakeDocker = `#!/bin/sh
case "$1" in
--version)
	echo "Docker version 27.1.1, build 6312585"
	;;
info)
	exit "${FAKE_DOCKER_INFO_EXIT:-0}"
	;;
ps)
	if [ -f "$FAKE_DOCKER_DIR/ps.json" ]; then
		cat "$FAKE_DOCKER_DIR/ps.json"
	fi
	;;
images)
	if [ -f "$FAKE_DOCKER_DIR/images.json" ]; then
		cat "$FAKE_DOCKER_DIR/images.json"
	fi
	;;
network)
	if [ -f "$FAKE_DOCKER_DIR/networks.json" ]; then
		cat "$FAKE_DOCKER_DIR/networks.json"
	fi
	;;
volume)
	if [ -f "$FAKE_DOCKER_DIR/volumes.json" ]; then
		cat "$FAKE_DOCKER_DIR/volumes.json"
	fi
	;;
start|stop|restart|pause|unpause|rm)
	shift
	for name in "$@"; do
		if [ -f "$FAKE_DOCKER_DIR/fail-$name" ]; then
			echo "Error response from daemon: No such container: $name" >&2
			exit 1
		fi
		echo "$name"
	done
	;;
logs)
	if [ -f "$FAKE_DOCKER_DIR/logs.txt" ]; then
		cat "$FAKE_DOCKER_DIR/logs.txt"
	fi
	;;
*)
	;;
esac
`

// setupEnv gives each script an isolated sandbox: a private DOCKHAND_HOME,
// the fake docker first on PATH, and color forced off so assertions see
// plain text.
func setupEnv(e *testscript.Env) error {
	binDir := filepath.Join(e.WorkDir, ".bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating fake bin dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "docker"), []byte(fakeDocker), 0o755); err != nil {
		return fmt.Errorf("installing fake docker: %w", err)
	}
	e.Setenv("PATH", binDir+string(os.PathListSeparator)+e.Getenv("PATH"))

	home := filepath.Join(e.WorkDir, ".dockhand")
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("creating dockhand home: %w", err)
	}
	e.Setenv("DOCKHAND_HOME", home)

	// Scripts drop canned engine output under fake/ in their txtar archive.
	e.Setenv("FAKE_DOCKER_DIR", filepath.Join(e.WorkDir, "fake"))

	e.Setenv("NO_COLOR", "1")
	e.Setenv("CI", "1")

	return nil
}

func TestScripts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake docker is a POSIX shell script")
	}

	testscript.Run(t, testscript.Params{
		Dir:                 "testdata",
		Setup:               setupEnv,
		UpdateScripts:       os.Getenv("UPDATE_GOLDEN") == "1",
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
