package engine

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/coreos/go-systemd/v22/dbus"
)

// StartStrategy is one way of bringing the engine daemon up. Strategies are
// tried in order; the first one to report success wins and the prober moves
// on to polling.
type StartStrategy struct {
	Name string
	Run  func(ctx context.Context) error
}

// platformStrategies returns this platform's daemon start strategies in
// preference order: service manager, then service command, then direct
// daemon invocation as last resort.
func platformStrategies(binary string) []StartStrategy {
	switch runtime.GOOS {
	case "linux":
		return []StartStrategy{
			systemdStrategy(binary),
			serviceCommandStrategy(binary),
			daemonStrategy(binary),
		}
	case "darwin":
		return []StartStrategy{
			openAppStrategy("Docker"),
			openAppStrategy("Docker Desktop"),
			daemonStrategy(binary),
		}
	default:
		return []StartStrategy{
			serviceCommandStrategy(binary),
			daemonStrategy(binary),
		}
	}
}

// systemdStrategy asks systemd over D-Bus to start the engine's unit.
func systemdStrategy(binary string) StartStrategy {
	unit := binary + ".service"
	return StartStrategy{
		Name: "systemd",
		Run: func(ctx context.Context) error {
			conn, err := dbus.NewSystemConnectionContext(ctx)
			if err != nil {
				return fmt.Errorf("connecting to systemd: %w", err)
			}
			defer conn.Close()

			done := make(chan string, 1)
			if _, err := conn.StartUnitContext(ctx, unit, "replace", done); err != nil {
				return fmt.Errorf("starting unit %s: %w", unit, err)
			}
			select {
			case result := <-done:
				if result != "done" {
					return fmt.Errorf("unit %s start finished as %q", unit, result)
				}
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}

// serviceCommandStrategy shells out to the classic service(8) wrapper.
func serviceCommandStrategy(binary string) StartStrategy {
	return StartStrategy{
		Name: "service command",
		Run: func(ctx context.Context) error {
			if err := exec.CommandContext(ctx, "service", binary, "start").Run(); err != nil {
				return fmt.Errorf("service %s start: %w", binary, err)
			}
			return nil
		},
	}
}

// openAppStrategy launches a macOS app bundle, used for Docker Desktop.
func openAppStrategy(app string) StartStrategy {
	return StartStrategy{
		Name: "open " + app,
		Run: func(ctx context.Context) error {
			if err := exec.CommandContext(ctx, "open", "-a", app).Run(); err != nil {
				return fmt.Errorf("open -a %s: %w", app, err)
			}
			return nil
		},
	}
}

// daemonStrategy spawns the engine daemon directly, detached from our
// session so it survives us.
func daemonStrategy(binary string) StartStrategy {
	daemon := daemonBinary(binary)
	return StartStrategy{
		Name: daemon,
		Run: func(_ context.Context) error {
			if _, err := exec.LookPath(daemon); err != nil {
				return fmt.Errorf("%s not found: %w", daemon, err)
			}
			// Plain Command, not CommandContext: the daemon must outlive
			// this process.
			cmd := exec.Command(daemon)
			cmd.SysProcAttr = &syscall.SysProcAttr{
				Setsid: true, // Detach from parent session
			}
			if err := cmd.Start(); err != nil {
				return fmt.Errorf("starting %s: %w", daemon, err)
			}
			// Release the child process so it can run independently
			return cmd.Process.Release()
		},
	}
}

func daemonBinary(binary string) string {
	if binary == defaultBinary {
		return "dockerd"
	}
	return binary + "d"
}
