package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docker/go-connections/nat"

	"github.com/schmitthub/dockhand/internal/text"
)

// defaultLogTail is how many trailing log lines are fetched when the caller
// does not ask for a specific count.
const defaultLogTail = 50

// ListContainers returns every container, running or not.
func (c *Client) ListContainers(ctx context.Context, filters ...string) ([]Container, error) {
	args := []string{"ps", "-a", "--format", "json"}
	for _, f := range filters {
		args = append(args, "--filter", f)
	}
	stdout, _, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLines[Container](stdout, "list containers"), nil
}

// StartContainer starts a stopped container.
func (c *Client) StartContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "start", name)
	return err
}

// StopContainer stops a running container.
func (c *Client) StopContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "stop", name)
	return err
}

// RestartContainer restarts a container.
func (c *Client) RestartContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "restart", name)
	return err
}

// PauseContainer pauses all processes within a container.
func (c *Client) PauseContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "pause", name)
	return err
}

// UnpauseContainer resumes a paused container.
func (c *Client) UnpauseContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "unpause", name)
	return err
}

// RemoveContainer removes a stopped container.
func (c *Client) RemoveContainer(ctx context.Context, name string) error {
	_, _, err := c.runner.Run(ctx, "rm", name)
	return err
}

// Logs returns the trailing log lines of a container. A non-positive tail
// falls back to the default of 50 lines.
func (c *Client) Logs(ctx context.Context, name string, tail int) (string, error) {
	if tail <= 0 {
		tail = defaultLogTail
	}
	stdout, _, err := c.runner.Run(ctx, "logs", "--tail", strconv.Itoa(tail), name)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Exec runs a shell command inside a running container and returns its output.
// The command string is handed to `sh -c` inside the container, so pipes and
// quoting behave as they would in the container's own shell.
func (c *Client) Exec(ctx context.Context, name, command string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "exec", name, "sh", "-c", command)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Inspect returns the full JSON inspection report for a container.
func (c *Client) Inspect(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "inspect", name)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// ContainerSize reports a container's disk size in human-readable form.
func (c *Client) ContainerSize(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "ps", "-s", "--format", "json", "--filter", "name="+name)
	if err != nil {
		return "", err
	}

	rows := parseLines[containerSizeRow](stdout, "container size")
	for _, row := range rows {
		if row.Size == "" {
			continue
		}
		// The size column is raw bytes when numeric; otherwise the engine
		// already formatted it and we pass it through untouched.
		if n, err := strconv.ParseUint(row.Size, 10, 64); err == nil {
			return text.FormatSize(n), nil
		}
		return row.Size, nil
	}
	return "", errors.New("container not found or size information unavailable")
}

// CreateContainerOptions describe a detached container to create and start.
type CreateContainerOptions struct {
	Name    string
	Image   string
	Ports   []string // host:container port mappings
	Volumes []string // host:container volume mounts
	Env     []string // KEY=VALUE environment variables
}

// CreateContainer creates and starts a detached container. Name, image, and
// port mappings are validated before any subprocess runs.
func (c *Client) CreateContainer(ctx context.Context, opts CreateContainerOptions) error {
	if err := ValidateContainerName(opts.Name); err != nil {
		return err
	}
	if err := ValidateImageRef(opts.Image); err != nil {
		return err
	}
	for _, p := range opts.Ports {
		if _, err := nat.ParsePortSpec(p); err != nil {
			return fmt.Errorf("invalid port mapping %q: %w", p, err)
		}
	}

	args := []string{"run", "-d", "--name", opts.Name}
	for _, p := range opts.Ports {
		args = append(args, "-p", p)
	}
	for _, v := range opts.Volumes {
		args = append(args, "-v", v)
	}
	for _, e := range opts.Env {
		args = append(args, "-e", e)
	}
	args = append(args, opts.Image)

	_, _, err := c.runner.Run(ctx, args...)
	return err
}

// Attach attaches the given streams to a running container.
func (c *Client) Attach(ctx context.Context, in io.Reader, out, errOut io.Writer, name string) error {
	return c.runner.RunAttached(ctx, in, out, errOut, "attach", name)
}

// Commit creates an image from a container's current state.
func (c *Client) Commit(ctx context.Context, name, ref string) error {
	if err := ValidateImageRef(ref); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "commit", name, ref)
	return err
}

// Copy copies files between a container and the local filesystem. Either
// side may use the CONTAINER:PATH form.
func (c *Client) Copy(ctx context.Context, src, dst string) error {
	_, _, err := c.runner.Run(ctx, "cp", src, dst)
	return err
}

// Diff lists filesystem changes in a container since it was created.
func (c *Client) Diff(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "diff", name)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Export writes a container's filesystem to a local tar archive.
func (c *Client) Export(ctx context.Context, name, output string) error {
	_, _, err := c.runner.Run(ctx, "export", "-o", output, name)
	return err
}

// Kill sends a signal to a running container. An empty signal uses the
// engine's default (SIGKILL).
func (c *Client) Kill(ctx context.Context, name, signal string) error {
	args := []string{"kill"}
	if signal != "" {
		args = append(args, "-s", signal)
	}
	args = append(args, name)
	_, _, err := c.runner.Run(ctx, args...)
	return err
}

// Port lists a container's published port mappings.
func (c *Client) Port(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "port", name)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Rename renames a container. The new name is validated first.
func (c *Client) Rename(ctx context.Context, oldName, newName string) error {
	if err := ValidateContainerName(newName); err != nil {
		return err
	}
	_, _, err := c.runner.Run(ctx, "rename", oldName, newName)
	return err
}

// Top lists the processes running inside a container.
func (c *Client) Top(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "top", name)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// UpdateContainerOptions describe resource limit changes for a container.
// At least one field must be set.
type UpdateContainerOptions struct {
	Memory  string // memory limit, e.g. "512m"
	CPUs    string // CPU quota, e.g. "1.5"
	Restart string // restart policy, e.g. "unless-stopped"
}

// UpdateContainer changes a container's resource limits in place.
func (c *Client) UpdateContainer(ctx context.Context, name string, opts UpdateContainerOptions) error {
	if opts.Memory == "" && opts.CPUs == "" && opts.Restart == "" {
		return errors.New("update requires at least one of --memory, --cpus, or --restart")
	}
	if opts.Memory != "" {
		if err := validateMemoryLimit(opts.Memory); err != nil {
			return err
		}
	}

	args := []string{"update"}
	if opts.Memory != "" {
		args = append(args, "--memory", opts.Memory)
	}
	if opts.CPUs != "" {
		args = append(args, "--cpus", opts.CPUs)
	}
	if opts.Restart != "" {
		args = append(args, "--restart", opts.Restart)
	}
	args = append(args, name)

	_, _, err := c.runner.Run(ctx, args...)
	return err
}

// WaitContainer blocks until a container stops and returns its exit code.
func (c *Client) WaitContainer(ctx context.Context, name string) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "wait", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}

// ContainerStats returns one resource usage snapshot for every running
// container.
func (c *Client) ContainerStats(ctx context.Context) ([]Stats, error) {
	stdout, _, err := c.runner.Run(ctx, "stats", "--no-stream", "--format", "json")
	if err != nil {
		return nil, err
	}
	return parseLines[Stats](stdout, "container stats"), nil
}
