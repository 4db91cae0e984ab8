package iostreams

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// getPagerCommand returns the pager command to use.
// Order of precedence: DOCKHAND_PAGER > PAGER > platform default
func getPagerCommand() string {
	if pager := os.Getenv("DOCKHAND_PAGER"); pager != "" {
		return pager
	}

	if pager := os.Getenv("PAGER"); pager != "" {
		return pager
	}

	if runtime.GOOS == "windows" {
		return "more"
	}
	return "less -R"
}

// SetPager sets the pager command to use for output.
// If empty, paging is disabled.
func (s *IOStreams) SetPager(cmd string) {
	s.pagerCommand = cmd
}

// GetPager returns the configured pager command.
// Returns the effective pager (from env vars if not explicitly set).
func (s *IOStreams) GetPager() string {
	if s.pagerCommand != "" {
		return s.pagerCommand
	}
	return getPagerCommand()
}

// StartPager starts piping stdout through a pager.
// If stdout is not a TTY, this is a no-op.
func (s *IOStreams) StartPager() error {
	if !s.IsOutputTTY() {
		return nil
	}

	pagerCmd := s.GetPager()
	if pagerCmd == "" {
		return nil
	}

	pw, err := newPagerWriter(pagerCmd, s.Out)
	if err != nil {
		return err
	}
	if pw == nil {
		return nil
	}

	s.origOut = s.Out
	s.pagerWriter = pw
	s.Out = pw

	return nil
}

// StopPager stops the pager and restores the original stdout.
func (s *IOStreams) StopPager() {
	if s.pagerWriter == nil {
		return
	}

	if err := s.pagerWriter.Close(); err != nil {
		// Ignore "broken pipe", expected when the user quits the pager early.
		if !strings.Contains(err.Error(), "broken pipe") {
			s.Logger.Debug().Err(err).Msg("pager close error")
		}
	}
	s.Out = s.origOut
	s.pagerWriter = nil
	s.origOut = nil
}

// pagerWriter manages piping output to a pager process.
type pagerWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	origW  io.Writer
	active bool
}

// newPagerWriter creates a pager that pipes output to the given command.
// The command string is split on spaces for arguments.
func newPagerWriter(pagerCmd string, origWriter io.Writer) (*pagerWriter, error) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		return nil, nil
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = origWriter
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, err
	}

	return &pagerWriter{
		cmd:    cmd,
		stdin:  stdin,
		origW:  origWriter,
		active: true,
	}, nil
}

// Write implements io.Writer.
func (p *pagerWriter) Write(data []byte) (int, error) {
	if !p.active {
		return p.origW.Write(data)
	}
	return p.stdin.Write(data)
}

// Close closes the pager stdin and waits for the process to finish.
func (p *pagerWriter) Close() error {
	if !p.active {
		return nil
	}
	p.active = false

	if err := p.stdin.Close(); err != nil {
		return err
	}
	return p.cmd.Wait()
}
