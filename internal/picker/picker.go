// Package picker runs an external fuzzy finder as a child process.
package picker

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"

	"fzf-nav/internal/nav"
)

// CommandPicker pipes candidates to a picker command, one per line, and
// returns whatever the command prints.
type CommandPicker struct {
	argv   []string
	stderr io.Writer
}

// New splits command with shell quoting rules. The picker's own interface
// is drawn on stderr, which is passed through to the terminal.
func New(command string) (*CommandPicker, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parsing picker command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("picker command is empty")
	}
	return &CommandPicker{argv: argv, stderr: os.Stderr}, nil
}

// Command returns the command line the picker runs.
func (p *CommandPicker) Command() string {
	return shellquote.Join(p.argv...)
}

// Pick blocks until the picker exits. A non-zero exit status is reported as
// nav.ErrCancelled.
func (p *CommandPicker) Pick(candidates []string) (string, error) {
	cmd := exec.Command(p.argv[0], p.argv[1:]...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = p.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("opening picker stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("starting picker %s: %w", p.argv[0], err)
	}

	_, writeErr := io.WriteString(stdin, strings.Join(candidates, "\n")+"\n")
	closeErr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s exited with status %d", nav.ErrCancelled, p.argv[0], exitErr.ExitCode())
		}
		return "", fmt.Errorf("waiting for picker: %w", err)
	}

	// The picker may exit before reading all of its input.
	if writeErr != nil && !errors.Is(writeErr, syscall.EPIPE) {
		return "", fmt.Errorf("writing candidates to picker: %w", writeErr)
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return "", fmt.Errorf("closing picker stdin: %w", closeErr)
	}

	return out.String(), nil
}

var _ nav.Picker = (*CommandPicker)(nil)
