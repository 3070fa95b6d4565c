package launch

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Status is how a subprocess terminated. Exited is false when no exit code
// could be retrieved.
type Status struct {
	Exited bool
	Code   int
}

func (s Status) Success() bool {
	return s.Exited && s.Code == 0
}

// Runner runs one subprocess to completion.
type Runner interface {
	Run(name string, args ...string) (Status, error)
}

// ExecRunner runs subprocesses with os/exec, connected to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the process's own stdio.
func NewExecRunner() ExecRunner {
	return ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r ExecRunner) Run(name string, args ...string) (Status, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return Status{Exited: true}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return Status{Exited: true, Code: code}, nil
		}
		return Status{}, nil
	}
	return Status{}, err
}
