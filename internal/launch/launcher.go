package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/kobzarvs/emacside/internal/args"
	"github.com/kobzarvs/emacside/internal/logger"
)

var (
	// ErrNoFiles is returned by Run when there is nothing to open.
	ErrNoFiles = errors.New("no file arguments provided")
	// ErrClientFailed is returned when the client failed without an exit
	// code, for example when it was killed by a signal.
	ErrClientFailed = errors.New("emacsclient error")
)

// ExitError reports a non-zero exit code from the client.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("emacsclient error: %d", e.Code)
}

// Launcher starts the client with an argument list and waits for it.
type Launcher interface {
	Launch(clientArgs []string) (Status, error)
}

// DirectLauncher runs the client executable with the argument list as is.
type DirectLauncher struct {
	Client string
	Runner Runner
}

func (l DirectLauncher) Launch(clientArgs []string) (Status, error) {
	logger.Debug("launching client", "client", l.Client, "args", clientArgs)
	return l.Runner.Run(l.Client, clientArgs...)
}

// ShellLauncher runs the client through a POSIX shell as a single escaped
// command line.
type ShellLauncher struct {
	Shell  string
	Client string
	Runner Runner
}

// CommandLine returns the string passed to the shell's -c option.
func (l ShellLauncher) CommandLine(clientArgs []string) string {
	parts := make([]string, 0, len(clientArgs)+1)
	parts = append(parts, shellescape.Quote(l.Client))
	for _, a := range clientArgs {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}

func (l ShellLauncher) Launch(clientArgs []string) (Status, error) {
	line := l.CommandLine(clientArgs)
	logger.Debug("launching client via shell", "shell", l.Shell, "command", line)
	return l.Runner.Run(l.Shell, "-c", line)
}

// ForOS picks the launch strategy for goos. Windows needs the windowed
// client started directly; everything else goes through the shell.
func ForOS(goos string, o Options, r Runner) Launcher {
	if goos == "windows" {
		return DirectLauncher{Client: o.WindowedClient, Runner: r}
	}
	return ShellLauncher{Shell: o.Shell, Client: o.Client, Runner: r}
}

// Run launches the client for a and maps its termination status to an
// error. Nothing is launched when a has no targets.
func Run(a args.Args, l Launcher, o Options) error {
	if len(a.Targets) == 0 {
		return ErrNoFiles
	}
	st, err := l.Launch(BuildArgs(a, o))
	if err != nil {
		logger.Error("client failed to start", "error", err)
		return fmt.Errorf("start emacsclient: %w", err)
	}
	if st.Success() {
		logger.Info("client finished", "targets", len(a.Targets))
		return nil
	}
	if !st.Exited {
		logger.Error("client terminated without exit code")
		return ErrClientFailed
	}
	logger.Error("client exited with error", "code", st.Code)
	return &ExitError{Code: st.Code}
}
