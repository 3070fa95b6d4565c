package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobzarvs/emacside/internal/args"
	"github.com/kobzarvs/emacside/internal/launch"
)

type recordingRunner struct {
	name   string
	args   []string
	calls  int
	status launch.Status
}

func (r *recordingRunner) Run(name string, a ...string) (launch.Status, error) {
	r.calls++
	r.name = name
	r.args = a
	return r.status, nil
}

func newTestApp(t *testing.T, goos string, raw ...string) (*App, *recordingRunner, *bytes.Buffer) {
	t.Helper()
	t.Setenv("EMACSIDE_CONFIG_HOME", t.TempDir())
	t.Setenv("EMACSIDE_LOG_FILE", "")
	t.Setenv("EMACSIDE_DEBUG", "")
	r := &recordingRunner{status: launch.Status{Exited: true}}
	out := &bytes.Buffer{}
	a := New(raw)
	a.goos = goos
	a.runner = r
	a.stdout = out
	return a, r, out
}

func TestRunShell(t *testing.T) {
	a, r, out := newTestApp(t, "linux", "nosplash", "--line", "3", "--column", "4", "f.py")
	require.NoError(t, a.Run())
	require.Equal(t, "sh", r.name)
	require.Equal(t, []string{"-c", "emacsclient -n +3:5 f.py"}, r.args)
	require.Empty(t, out.String())
}

func TestRunWindowsDirect(t *testing.T) {
	a, r, _ := newTestApp(t, "windows", "--wait", "C:\\src\\My App\\a.cs")
	require.NoError(t, a.Run())
	require.Equal(t, "emacsclientw", r.name)
	require.Equal(t, []string{"C:\\src\\My App\\a.cs"}, r.args)
}

func TestRunParseErrorLaunchesNothing(t *testing.T) {
	a, r, _ := newTestApp(t, "linux", "diff", "a.txt", "b.txt")
	err := a.Run()
	require.ErrorIs(t, err, args.ErrInvalidArgs)
	require.ErrorContains(t, err, "diff")
	require.Zero(t, r.calls)
}

func TestRunNoFiles(t *testing.T) {
	a, r, _ := newTestApp(t, "linux", "nosplash")
	require.ErrorIs(t, a.Run(), launch.ErrNoFiles)
	require.Zero(t, r.calls)
}

func TestRunClientExitCode(t *testing.T) {
	a, r, _ := newTestApp(t, "linux", "a.txt")
	r.status = launch.Status{Exited: true, Code: 1}
	require.EqualError(t, a.Run(), "emacsclient error: 1")
}

func TestRunWithConfig(t *testing.T) {
	a, r, out := newTestApp(t, "linux", "--wait", "a.txt")
	dir := os.Getenv("EMACSIDE_CONFIG_HOME")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[client]
command = "ec"
position = "always"

[log]
echo-args = true
`), 0o644))

	require.NoError(t, a.Run())
	require.Equal(t, []string{"-c", "ec +1:1 a.txt"}, r.args)
	require.Equal(t, "“--wait” “a.txt”\n", out.String())
}

func TestRunWithoutConfigDir(t *testing.T) {
	a, r, _ := newTestApp(t, "linux", "a.txt")
	t.Setenv("EMACSIDE_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("home", "")

	require.NoError(t, a.Run())
	require.Equal(t, 1, r.calls)
	require.Equal(t, []string{"-c", "emacsclient -n a.txt"}, r.args)
}

func TestRunClientPathWithSpace(t *testing.T) {
	a, r, _ := newTestApp(t, "linux", "-l", "2", "a.txt")
	dir := os.Getenv("EMACSIDE_CONFIG_HOME")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[client]
command = "/opt/My Emacs/bin/emacsclient"
`), 0o644))

	require.NoError(t, a.Run())
	require.Equal(t, []string{"-c", "'/opt/My Emacs/bin/emacsclient' -n +2 a.txt"}, r.args)
}
