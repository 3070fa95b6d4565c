package app

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/kobzarvs/emacside/internal/args"
	"github.com/kobzarvs/emacside/internal/config"
	"github.com/kobzarvs/emacside/internal/launch"
	"github.com/kobzarvs/emacside/internal/logger"
)

// App is the top-level runtime for emacside.
type App struct {
	args   []string
	stdout io.Writer
	goos   string
	runner launch.Runner
}

func New(args []string) *App {
	return &App{
		args:   args,
		stdout: os.Stdout,
		goos:   runtime.GOOS,
		runner: launch.NewExecRunner(),
	}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File}); err != nil {
		return err
	}
	defer logger.Close()

	logger.Debug("invoked", "args", a.args)
	if cfg.Log.EchoArgs {
		fmt.Fprintln(a.stdout, quoteArgs(a.args))
	}

	parsed, err := args.Parse(a.args)
	if err != nil {
		return err
	}
	logger.Debug("parsed arguments", "wait", parsed.Wait, "targets", len(parsed.Targets))

	opts := launch.OptionsFrom(cfg.Client)
	l := launch.ForOS(a.goos, opts, a.runner)
	return launch.Run(parsed, l, opts)
}

func quoteArgs(raw []string) string {
	parts := make([]string, len(raw))
	for i, a := range raw {
		parts[i] = "“" + a + "”"
	}
	return strings.Join(parts, " ")
}
