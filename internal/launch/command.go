// Package launch turns parsed file targets into an emacsclient invocation
// and runs it.
package launch

import (
	"strconv"

	"github.com/kobzarvs/emacside/internal/args"
	"github.com/kobzarvs/emacside/internal/config"
)

// Options configures command construction and launcher selection.
type Options struct {
	Client         string
	WindowedClient string
	Shell          string
	NoWaitFlag     string
	Position       config.PositionPolicy
}

// OptionsFrom maps the [client] config section to launch options.
func OptionsFrom(c config.ClientOptions) Options {
	return Options{
		Client:         c.Command,
		WindowedClient: c.WindowedCommand,
		Shell:          c.Shell,
		NoWaitFlag:     c.NoWaitFlag,
		Position:       c.Position,
	}
}

// BuildArgs returns the client argument list for a, without the client
// name itself.
func BuildArgs(a args.Args, o Options) []string {
	out := make([]string, 0, 2*len(a.Targets)+1)
	if !a.Wait && o.NoWaitFlag != "" {
		out = append(out, o.NoWaitFlag)
	}
	for _, t := range a.Targets {
		if tok := positionToken(t, o.Position); tok != "" {
			out = append(out, tok)
		}
		out = append(out, t.Filename)
	}
	return out
}

func positionToken(t args.FileTarget, p config.PositionPolicy) string {
	line, column := t.Line, t.Column
	if p == config.PositionAlways {
		one := 1
		if line == nil {
			line = &one
		}
		if column == nil {
			column = &one
		}
	}
	switch {
	case column != nil:
		l := 1
		if line != nil {
			l = *line
		}
		return "+" + strconv.Itoa(l) + ":" + strconv.Itoa(*column)
	case line != nil:
		return "+" + strconv.Itoa(*line)
	}
	return ""
}
