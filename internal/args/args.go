// Package args interprets an IDE-style command line into file targets.
package args

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgs is wrapped by every error returned from Parse.
var ErrInvalidArgs = errors.New("invalid arguments")

// FileTarget is one file to open, with an optional cursor position.
// Column is 1-based.
type FileTarget struct {
	Filename string
	Line     *int
	Column   *int
}

// Args is the result of interpreting the command line.
type Args struct {
	Wait    bool
	Targets []FileTarget
}

type state int

const (
	stateOptions state = iota
	stateFilenames
)

// Parse interprets raw (without the program name). Options are only
// recognized before the first filename; after that, only position options
// and filenames are accepted.
func Parse(raw []string) (Args, error) {
	var (
		out    Args
		st     = stateOptions
		line   *int
		column *int
	)

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if st == stateOptions {
			switch arg {
			case "nosplash", "dontReopenProjects", "disableNonBundledPlugins":
				continue
			case "--wait":
				out.Wait = true
				continue
			case "diff", "merge", "attach-to-process":
				return Args{}, fmt.Errorf("%w: unsupported command: %s", ErrInvalidArgs, arg)
			}
			st = stateFilenames
		}

		switch arg {
		case "--line", "-l":
			n, err := optionValue(raw, &i)
			if err != nil {
				return Args{}, err
			}
			line = &n
		case "--column", "-c":
			n, err := optionValue(raw, &i)
			if err != nil {
				return Args{}, err
			}
			if n == math.MaxInt32 {
				return Args{}, fmt.Errorf("%w: integer %d passed to %s is out of range", ErrInvalidArgs, n, arg)
			}
			// emacsclient counts columns from 1.
			n++
			column = &n
		default:
			out.Targets = append(out.Targets, FileTarget{
				Filename: arg,
				Line:     line,
				Column:   column,
			})
			line, column = nil, nil
		}
	}

	if len(out.Targets) != 1 {
		out.Targets = dropSolutions(out.Targets)
	}
	return out, nil
}

// optionValue consumes the token after raw[*i] and parses it as a
// non-negative 32-bit integer.
func optionValue(raw []string, i *int) (int, error) {
	opt := raw[*i]
	if *i+1 >= len(raw) {
		return 0, fmt.Errorf("%w: no integer argument passed to %s", ErrInvalidArgs, opt)
	}
	*i++
	v, err := strconv.ParseInt(raw[*i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer %q passed to %s", ErrInvalidArgs, raw[*i], opt)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: integer %d passed to %s is out of range", ErrInvalidArgs, v, opt)
	}
	return int(v), nil
}

// IsSolution reports whether name is a solution file.
func IsSolution(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".sln")
}

func dropSolutions(targets []FileTarget) []FileTarget {
	kept := targets[:0]
	for _, t := range targets {
		if IsSolution(t.Filename) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
