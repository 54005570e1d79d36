package pad

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Resolver turns command-line arguments into a Config.
type Resolver struct {
	// Stdin is drained when no STRING argument is given. Defaults to os.Stdin.
	Stdin io.Reader
	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
	// Level, if set, is lowered to debug by the -v flag.
	Level *slog.LevelVar
	// Interactive reports that Stdin is a terminal.
	Interactive bool
	// MaxContent bounds the size of streamed content. Zero means no bound.
	MaxContent int
}

// Resolve parses args, which exclude the program name. Options may appear
// anywhere before a literal "--", and single-letter options may be grouped
// as in "-rc" or "-px". It returns ErrHelp if -h is present, a *UsageError
// for invalid arguments and a *ResourceError if streamed content cannot be
// buffered. Nothing is read from Stdin unless all arguments are valid and
// STRING is omitted.
func (r *Resolver) Resolve(args []string) (*Config, error) {
	cmd := splitArgs(args)
	if cmd.help {
		return nil, ErrHelp
	}
	if cmd.verbose && r.Level != nil {
		r.Level.Set(slog.LevelDebug)
	}
	logger := r.logger()

	fields := map[string]interface{}{}

	// Errors raised inside flag callbacks; flag.Parse only returns their text.
	var failure error
	aligned := false
	align := func(name string, a Alignment) func(string) error {
		return func(s string) error {
			on, err := strconv.ParseBool(s)
			if err != nil {
				failure = usagef("-%s takes no value: '%s'", name, s)
				return failure
			}
			if !on {
				return nil
			}
			if aligned {
				failure = usagef("-c, -l and -r are mutually exclusive")
				return failure
			}
			aligned = true
			fields["Alignment"] = a
			logger.Debug("alignment selected", "alignment", a)
			return nil
		}
	}

	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolFunc("c", "center align", align("c", Center))
	fs.BoolFunc("l", "left pad (default)", align("l", Left))
	fs.BoolFunc("r", "right pad", align("r", Right))
	fs.Func("p", "fill character", func(s string) error {
		b, err := parseFill(s)
		if err != nil {
			failure = err
			return err
		}
		fields["Fill"] = b
		return nil
	})
	fs.BoolFunc("v", "debug logging", func(string) error { return nil })

	if err := fs.Parse(cmd.options); err != nil {
		if failure != nil {
			return nil, failure
		}
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, &UsageError{Msg: err.Error()}
	}

	positional := cmd.operands
	if len(positional) != 1 && len(positional) != 2 {
		return nil, usagef("expected WIDTH [STRING], got %d arguments; %s", len(positional), Usage)
	}
	fields["Width"] = positional[0]

	cfg, err := NewConfig(fields)
	if err != nil {
		return nil, err
	}

	if len(positional) == 2 {
		cfg.Content = NewContent(positional[1])
	} else {
		if r.Interactive {
			logger.Debug("reading STRING from terminal, end it with Ctrl-D")
		}
		content, err := ReadContent(r.stdin(), cfg.Width, r.MaxContent)
		if err != nil {
			return nil, err
		}
		cfg.Content = content
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("configuration resolved", "config", cfg.Fields())
	}
	return cfg, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Resolver) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

// commandLine is an argument list split the way getopt permutes it.
type commandLine struct {
	options  []string // one flag per element, the -p operand as its own element
	operands []string
	help     bool
	verbose  bool
}

// splitArgs separates options from operands up to a literal "--". Grouped
// single-letter options are split apart; -p takes the rest of its group or
// the next argument as its operand. Arguments of the form -x=value and
// --name are passed to the flag set unchanged.
func splitArgs(args []string) commandLine {
	var cmd commandLine
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			cmd.operands = append(cmd.operands, args[i+1:]...)
			return cmd
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			cmd.operands = append(cmd.operands, arg)
			continue
		case strings.HasPrefix(arg, "--") || (len(arg) > 2 && arg[2] == '=' && arg[1] != 'p'):
			name := strings.TrimLeft(arg, "-")
			if j := strings.IndexByte(name, '='); j >= 0 {
				name = name[:j]
			}
			switch name {
			case "h", "help":
				cmd.help = true
			case "v":
				cmd.verbose = true
			}
			cmd.options = append(cmd.options, arg)
			continue
		}

		group := arg[1:]
		for j := 0; j < len(group); j++ {
			letter := group[j]
			cmd.options = append(cmd.options, "-"+string(letter))
			switch letter {
			case 'h':
				cmd.help = true
			case 'v':
				cmd.verbose = true
			case 'p':
				if rest := group[j+1:]; rest != "" {
					cmd.options = append(cmd.options, rest)
				} else if i+1 < len(args) {
					i++
					cmd.options = append(cmd.options, args[i])
				}
				j = len(group)
			}
		}
	}
	return cmd
}
