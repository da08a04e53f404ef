package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arith/log"
)

// logFormat is a custom type that configures the logger format as a
// side effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing
// the logger to be configured early enough to affect error messages
// emitted during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract
// and apply logger configuration before Kong begins parsing. This
// ensures the logger is configured properly regardless of flag position
// on the command line.
//
// While logFormat and logLevel implement encoding.TextUnmarshaler to
// configure the logger as flags are encountered during parsing, boolean
// flags like Pretty don't go through that interface, so the pre-scan
// applies them here.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		negated := false

		name, ok := strings.CutPrefix(arg, "--log-")
		if !ok {
			name, ok = strings.CutPrefix(arg, "--no-log-")
			negated = true
		}

		if !ok {
			continue
		}

		var (
			value    string
			assigned bool
		)

		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
			assigned = true
		}

		// Non-boolean flags consume the next argument as their value
		// when it was not attached with '='.
		takeValue := func() string {
			if assigned {
				return value
			}

			if i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return ""
		}

		// Boolean flags default to true (false when negated) unless a
		// value was attached with '='.
		takeBool := func() bool {
			if assigned {
				v, err := strconv.ParseBool(value)
				if err == nil {
					return v != negated
				}
			}

			return !negated
		}

		switch name {
		case "level":
			if !negated {
				_ = f.Level.UnmarshalText([]byte(takeValue()))
			}

		case "format":
			if !negated {
				_ = f.Format.UnmarshalText([]byte(takeValue()))
			}

		case "pretty":
			f.Pretty = takeBool()
			log.Config(log.WithPretty(f.Pretty))

		case "caller":
			f.Caller = takeBool()
			log.Config(log.WithCaller(f.Caller))
		}
	}
}
