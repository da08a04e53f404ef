package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

// Eval evaluates one or more statements through a single session and
// prints the final result.
type Eval struct {
	Stmts []string `arg:"" help:"Statements to evaluate in order" name:"stmt"`

	Vars bool `help:"Print the variable store as YAML after evaluation" short:"V"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	session := lang.NewSession(lang.WithSessionLogger(log.Default()))

	var result float64

	for _, stmt := range e.Stmts {
		result, err = session.EvalLine(stmt)
		if err != nil {
			return ErrEvaluate.Wrap(err).
				With(slog.String("stmt", stmt))
		}
	}

	fmt.Println(lang.FormatResult(result))

	if e.Vars {
		out, err := yaml.MarshalContext(ctx, session.Vars())
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		fmt.Print(string(out))
	}

	return nil
}
