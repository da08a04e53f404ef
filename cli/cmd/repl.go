package cmd

import (
	"context"

	"github.com/ardnew/arith/cli/cmd/repl"
	"github.com/ardnew/arith/log"
)

// Repl starts the interactive interpreter.
type Repl struct {
	Cache string `default:"${cache}" help:"Cache directory for REPL history" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(ctx, r.Cache, log.Default())
}
