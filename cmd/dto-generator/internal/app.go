// Package internal contains the CLI wiring, extracted for testability.
package internal

import (
	"context"

	"dto-generator/internal/commands"
)

// Run executes the root command with the given context.
func Run(ctx context.Context) error {
	return commands.NewRootCmd().ExecuteContext(ctx)
}
