// Package main is the entry point for the dto-generator CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"dto-generator/cmd/dto-generator/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
