// Package main provides the entry point for the wots demo CLI.
package main

import (
	"context"
	"os"

	"github.com/hashchain-labs/wots-go/internal/cli"
)

func main() {
	ctx := context.Background()
	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
