// Package cli provides the command-line interface for the wots demo tool.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newRootCmd creates the root command for the wots CLI.
func newRootCmd(logger *zerolog.Logger) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "wots",
		Short: "Winternitz one-time signature demo",
		Long: `Demonstrates the Winternitz one-time signature scheme: hash-chain key
generation, signing, and verification. Every key pair signs exactly one
message; generate a fresh key pair per signature.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			*logger = newLogger(verbose)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addDemoCommand(cmd, logger)
	addKeygenCommand(cmd, logger)

	return cmd
}

// newLogger builds a console logger; debug level when verbose.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	var logger zerolog.Logger
	cmd := newRootCmd(&logger)
	return cmd.ExecuteContext(ctx)
}
