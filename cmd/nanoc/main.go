// Command nanoc is the optional driver for the front end: it reads a
// source file, runs the lex/parse/analyze pipeline, and exits non-zero on
// the first error any stage reports. It is not part of the core library
// contract; a caller embedding the front end elsewhere never needs this
// package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/lexer"
	"github.com/nanoc-lang/nanoc/internal/parser"
	"github.com/nanoc-lang/nanoc/internal/sema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "nanoc <file>",
		Short:         "Lex, parse, and semantically analyze a nanoc source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			defer logger.Sync()
			err := run(logger, args[0])
			if err != nil {
				logger.Errorw("failed", "error", err)
				fmt.Fprintln(os.Stderr, err)
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// zap's own config construction failing is not something the rest
		// of this command can sensibly recover from.
		panic(err)
	}
	return logger.Sugar()
}

func run(logger *zap.SugaredLogger, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tokens := lexer.Lex(string(src))
	logger.Debugw("lexed", "tokens", len(tokens))

	prog, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	logger.Debugw("parsed", "functions", len(prog.Functions))
	logger.Debug(ast.Dump(prog))

	if err := sema.Analyze(prog); err != nil {
		return fmt.Errorf("semantic error: %w", err)
	}

	logger.Infow("analysis OK", "file", path, "functions", len(prog.Functions))
	return nil
}
