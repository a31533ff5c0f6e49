package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/config"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/requestid"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

type app struct {
	configPath string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, usageError(err)
	}
	return cfg, nil
}

func (a *app) newLogger(cfg config.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rulechain"),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if lvl, ok := logger.ParseLevel(cfg.Log.Level); ok {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if f, ok := logger.ParseFormat(cfg.Log.Format); ok {
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rulechain",
		Short:         "Validate request data against rule chain schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(newCheckCmd(a), newRulesCmd(a), newServeCmd(a))
	return root
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitValid
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, "Error:", ee.err)
		}
		return ee.code
	}
	// flag and argument errors from cobra
	fmt.Fprintln(stderr, "Error:", err)
	return exitUsage
}
