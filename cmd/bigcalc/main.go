// Command bigcalc is a reverse-Polish calculator over arbitrary-precision
// integers. It reads tokens from the files named on the command line, or from
// standard input, and writes results to standard output.
//
//	echo '2 100 * 3 - p' | bigcalc
//
// Operators: + - * / % neg abs dup drop swap clear p f =
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/comalice/stlx/bigint"
	"github.com/comalice/stlx/internal/config"
	"github.com/comalice/stlx/internal/rpn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bigcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "bigcalc: %v\n", err)
		return 2
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", *cfgPath, "max_digits", cfg.MaxDigits, "stack_capacity", cfg.StackCapacity)

	bigint.MaxDigits = cfg.MaxDigits

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := rpn.New(stdout,
		rpn.WithStackCapacity(cfg.StackCapacity),
		rpn.WithPrompt(cfg.Prompt),
		rpn.WithEcho(cfg.Echo),
		rpn.WithErrorHandler(func(e *rpn.TokenError) {
			logger.Warn("token failed", "line", e.Line, "token", e.Token, "err", e.Err)
		}),
	)

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	failed := 0
	for _, name := range inputs {
		n, err := evalInput(ctx, m, name, stdin)
		failed += n
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("interrupted")
				return 130
			}
			logger.Error("input failed", "input", name, "err", err)
			return 1
		}
		logger.Debug("input done", "input", name, "failed", n, "depth", m.Depth())
	}
	if failed > 0 {
		logger.Info("finished with errors", "failed", failed)
		return 1
	}
	return 0
}

func evalInput(ctx context.Context, m *rpn.Machine, name string, stdin io.Reader) (int, error) {
	if name == "-" {
		return m.Run(ctx, stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return m.Run(ctx, f)
}
