package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/borzacchiello/bitexpr"
	"github.com/spf13/cobra"
)

// errNoResult makes the command exit with status 1 without printing an error.
var errNoResult = errors.New("some expressions have no result")

type app struct {
	cfg       Config
	logger    *slog.Logger
	evaluator *bitexpr.Evaluator
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		backend    string
	)
	a := &app{}

	root := &cobra.Command{
		Use:           "bitexpr",
		Short:         "Evaluate boolean expressions over bit vectors",
		Long:          "Evaluate expressions of the form `[~]bits op [~]bits` where op is one of &, |, -> and =.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = backend
			}
			return a.setup(cfg, cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&backend, "backend", "native", fmt.Sprintf("evaluation backend %v", bitexpr.Backends()))

	root.AddCommand(newEvalCmd(a), newBatchCmd(a))
	return root
}

func (a *app) setup(cfg Config, logOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	b, err := bitexpr.NewBackend(cfg.Backend)
	if err != nil {
		return err
	}
	a.evaluator = bitexpr.NewEvaluator(bitexpr.WithLogger(a.logger), bitexpr.WithBackend(b))
	a.logger.Debug("evaluator ready", slog.String("backend", b.Name()))
	return nil
}

func (a *app) render(res *bitexpr.BitVector, ok bool) string {
	if !ok {
		return a.cfg.NoResult
	}
	return res.String()
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate the expressions given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				res, ok := a.evaluator.Evaluate(arg)
				if !ok {
					failed++
				}
				fmt.Fprintln(out, a.render(res, ok))
			}
			if failed > 0 {
				return errNoResult
			}
			return nil
		},
	}
}

type batchSummary struct {
	Total    int
	NoResult int
	Distinct int
}

func (s batchSummary) String() string {
	return fmt.Sprintf("total=%d no_result=%d distinct=%d", s.Total, s.NoResult, s.Distinct)
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Evaluate one expression per line of FILE or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			summary, err := a.batch(in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func (a *app) batch(in io.Reader, out io.Writer) (batchSummary, error) {
	var summary batchSummary
	distinct := bitexpr.NewResultSet()

	// lines have no length limit
	reader := bufio.NewReader(in)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return summary, fmt.Errorf("read expressions: %w", readErr)
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			if readErr == io.EOF {
				break
			}
			continue
		}
		summary.Total++

		res, ok := a.evaluator.Evaluate(line)
		if !ok {
			summary.NoResult++
		} else {
			distinct.Add(res)
		}
		fmt.Fprintf(out, "%s => %s\n", line, a.render(res, ok))
		if readErr == io.EOF {
			break
		}
	}

	summary.Distinct = distinct.Len()
	a.logger.Info("batch completed",
		slog.Int("total", summary.Total),
		slog.Int("no_result", summary.NoResult),
		slog.Int("distinct", summary.Distinct))
	return summary, nil
}
