package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda"
)

var checkWorkers int

var checkCmd = &cobra.Command{
	Use:   "check files...",
	Short: "Check that programs parse",
	Long: `Parse every file concurrently and report all syntax errors. The exit
code is non-zero when any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "concurrent parsers (default from config, 0 = number of CPUs)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	batchID := uuid.NewString()
	batchLogger := logger.WithCorrelationID(batchID)

	workers := cfg.Check.Workers
	if checkWorkers > 0 {
		workers = checkWorkers
	}

	checker := lambda.New(lambda.Options{
		Logger:         batchLogger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		MaxDepth:       cfg.Parser.MaxDepth,
		Workers:        workers,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Check.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Check.Timeout.Duration)
		defer cancel()
	}

	batchLogger.Debug("check started", mdwlog.Fields{"files": len(args), "workers": workers})
	results := checker.ParseFiles(ctx, args)

	renderer := newRenderer(cmd.ErrOrStderr())
	failed, exit := 0, 0
	for _, res := range results {
		if res.OK() {
			batchLogger.Info("ok", mdwlog.Fields{"file": res.Path, "tokens": res.Tokens, "duration": res.Duration.String()})
			continue
		}

		failed++
		if code := mdwerror.GetCode(res.Err).ExitCode(); code > exit {
			exit = code
		}
		batchLogger.LogError(res.Err)
		fmt.Fprint(cmd.ErrOrStderr(), renderer.Render(res.Path, res.Source, res.Err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Summary(len(results), failed))

	if failed > 0 {
		return &exitError{code: exit, msg: fmt.Sprintf("%d of %d file(s) failed", failed, len(results))}
	}
	return nil
}
