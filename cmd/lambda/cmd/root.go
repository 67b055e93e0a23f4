package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda"
	"github.com/msto63/lambda/internal/diagnostics"
	"github.com/msto63/lambda/pkg/core/config"
	"github.com/msto63/lambda/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   int
	colorFlag string
)

// Runtime state built from the configuration before every command
var (
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *lambda.Engine
)

var rootCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Parser toolkit for a minimal lambda language",
	Long: `lambda parses programs of a minimal lambda language into a concrete
syntax tree and reports syntax errors with source excerpts.

Language:
  x: body                 function definition
  f x                     call (left-associative)
  if c then a else b      conditional
  let x = v; in body      binding ('in' is optional)
  true, false             booleans
  # ...                   comment to end of line`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors not yet reported to the user are
// printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var rep *reportedError
		var ee *exitError
		if !errors.As(err, &rep) && !errors.As(err, &ee) {
			printError(rootCmd.ErrOrStderr(), err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LAMBDA_CONFIG or ./lambda.toml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "verbose output, repeat for more")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "colour diagnostics: auto, always or never")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if colorFlag != "" {
		if _, err := diagnostics.ParseColorMode(colorFlag); err != nil {
			return mdwerror.Wrap(err, "--color").WithCode(mdwerror.CodeInvalidInput)
		}
		cfg.Output.Color = colorFlag
	}

	lc := logging.FromConfig("lambda", cfg, verbose)
	lc.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(lc)
	if cfg.Source != "" {
		logger.Debug("configuration loaded", mdwlog.Fields{"path": cfg.Source})
	}

	engine = lambda.New(lambda.Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		MaxDepth:       cfg.Parser.MaxDepth,
		Workers:        cfg.Check.Workers,
	})
	return nil
}

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return mdwerror.GetCode(err).ExitCode()
}

// reportedError marks an error whose diagnostic has already been written
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// exitError requests a specific exit code without further output
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "lambda: %v\n", err)
}

func newRenderer(w io.Writer) *diagnostics.Renderer {
	mode, _ := diagnostics.ParseColorMode(cfg.Output.Color)
	return diagnostics.NewRenderer(w, mode)
}

// readInput reads the file named by args, or stdin for "-" or no argument
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "<stdin>", "", mdwerror.Wrap(err, "read stdin").WithCode(mdwerror.CodeIO)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], "", mdwerror.Wrap(err, args[0]).
			WithCode(mdwerror.CodeIO).
			WithOperation("cmd.readInput")
	}
	return args[0], string(data), nil
}

// parseInput reads and parses the input named by args. Syntax errors are
// rendered to stderr and returned as reported.
func parseInput(cmd *cobra.Command, args []string) (lambda.Result, error) {
	name, src, err := readInput(cmd, args)
	if err != nil {
		return lambda.Result{Path: name}, err
	}

	res := lambda.Result{Path: name, Source: src}
	res.Expr, res.Err = engine.ParseSource(name, src)
	if res.Err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), newRenderer(cmd.ErrOrStderr()).Render(name, src, res.Err))
		return res, &reportedError{err: res.Err}
	}
	return res, nil
}
