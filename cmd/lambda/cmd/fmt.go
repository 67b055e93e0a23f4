package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda/cst"
)

var (
	fmtWrite bool
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Print programs in canonical form",
	Long: `Print programs in canonical form. Reads stdin when no file is given.

With --write the files are rewritten in place. With --check nothing is
written; the names of files that are not canonical are listed and the exit
code is 1 if there are any.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite files in place")
	fmtCmd.Flags().BoolVarP(&fmtCheck, "check", "c", false, "list files whose formatting differs")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtCheck {
		return mdwerror.New("--write and --check are mutually exclusive").WithCode(mdwerror.CodeInvalidInput)
	}
	if fmtWrite && len(args) == 0 {
		return mdwerror.New("--write needs at least one file").WithCode(mdwerror.CodeInvalidInput)
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	printer := &cst.Printer{Multiline: cfg.Output.Multiline}
	unformatted := 0

	for _, path := range args {
		res, err := parseInput(cmd, []string{path})
		if err != nil {
			return err
		}

		out := printer.Print(res.Expr) + "\n"

		switch {
		case fmtCheck:
			if out != res.Source {
				unformatted++
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}
		case fmtWrite:
			if out == res.Source {
				continue
			}
			if err := writeFile(path, out); err != nil {
				return err
			}
			logger.Info("formatted", mdwlog.Fields{"file": path})
		default:
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}

	if unformatted > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d file(s) not formatted", unformatted)}
	}
	return nil
}

// writeFile replaces the content of path, keeping its permissions
func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return mdwerror.Wrap(err, path).WithCode(mdwerror.CodeIO)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return mdwerror.Wrap(err, path).WithCode(mdwerror.CodeIO)
	}
	return nil
}
