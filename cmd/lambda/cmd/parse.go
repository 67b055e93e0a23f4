package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/foundation/lambda/cst"
	"github.com/msto63/lambda/pkg/core/config"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its syntax tree",
	Long: `Parse a program and print its syntax tree. Reads stdin when no file
or "-" is given.

Formats:
  tree    indented tree with byte spans
  sexpr   s-expression
  ctor    constructor notation, e.g. Call(Ident(f), Bool(true))
  json    JSON document
  yaml    YAML document
  source  canonical source`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (default from config: tree)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if !contains(config.OutputFormats, format) {
		return mdwerror.Newf("unknown format %q, expected one of %s", format, strings.Join(config.OutputFormats, ", ")).
			WithCode(mdwerror.CodeInvalidInput)
	}

	res, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	return writeTree(cmd.OutOrStdout(), res.Expr, format)
}

func writeTree(w io.Writer, e cst.Expr, format string) error {
	var err error
	switch format {
	case "tree":
		_, err = io.WriteString(w, cst.Dump(e, strings.Repeat(" ", cfg.Output.Indent)))
	case "sexpr":
		_, err = fmt.Fprintln(w, cst.SExpr(e))
	case "ctor":
		_, err = fmt.Fprintln(w, e.String())
	case "source":
		p := &cst.Printer{Multiline: cfg.Output.Multiline}
		_, err = fmt.Fprintln(w, p.Print(e))
	case "json":
		err = cst.Encode(w, e, cst.EncodingJSON)
	case "yaml":
		err = cst.Encode(w, e, cst.EncodingYAML)
	}
	if err != nil {
		return mdwerror.Wrap(err, "write output").WithCode(mdwerror.CodeIO)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
