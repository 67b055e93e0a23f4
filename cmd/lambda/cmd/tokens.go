package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/lambda/foundation/lambda/token"
	"github.com/msto63/lambda/foundation/utils/stringx"
)

var tokensComments bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensComments, "comments", false, "include comment tokens")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := engine.Tokenize(name, src, tokensComments)

	w := cmd.OutOrStdout()
	for _, tok := range tokens {
		if tok.Kind == token.Illegal {
			break
		}
		line := fmt.Sprintf("%s %s %s %s",
			stringx.PadRight(tok.Position(), 8, ' '),
			stringx.PadRight(tok.Span.String(), 9, ' '),
			stringx.PadRight(tok.Kind.String(), 14, ' '),
			tokenText(tok))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), newRenderer(cmd.ErrOrStderr()).Render(name, src, err))
		return &reportedError{err: err}
	}
	return nil
}

func tokenText(tok token.Token) string {
	if tok.Kind == token.EOF {
		return ""
	}
	return strconv.Quote(stringx.Truncate(tok.Text, 40, "..."))
}
