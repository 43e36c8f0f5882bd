package cmd

import (
	"fmt"

	"github.com/golox/golox/internal/lexer"
	"github.com/golox/golox/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file or expression",
	Long: `Tokenize (lex) a Lox program and print the resulting tokens.

Examples:
  # Tokenize a script file
  golox lex script.lox

  # Tokenize an inline expression
  golox lex -e "1 + 2 * 3"

  # Show token types and positions
  golox lex --show-type --show-pos script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token line numbers")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if isVerbose(cmd) {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	lx := lexer.New(input)
	tokens := lx.ScanTokens()
	for _, tok := range tokens {
		printToken(tok)
	}
	for _, e := range lx.Errors() {
		fmt.Printf("error @%d: %s\n", e.Line, e.Message)
	}

	if isVerbose(cmd) {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	if len(lx.Errors()) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(lx.Errors()))
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal != nil {
		output += fmt.Sprintf(" %q %v", tok.Lexeme, tok.Literal)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if showPos {
		output += fmt.Sprintf(" @%d", tok.Line)
	}
	fmt.Println(output)
}
