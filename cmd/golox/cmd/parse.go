package cmd

import (
	"fmt"
	"os"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/driver"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Lox source and print the AST",
	Long: `Parse Lox source code and print its Abstract Syntax Tree.

Use -e to parse a single expression from the command line instead of
reading a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	sink := diagnostics.New()
	program, ok := driver.Parse(sink, input)
	if !ok {
		fmt.Fprint(os.Stderr, sink.Format(true))
		return fmt.Errorf("parsing failed")
	}

	fmt.Print(ast.Print(program))
	return nil
}
