package cmd

import (
	"fmt"
	"os"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/driver"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file or expression",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  # Run a script file
  golox run script.lox

  # Evaluate an inline expression
  golox run -e "print \"Hello, World!\";"

  # Run with an AST dump first (for debugging)
  golox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "announce which chunk is executing (only together with --verbose)")
}

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if dumpAST {
		dumpSink := diagnostics.New()
		if program, ok := driver.Parse(dumpSink, input); ok {
			fmt.Println("AST:")
			fmt.Print(ast.Print(program))
			fmt.Println()
		}
	}

	if trace && isVerbose(cmd) {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
	}

	d := driver.New(diagnostics.New())
	d.Run(input)
	d.WriteDiagnostics(os.Stderr, true)
	if d.HadError() {
		return fmt.Errorf("execution failed")
	}
	return nil
}
