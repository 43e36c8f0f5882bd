// Command golox is the Lox interpreter CLI: run, lex, parse, repl, and
// version subcommands over the pipeline in internal/driver.
package main

import (
	"fmt"
	"os"

	"github.com/golox/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
