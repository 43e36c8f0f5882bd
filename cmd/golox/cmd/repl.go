package cmd

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/driver"
	"github.com/spf13/cobra"
)

var (
	cyanColor = color.New(color.FgCyan)
	blueColor = color.New(color.FgBlue)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive Lox session: enter statements or bare
expressions one at a time and see their results immediately.

Type Ctrl+D or "exit" to exit.`,
	RunE: startREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

const replPrompt = "lox> "

func startREPL(cmd *cobra.Command, _ []string) error {
	cyanColor.Println("golox " + Version)
	blueColor.Println(`Type Ctrl+D or "exit" to exit.`)

	rl, err := readline.New(replPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	d := driver.New(diagnostics.New())

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println()
			break
		}
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		rl.SaveHistory(line)

		d.RunREPLChunk(line)
		if d.HadError() {
			d.WriteDiagnostics(os.Stderr, true)
		}
	}
	return nil
}
