package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkey/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Repl reads one line at a time and prints its tokens or its parsed canonical form`,
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	replCmd.Flags().String("mode", "", "what to print per line (tokens|ast); default from monkey.toml")
	replCmd.Flags().String("prompt", "", "prompt text; default from monkey.toml")
}

func runREPL(cmd *cobra.Command, _ []string) error {
	modeStr := settings.cfg.REPL.Mode
	if cmd.Flags().Changed("mode") {
		modeStr, _ = cmd.Flags().GetString("mode")
	}
	mode, err := repl.ParseMode(modeStr)
	if err != nil {
		return err
	}
	prompt := settings.cfg.REPL.Prompt
	if cmd.Flags().Changed("prompt") {
		prompt, _ = cmd.Flags().GetString("prompt")
	}

	if !settings.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "monkey repl (%s mode), Ctrl+D to exit\n", mode)
	}
	return repl.Start(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{
		Prompt:         prompt,
		Mode:           mode,
		Color:          settings.useColor(os.Stdout),
		MaxDiagnostics: settings.maxDiagnostics,
	})
}
