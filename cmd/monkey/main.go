package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"monkey/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "monkey",
	Short:             "Monkey language front end",
	Long:              `Monkey tokenizes and parses Monkey source and prints tokens, syntax trees and diagnostics`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareRun,
}

// traceCleanup сбрасывает и закрывает трассер; failed включает дамп ring-буфера.
var traceCleanup = func(failed bool) {}

var profileCleanup = func() {}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("diag-format", "pretty", "diagnostics format on stderr (pretty|short|json)")
	rootCmd.PersistentFlags().String("config", "", "path to monkey.toml (default: search upwards from the working directory)")

	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson)")
	rootCmd.PersistentFlags().Int("trace-ring", 0, "keep the last N trace events and dump them to stderr on failure")

	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
}

// main executes the root command.
// Any error, including reported diagnostics, exits with status 1.
func main() {
	err := rootCmd.ExecuteContext(context.Background())
	profileCleanup()
	traceCleanup(err != nil)
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// prepareRun загружает настройки и поднимает трассировку перед любой командой.
func prepareRun(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	settings = s

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	profileCleanup = stopProfiling
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
