package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
	"monkey/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.mk|->",
	Short: "Tokenize a monkey source file",
	Long:  `Tokenize breaks down a monkey source file (or stdin with "-") into its tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "tokenize", 0)
	var result *driver.TokenizeResult
	if filePath == "-" {
		src, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		result = driver.TokenizeSource(stdinName, src, settings.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, settings.maxDiagnostics)
		if err != nil {
			span.End("load failed")
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}
	span.End(fmt.Sprintf("%d tokens", len(result.Tokens)))

	// Диагностики в stderr, токены в stdout
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgPack(out, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
