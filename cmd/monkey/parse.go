package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
	"monkey/internal/pipeline"
	"monkey/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.mk|directory|->",
	Short: "Parse a monkey source file or directory and output the AST",
	Long:  `Parse analyzes a monkey source file, stdin ("-") or every source file in a directory and outputs the syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if target == "-" {
		src, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		result, parseErr := driver.ParseSource(cmd.Context(), stdinName, src, settings.maxDiagnostics)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return emitSingle(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, result)
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		result, parseErr := driver.Parse(cmd.Context(), target, settings.maxDiagnostics)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return emitSingle(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, result)
	}

	// Парсинг директории
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	files, err := driver.ListFiles(target, settings.cfg.Parse.Extensions)
	if err != nil {
		return err
	}

	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
	)
	if shouldUseTUI(mode) && len(files) > 0 {
		fs, results, err = runParseWithUI(cmd.Context(), "parsing "+target, files, jobs)
	} else {
		fs, results, err = driver.ParseFiles(cmd.Context(), files, settings.maxDiagnostics, jobs, pipeline.NopSink{})
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	return emitDir(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, fs, results)
}

func emitSingle(out, errOut io.Writer, format string, result *driver.ParseResult) error {
	if settings.timings {
		if settings.diagFormat == "json" {
			result.AttachTimings()
		} else {
			fmt.Fprint(errOut, result.Timing.Summary())
		}
	}
	if err := printDiagnostics(errOut, result.Bag, result.FileSet); err != nil {
		return err
	}

	var err error
	switch format {
	case "json":
		err = diagfmt.FormatASTJSON(out, result.Program, result.FileSet, result.File.Path)
	case "tree":
		err = diagfmt.FormatASTTree(out, result.Program, result.FileSet)
	default:
		err = diagfmt.FormatASTPretty(out, result.Program)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func emitDir(out, errOut io.Writer, format string, fs *source.FileSet, results []driver.ParseDirResult) error {
	failed := false
	// Результаты уже отсортированы по пути
	for _, r := range results {
		if r.Bag.HasErrors() {
			failed = true
		}
		if settings.timings && r.Result != nil {
			if settings.diagFormat == "json" {
				r.Result.AttachTimings()
			} else {
				fmt.Fprintf(errOut, "== %s ==\n%s", r.Path, r.Result.Timing.Summary())
			}
		}
		if err := printDiagnostics(errOut, r.Bag, fs); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		programs := make([]diagfmt.ProgramJSON, 0, len(results))
		for _, r := range results {
			if r.Result == nil {
				continue
			}
			programs = append(programs, diagfmt.BuildProgramJSON(r.Result.Program, fs, r.Path))
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(programs); err != nil {
			return err
		}
	default:
		for idx, r := range results {
			if !settings.quiet {
				if _, err := fmt.Fprintf(out, "== %s ==\n", r.Path); err != nil {
					return err
				}
			}
			if r.Result != nil {
				var err error
				if format == "tree" {
					err = diagfmt.FormatASTTree(out, r.Result.Program, fs)
				} else {
					err = diagfmt.FormatASTPretty(out, r.Result.Program)
				}
				if err != nil {
					return err
				}
			}
			if !settings.quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
		}
	}

	if failed {
		return errDiagnostics
	}
	return nil
}
