package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"monkey/internal/diag"
	"monkey/internal/diagfmt"
	"monkey/internal/source"
)

// errDiagnostics сигнализирует main, что диагностики уже напечатаны.
var errDiagnostics = errors.New("diagnostics reported")

// printDiagnostics печатает bag в stderr выбранным форматом.
// Пустой bag ничего не печатает.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	switch settings.diagFormat {
	case "short":
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs)+"\n")
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              settings.maxDiagnostics,
		})
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     settings.useColor(os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
		if dropped := bag.Dropped(); dropped > 0 {
			fmt.Fprintf(w, "... %d more diagnostics suppressed (--max-diagnostics)\n", dropped)
		}
		return nil
	}
}
