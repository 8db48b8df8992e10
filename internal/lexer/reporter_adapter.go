package lexer

import "monkey/internal/diag"

// ReporterAdapter адаптирует diag.Bag для использования в лексере
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards diagnostics to the adapter's bag,
// dropping repeats at the same position.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
}
