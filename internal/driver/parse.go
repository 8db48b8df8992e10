package driver

import (
	"context"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/observ"
	"monkey/internal/parser"
	"monkey/internal/source"
	"monkey/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	// Errors: плоские сообщения парсера в порядке появления.
	Errors []string
	Bag    *diag.Bag
	Timing *observ.Report
}

// Parse loads a file from disk and parses it.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()

	loadIdx := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return parseFile(ctx, fs, fs.Get(fileID), maxDiagnostics, timer)
}

// ParseSource parses in-memory text registered under name.
func ParseSource(ctx context.Context, name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(ctx, fs, fs.Get(fileID), maxDiagnostics, observ.NewTimer())
}

func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int, timer *observ.Timer) (*ParseResult, error) {
	maxErrors, err := maxErrorsFor(maxDiagnostics)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)

	// Лексер без репортера: лексические аномалии видны только через парсер
	lx := lexer.New(file, lexer.Options{})
	opts := parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	}

	var result parser.Result
	parseIdx := timer.Begin("parse")
	result = parser.ParseFile(ctx, lx, opts)
	timer.End(parseIdx, strconv.Itoa(len(result.Program.Stmts))+" stmts")

	report := timer.Report()
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: result.Program,
		Errors:  result.Errors,
		Bag:     bag,
		Timing:  &report,
	}, nil
}

// AttachTimings appends the OBS6001 timing diagnostic to the result bag.
func (r *ParseResult) AttachTimings() {
	if r == nil || r.Timing == nil {
		return
	}
	path := ""
	if r.File != nil {
		path = r.File.Path
	}
	appendTimingDiagnostic(r.Bag, timingPayload{
		Kind:    "parse",
		Path:    path,
		TotalMS: r.Timing.TotalMS,
		Phases:  r.Timing.Phases,
	})
}

func maxErrorsFor(maxDiagnostics int) (uint, error) {
	if maxDiagnostics <= 0 {
		return 0, nil
	}
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return 0, fmt.Errorf("max diagnostics: %w", err)
	}
	return maxErrors, nil
}

// tracedPass opens a pass-scoped span under the span carried by ctx.
func tracedPass(ctx context.Context, name string) (context.Context, *trace.Span) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, name, trace.CurrentSpan(ctx).SpanID)
	return trace.WithSpan(ctx, span), span
}
