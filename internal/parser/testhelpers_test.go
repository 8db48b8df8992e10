package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/parser"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseOK разбирает вход и падает, если есть диагностики.
func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, errs := parser.Parse(lexer.Tokenize(input))
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics for %q:\n  %s", input, strings.Join(errs, "\n  "))
	}
	return prog
}

// onlyExpr returns the expression of the single top-level expression statement.
func onlyExpr(t *testing.T, prog *ast.Program) ast.ExprID {
	t.Helper()
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d: %s", len(prog.Stmts), prog.String())
	}
	data, ok := prog.Builder.Stmts.ExprStmt(prog.Stmts[0])
	if !ok {
		t.Fatalf("expected expression statement, got %v", prog.Builder.Stmts.Get(prog.Stmts[0]).Kind)
	}
	return data.Value
}
