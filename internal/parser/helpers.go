package parser

import (
	"fmt"

	"monkey/internal/diag"
	"monkey/internal/source"
	"monkey/internal/token"
)

func (p *Parser) peekError(want token.Kind) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", want, p.peek.Kind)
	p.report(expectCode(want), p.peek.Span, msg)
}

func (p *Parser) noPrefixError(tok token.Token) {
	msg := fmt.Sprintf("no prefix parse function for %s found", tok.Kind)
	p.report(diag.SynExpectExpression, tok.Span, msg)
}

func expectCode(want token.Kind) diag.Code {
	switch want {
	case token.Ident:
		return diag.SynExpectIdentifier
	case token.RParen:
		return diag.SynUnclosedParen
	case token.RBrace:
		return diag.SynUnclosedBrace
	default:
		return diag.SynUnexpectedToken
	}
}

// report записывает сообщение и структурированную диагностику.
// После MaxErrors всё последующее отбрасывается.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.MaxErrors != 0 && p.count >= p.opts.MaxErrors {
		return
	}
	p.count++
	p.errors = append(p.errors, msg)
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
