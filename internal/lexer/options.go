package lexer

import (
	"fmt"

	"monkey/internal/diag"
	"monkey/internal/source"
)

type Options struct {
	// Reporter может быть nil: тогда ILLEGAL токены просто отдаются парсеру.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) reportUnknown(sp source.Span, lit string) {
	lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", lit))
}
