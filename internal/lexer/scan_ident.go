package lexer

import (
	"monkey/internal/token"
)

// scanIdentOrKeyword сканирует максимальную серию букв и '_' и проверяет через LookupIdent.
// Ключевые слова регистрозависимые. Literal: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isLetter(lx.cursor.Ch) {
		lx.cursor.Advance()
	}
	text := lx.cursor.Text(start)
	return token.Token{Kind: token.LookupIdent(text), Literal: text, Span: lx.cursor.SpanFrom(start)}
}

// scanNumber reads a run of decimal digits. Range is checked by the parser.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDigit(lx.cursor.Ch) {
		lx.cursor.Advance()
	}
	return token.Token{Kind: token.Int, Literal: lx.cursor.Text(start), Span: lx.cursor.SpanFrom(start)}
}
