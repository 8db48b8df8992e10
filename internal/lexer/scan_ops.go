package lexer

import (
	"monkey/internal/token"
)

var singleCharTokens = map[rune]token.Kind{
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'!': token.Bang,
	'*': token.Asterisk,
	'/': token.Slash,
	'<': token.Lt,
	'>': token.Gt,
	',': token.Comma,
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
}

// scanOperatorOrPunct распознаёт операторы; "==" и "!=" решаются заглядыванием вперёд.
// Всё остальное: ровно один ILLEGAL токен на руну.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Ch

	kind, ok := singleCharTokens[ch]
	if (ch == '=' || ch == '!') && lx.cursor.PeekRune() == '=' {
		lx.cursor.Advance()
		kind = token.Eq
		if ch == '!' {
			kind = token.NotEq
		}
	}
	lx.cursor.Advance()

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(start)
	if !ok {
		lx.reportUnknown(sp, text)
		return token.Token{Kind: token.Illegal, Literal: text, Span: sp}
	}
	return token.Token{Kind: kind, Literal: text, Span: sp}
}
