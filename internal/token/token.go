package token

import (
	"strconv"

	"monkey/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind    Kind
	Literal string
	Span    source.Span
}

// New builds a token without location, mostly for tests and synthesized nodes.
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// Same reports whether two tokens have equal kind and literal, ignoring location.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Literal == other.Literal
}

// IsLiteral reports whether the token is an integer or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Int, True, False:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Assign, Plus, Minus, Bang, Asterisk, Slash, Lt, Gt, Eq, NotEq,
		Comma, Semicolon, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case Function, Let, True, False, If, Else, Return:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	return t.Kind.String() + " " + strconv.Quote(t.Literal)
}
