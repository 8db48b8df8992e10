package lexer

import (
	"monkey/internal/source"
	"monkey/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize wraps raw source text in a virtual file and returns a lexer over it.
func Tokenize(src string) *Lexer {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return New(fs.Get(id), Options{})
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Ch
	switch {
	case isLetter(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// All drains the lexer and returns every token, EOF included.
func (lx *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isWhitespace(lx.cursor.Ch) {
		lx.cursor.Advance()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
