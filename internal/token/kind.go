package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks a character the lexer does not recognise.
	Illegal Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Int represents a decimal integer literal.
	Int

	Assign    // =
	Plus      // +
	Minus     // -
	Bang      // !
	Asterisk  // *
	Slash     // /
	Lt        // <
	Gt        // >
	Eq        // ==
	NotEq     // !=
	Comma     // ,
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }

	// Function represents the 'fn' keyword.
	Function
	// Let represents the 'let' keyword.
	Let
	// True represents the 'true' keyword.
	True
	// False represents the 'false' keyword.
	False
	// If represents the 'if' keyword.
	If
	// Else represents the 'else' keyword.
	Else
	// Return represents the 'return' keyword.
	Return

	kindCount
)

var kindNames = [...]string{
	Illegal:   "ILLEGAL",
	EOF:       "EOF",
	Ident:     "IDENT",
	Int:       "INT",
	Assign:    "ASSIGN",
	Plus:      "PLUS",
	Minus:     "MINUS",
	Bang:      "BANG",
	Asterisk:  "ASTERISK",
	Slash:     "SLASH",
	Lt:        "LT",
	Gt:        "GT",
	Eq:        "EQ",
	NotEq:     "NOT_EQ",
	Comma:     "COMMA",
	Semicolon: "SEMICOLON",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	LBrace:    "LBRACE",
	RBrace:    "RBRACE",
	Function:  "FUNCTION",
	Let:       "LET",
	True:      "TRUE",
	False:     "FALSE",
	If:        "IF",
	Else:      "ELSE",
	Return:    "RETURN",
}

// String returns the upper-case name used in diagnostics ("ASSIGN", "NOT_EQ", ...).
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }
