package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2006
	SynUnclosedBrace    Code = 2007
	SynExpectIdentifier Code = 2102
	SynExpectExpression Code = 2203
	SynBadIntLiteral    Code = 2208
	SynTooManyErrors    Code = 2999

	// I/O
	IOLoadFileError Code = 4001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	LexInfo:             "Lexical information",
	LexUnknownChar:      "Unknown character",
	SynInfo:             "Syntax information",
	SynUnexpectedToken:  "Unexpected token",
	SynUnclosedParen:    "Unclosed parenthesis",
	SynUnclosedBrace:    "Unclosed brace",
	SynExpectIdentifier: "Expected identifier",
	SynExpectExpression: "Expected expression",
	SynBadIntLiteral:    "Integer literal out of range",
	SynTooManyErrors:    "Too many errors",
	IOLoadFileError:     "Failed to load file",
	ObsInfo:             "Observability information",
	ObsTimings:          "Timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
