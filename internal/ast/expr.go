package ast

import (
	"monkey/internal/source"
	"monkey/internal/token"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprInt represents an integer literal.
	ExprInt
	// ExprBool represents a boolean literal.
	ExprBool
	// ExprPrefix represents a prefix operator application (!x, -x).
	ExprPrefix
	// ExprInfix represents a binary operator application.
	ExprInfix
	ExprIf
	ExprFunc
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprInt:
		return "Int"
	case ExprBool:
		return "Bool"
	case ExprPrefix:
		return "Prefix"
	case ExprInfix:
		return "Infix"
	case ExprIf:
		return "If"
	case ExprFunc:
		return "Func"
	case ExprCall:
		return "Call"
	}
	return "Expr(?)"
}

// Expr represents an expression node in the AST.
// Token is the token the node was built from: the operator for prefix and
// infix forms, '(' for calls, the keyword for if and fn.
type Expr struct {
	Kind    ExprKind
	Token   token.Token
	Span    source.Span
	Payload PayloadID
}

type IdentData struct {
	Name string
}

type IntData struct {
	Value int64
}

type BoolData struct {
	Value bool
}

type PrefixData struct {
	Op      token.Kind
	Operand ExprID
}

type InfixData struct {
	Op    token.Kind
	Left  ExprID
	Right ExprID
}

// IfData: Else == NoStmtID, если ветки else нет.
type IfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

type FuncData struct {
	Params []Ident
	Body   StmtID
}

type CallData struct {
	Callee ExprID
	Args   []ExprID
}

var opSymbols = map[token.Kind]string{
	token.Plus:     "+",
	token.Minus:    "-",
	token.Bang:     "!",
	token.Asterisk: "*",
	token.Slash:    "/",
	token.Lt:       "<",
	token.Gt:       ">",
	token.Eq:       "==",
	token.NotEq:    "!=",
}

// OpSymbol returns the source spelling of an operator kind.
func OpSymbol(k token.Kind) string {
	if s, ok := opSymbols[k]; ok {
		return s
	}
	return k.String()
}
