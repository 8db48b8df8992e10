package ast

import (
	"monkey/internal/source"
	"monkey/internal/token"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentData]
	Ints     *Arena[IntData]
	Bools    *Arena[BoolData]
	Prefixes *Arena[PrefixData]
	Infixes  *Arena[InfixData]
	Ifs      *Arena[IfData]
	Funcs    *Arena[FuncData]
	Calls    *Arena[CallData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	small := max(capHint/8, 1)
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentData](capHint),
		Ints:     NewArena[IntData](capHint),
		Bools:    NewArena[BoolData](small),
		Prefixes: NewArena[PrefixData](small),
		Infixes:  NewArena[InfixData](capHint),
		Ifs:      NewArena[IfData](small),
		Funcs:    NewArena[FuncData](small),
		Calls:    NewArena[CallData](small),
	}
}

func (e *Exprs) new(kind ExprKind, tok token.Token, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Token:   tok,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(tok token.Token) ExprID {
	payload := e.Idents.Allocate(IdentData{Name: tok.Literal})
	return e.new(ExprIdent, tok, tok.Span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*IdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// NewInt creates an integer literal; tok keeps the source digits.
func (e *Exprs) NewInt(tok token.Token, value int64) ExprID {
	payload := e.Ints.Allocate(IntData{Value: value})
	return e.new(ExprInt, tok, tok.Span, PayloadID(payload))
}

func (e *Exprs) Int(id ExprID) (*IntData, bool) {
	p, ok := e.payload(id, ExprInt)
	if !ok {
		return nil, false
	}
	return e.Ints.Get(p), true
}

func (e *Exprs) NewBool(tok token.Token, value bool) ExprID {
	payload := e.Bools.Allocate(BoolData{Value: value})
	return e.new(ExprBool, tok, tok.Span, PayloadID(payload))
}

func (e *Exprs) Bool(id ExprID) (*BoolData, bool) {
	p, ok := e.payload(id, ExprBool)
	if !ok {
		return nil, false
	}
	return e.Bools.Get(p), true
}

// NewPrefix creates a prefix expression; span runs from the operator to the operand end.
func (e *Exprs) NewPrefix(op token.Token, operand ExprID) ExprID {
	span := op.Span
	if x := e.Get(operand); x != nil {
		span = span.Cover(x.Span)
	}
	payload := e.Prefixes.Allocate(PrefixData{Op: op.Kind, Operand: operand})
	return e.new(ExprPrefix, op, span, PayloadID(payload))
}

func (e *Exprs) Prefix(id ExprID) (*PrefixData, bool) {
	p, ok := e.payload(id, ExprPrefix)
	if !ok {
		return nil, false
	}
	return e.Prefixes.Get(p), true
}

// NewInfix creates a binary expression covering both operands.
func (e *Exprs) NewInfix(op token.Token, left, right ExprID) ExprID {
	span := op.Span
	if l := e.Get(left); l != nil {
		span = span.Cover(l.Span)
	}
	if r := e.Get(right); r != nil {
		span = span.Cover(r.Span)
	}
	payload := e.Infixes.Allocate(InfixData{Op: op.Kind, Left: left, Right: right})
	return e.new(ExprInfix, op, span, PayloadID(payload))
}

func (e *Exprs) Infix(id ExprID) (*InfixData, bool) {
	p, ok := e.payload(id, ExprInfix)
	if !ok {
		return nil, false
	}
	return e.Infixes.Get(p), true
}

func (e *Exprs) NewIf(kw token.Token, span source.Span, cond ExprID, then, els StmtID) ExprID {
	payload := e.Ifs.Allocate(IfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, kw, span, PayloadID(payload))
}

func (e *Exprs) If(id ExprID) (*IfData, bool) {
	p, ok := e.payload(id, ExprIf)
	if !ok {
		return nil, false
	}
	return e.Ifs.Get(p), true
}

func (e *Exprs) NewFunc(kw token.Token, span source.Span, params []Ident, body StmtID) ExprID {
	payload := e.Funcs.Allocate(FuncData{Params: params, Body: body})
	return e.new(ExprFunc, kw, span, PayloadID(payload))
}

func (e *Exprs) Func(id ExprID) (*FuncData, bool) {
	p, ok := e.payload(id, ExprFunc)
	if !ok {
		return nil, false
	}
	return e.Funcs.Get(p), true
}

// NewCall creates a call; lparen is the '(' token opening the argument list.
func (e *Exprs) NewCall(lparen token.Token, span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(CallData{Callee: callee, Args: args})
	return e.new(ExprCall, lparen, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*CallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}
