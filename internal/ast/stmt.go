package ast

import (
	"monkey/internal/source"
	"monkey/internal/token"
)

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtReturn
	StmtExpr
	StmtBlock
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtReturn:
		return "Return"
	case StmtExpr:
		return "ExprStmt"
	case StmtBlock:
		return "Block"
	}
	return "Stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Token   token.Token
	Span    source.Span
	Payload PayloadID
}

// LetData: имя хранится по значению.
type LetData struct {
	Name  Ident
	Value ExprID
}

type ReturnData struct {
	Value ExprID
}

type ExprStmtData struct {
	Value ExprID
}

type BlockData struct {
	Stmts []StmtID
}

type Stmts struct {
	Arena   *Arena[Stmt]
	Lets    *Arena[LetData]
	Returns *Arena[ReturnData]
	Exprs   *Arena[ExprStmtData]
	Blocks  *Arena[BlockData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[LetData](capHint),
		Returns: NewArena[ReturnData](capHint / 4),
		Exprs:   NewArena[ExprStmtData](capHint),
		Blocks:  NewArena[BlockData](capHint / 4),
	}
}

func (s *Stmts) new(kind StmtKind, tok token.Token, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Token:   tok,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewLet(kw token.Token, span source.Span, name Ident, value ExprID) StmtID {
	payload := s.Lets.Allocate(LetData{Name: name, Value: value})
	return s.new(StmtLet, kw, span, PayloadID(payload))
}

func (s *Stmts) Let(id StmtID) (*LetData, bool) {
	p, ok := s.payload(id, StmtLet)
	if !ok {
		return nil, false
	}
	return s.Lets.Get(p), true
}

func (s *Stmts) NewReturn(kw token.Token, span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnData{Value: value})
	return s.new(StmtReturn, kw, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	p, ok := s.payload(id, StmtReturn)
	if !ok {
		return nil, false
	}
	return s.Returns.Get(p), true
}

// NewExprStmt wraps an expression; first is the token the statement started with.
func (s *Stmts) NewExprStmt(first token.Token, span source.Span, value ExprID) StmtID {
	payload := s.Exprs.Allocate(ExprStmtData{Value: value})
	return s.new(StmtExpr, first, span, PayloadID(payload))
}

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.Exprs.Get(p), true
}

func (s *Stmts) NewBlock(lbrace token.Token, span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(BlockData{Stmts: stmts})
	return s.new(StmtBlock, lbrace, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*BlockData, bool) {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}
