package ast

import "monkey/internal/source"

// Program is the root of a parsed source: an ordered list of top-level
// statements plus the builder that owns every node they reference.
type Program struct {
	Builder *Builder
	Stmts   []StmtID
}

func NewProgram(b *Builder) *Program {
	if b == nil {
		b = NewBuilder(Hints{})
	}
	return &Program{Builder: b}
}

// Push appends a top-level statement.
func (p *Program) Push(id StmtID) {
	p.Stmts = append(p.Stmts, id)
}

// Span covers every top-level statement; zero for an empty program.
func (p *Program) Span() source.Span {
	var sp source.Span
	for i, id := range p.Stmts {
		st := p.Builder.Stmts.Get(id)
		if i == 0 {
			sp = st.Span
			continue
		}
		sp = sp.Cover(st.Span)
	}
	return sp
}

// TokenLiteral returns the literal of the token the program starts with.
func (p *Program) TokenLiteral() string {
	if len(p.Stmts) == 0 {
		return ""
	}
	return p.StmtTokenLiteral(p.Stmts[0])
}

// StmtTokenLiteral returns the literal of the token a statement was built from.
func (p *Program) StmtTokenLiteral(id StmtID) string {
	if st := p.Builder.Stmts.Get(id); st != nil {
		return st.Token.Literal
	}
	return ""
}

// ExprTokenLiteral returns the literal of the token an expression was built from.
func (p *Program) ExprTokenLiteral(id ExprID) string {
	if x := p.Builder.Exprs.Get(id); x != nil {
		return x.Token.Literal
	}
	return ""
}
