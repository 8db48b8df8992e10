package ast

type Hints struct{ Stmts, Exprs uint }

// Builder owns every node of one parsed program.
type Builder struct {
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 7
	}
	return &Builder{
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}
