package ast

// Node references either a statement or an expression of a Program.
// Exactly one of the IDs is valid.
type Node struct {
	Stmt StmtID
	Expr ExprID
}

func (n Node) IsStmt() bool { return n.Stmt.IsValid() }

// Inspect traverses the program depth-first in source order, calling fn for
// each node. If fn returns false the children of that node are skipped.
func Inspect(p *Program, fn func(Node) bool) {
	w := walker{b: p.Builder, fn: fn}
	for _, id := range p.Stmts {
		w.stmt(id)
	}
}

type walker struct {
	b  *Builder
	fn func(Node) bool
}

func (w walker) stmt(id StmtID) {
	st := w.b.Stmts.Get(id)
	if st == nil || !w.fn(Node{Stmt: id}) {
		return
	}
	switch st.Kind {
	case StmtLet:
		data, _ := w.b.Stmts.Let(id)
		w.expr(data.Value)
	case StmtReturn:
		data, _ := w.b.Stmts.Return(id)
		w.expr(data.Value)
	case StmtExpr:
		data, _ := w.b.Stmts.ExprStmt(id)
		w.expr(data.Value)
	case StmtBlock:
		data, _ := w.b.Stmts.Block(id)
		for _, s := range data.Stmts {
			w.stmt(s)
		}
	}
}

func (w walker) expr(id ExprID) {
	x := w.b.Exprs.Get(id)
	if x == nil || !w.fn(Node{Expr: id}) {
		return
	}
	switch x.Kind {
	case ExprIdent, ExprInt, ExprBool:
	case ExprPrefix:
		data, _ := w.b.Exprs.Prefix(id)
		w.expr(data.Operand)
	case ExprInfix:
		data, _ := w.b.Exprs.Infix(id)
		w.expr(data.Left)
		w.expr(data.Right)
	case ExprIf:
		data, _ := w.b.Exprs.If(id)
		w.expr(data.Cond)
		w.stmt(data.Then)
		w.stmt(data.Else)
	case ExprFunc:
		data, _ := w.b.Exprs.Func(id)
		w.stmt(data.Body)
	case ExprCall:
		data, _ := w.b.Exprs.Call(id)
		w.expr(data.Callee)
		for _, a := range data.Args {
			w.expr(a)
		}
	}
}
