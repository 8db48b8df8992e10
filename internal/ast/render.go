package ast

import (
	"strconv"
	"strings"
)

// String renders the program in canonical form, one statement per line.
// The output re-parses to a tree with the same rendering.
func (p *Program) String() string {
	var sb strings.Builder
	r := renderer{b: p.Builder, sb: &sb}
	r.stmtList(p.Stmts, "\n")
	return sb.String()
}

// RenderStmt renders a single statement.
func (p *Program) RenderStmt(id StmtID) string {
	var sb strings.Builder
	renderer{b: p.Builder, sb: &sb}.stmt(id)
	return sb.String()
}

// RenderExpr renders a single expression.
func (p *Program) RenderExpr(id ExprID) string {
	var sb strings.Builder
	renderer{b: p.Builder, sb: &sb}.expr(id)
	return sb.String()
}

type renderer struct {
	b  *Builder
	sb *strings.Builder
}

// stmtList пишет последовательность; не последнее выражение-утверждение получает ';',
// иначе "x\n(-y)" перечитается как вызов.
func (r renderer) stmtList(ids []StmtID, sep string) {
	for i, id := range ids {
		if i > 0 {
			r.sb.WriteString(sep)
		}
		r.stmt(id)
		if i < len(ids)-1 {
			if st := r.b.Stmts.Get(id); st != nil && st.Kind == StmtExpr {
				r.sb.WriteByte(';')
			}
		}
	}
}

func (r renderer) stmt(id StmtID) {
	st := r.b.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case StmtLet:
		data, _ := r.b.Stmts.Let(id)
		r.sb.WriteString("let ")
		r.sb.WriteString(data.Name.Name)
		r.sb.WriteString(" = ")
		r.expr(data.Value)
		r.sb.WriteByte(';')
	case StmtReturn:
		data, _ := r.b.Stmts.Return(id)
		r.sb.WriteString("return ")
		r.expr(data.Value)
		r.sb.WriteByte(';')
	case StmtExpr:
		data, _ := r.b.Stmts.ExprStmt(id)
		r.expr(data.Value)
	case StmtBlock:
		data, _ := r.b.Stmts.Block(id)
		if len(data.Stmts) == 0 {
			r.sb.WriteString("{ }")
			return
		}
		r.sb.WriteString("{ ")
		r.stmtList(data.Stmts, " ")
		r.sb.WriteString(" }")
	}
}

func (r renderer) expr(id ExprID) {
	x := r.b.Exprs.Get(id)
	if x == nil {
		return
	}
	switch x.Kind {
	case ExprIdent:
		data, _ := r.b.Exprs.Ident(id)
		r.sb.WriteString(data.Name)
	case ExprInt:
		if x.Token.Literal != "" {
			r.sb.WriteString(x.Token.Literal)
			return
		}
		data, _ := r.b.Exprs.Int(id)
		r.sb.WriteString(strconv.FormatInt(data.Value, 10))
	case ExprBool:
		data, _ := r.b.Exprs.Bool(id)
		r.sb.WriteString(strconv.FormatBool(data.Value))
	case ExprPrefix:
		data, _ := r.b.Exprs.Prefix(id)
		r.sb.WriteByte('(')
		r.sb.WriteString(OpSymbol(data.Op))
		r.expr(data.Operand)
		r.sb.WriteByte(')')
	case ExprInfix:
		data, _ := r.b.Exprs.Infix(id)
		r.sb.WriteByte('(')
		r.expr(data.Left)
		r.sb.WriteByte(' ')
		r.sb.WriteString(OpSymbol(data.Op))
		r.sb.WriteByte(' ')
		r.expr(data.Right)
		r.sb.WriteByte(')')
	case ExprIf:
		data, _ := r.b.Exprs.If(id)
		r.sb.WriteString("if (")
		r.expr(data.Cond)
		r.sb.WriteString(") ")
		r.stmt(data.Then)
		if data.Else.IsValid() {
			r.sb.WriteString(" else ")
			r.stmt(data.Else)
		}
	case ExprFunc:
		data, _ := r.b.Exprs.Func(id)
		r.sb.WriteString("fn(")
		for i, p := range data.Params {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			r.sb.WriteString(p.Name)
		}
		r.sb.WriteString(") ")
		r.stmt(data.Body)
	case ExprCall:
		data, _ := r.b.Exprs.Call(id)
		r.expr(data.Callee)
		r.sb.WriteByte('(')
		for i, a := range data.Args {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			r.expr(a)
		}
		r.sb.WriteByte(')')
	}
}
