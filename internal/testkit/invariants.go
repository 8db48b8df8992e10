package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"monkey/internal/ast"
	"monkey/internal/source"
)

// CheckTreeInvariants runs the structural invariants on a parsed program:
// 1) every reachable node is reached exactly once (the AST is a tree)
// 2) every span points at sf and lies within its content
// 3) every child span lies within its parent span
// 4) payloads match the kind tag and required children are present
func CheckTreeInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || prog.Builder == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := &checker{
		b:     prog.Builder,
		file:  sf.ID,
		size:  lenContent,
		stmts: make(map[ast.StmtID]struct{}),
		exprs: make(map[ast.ExprID]struct{}),
	}
	root := source.Span{File: sf.ID, Start: 0, End: lenContent}
	for _, id := range prog.Stmts {
		if err := c.stmt(id, root); err != nil {
			return err
		}
	}
	return nil
}

type checker struct {
	b     *ast.Builder
	file  source.FileID
	size  uint32
	stmts map[ast.StmtID]struct{}
	exprs map[ast.ExprID]struct{}
}

func (c *checker) span(sp, parent source.Span, what string) error {
	if sp.File != c.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, c.file)
	}
	if sp.Start > sp.End || sp.End > c.size {
		return fmt.Errorf("%s span %v outside content (len %d)", what, sp, c.size)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%s span %v escapes parent %v", what, sp, parent)
	}
	return nil
}

func (c *checker) stmt(id ast.StmtID, parent source.Span) error {
	st := c.b.Stmts.Get(id)
	if st == nil {
		return fmt.Errorf("dangling stmt id=%d", id)
	}
	if _, seen := c.stmts[id]; seen {
		return fmt.Errorf("stmt id=%d reached twice", id)
	}
	c.stmts[id] = struct{}{}
	if err := c.span(st.Span, parent, st.Kind.String()); err != nil {
		return err
	}

	switch st.Kind {
	case ast.StmtLet:
		data, ok := c.b.Stmts.Let(id)
		if !ok {
			return fmt.Errorf("let id=%d without payload", id)
		}
		if data.Name.Name == "" {
			return fmt.Errorf("let id=%d has empty name", id)
		}
		if err := c.span(data.Name.Span, st.Span, "let name"); err != nil {
			return err
		}
		return c.expr(data.Value, st.Span)
	case ast.StmtReturn:
		data, ok := c.b.Stmts.Return(id)
		if !ok {
			return fmt.Errorf("return id=%d without payload", id)
		}
		return c.expr(data.Value, st.Span)
	case ast.StmtExpr:
		data, ok := c.b.Stmts.ExprStmt(id)
		if !ok {
			return fmt.Errorf("expression statement id=%d without payload", id)
		}
		return c.expr(data.Value, st.Span)
	case ast.StmtBlock:
		data, ok := c.b.Stmts.Block(id)
		if !ok {
			return fmt.Errorf("block id=%d without payload", id)
		}
		for _, s := range data.Stmts {
			if err := c.stmt(s, st.Span); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("stmt id=%d has unknown kind %d", id, st.Kind)
	}
}

func (c *checker) expr(id ast.ExprID, parent source.Span) error {
	x := c.b.Exprs.Get(id)
	if x == nil {
		return fmt.Errorf("dangling expr id=%d", id)
	}
	if _, seen := c.exprs[id]; seen {
		return fmt.Errorf("expr id=%d reached twice", id)
	}
	c.exprs[id] = struct{}{}
	if err := c.span(x.Span, parent, x.Kind.String()); err != nil {
		return err
	}

	switch x.Kind {
	case ast.ExprIdent:
		if _, ok := c.b.Exprs.Ident(id); !ok {
			return fmt.Errorf("ident id=%d without payload", id)
		}
	case ast.ExprInt:
		if _, ok := c.b.Exprs.Int(id); !ok {
			return fmt.Errorf("int id=%d without payload", id)
		}
	case ast.ExprBool:
		if _, ok := c.b.Exprs.Bool(id); !ok {
			return fmt.Errorf("bool id=%d without payload", id)
		}
	case ast.ExprPrefix:
		data, ok := c.b.Exprs.Prefix(id)
		if !ok {
			return fmt.Errorf("prefix id=%d without payload", id)
		}
		return c.expr(data.Operand, x.Span)
	case ast.ExprInfix:
		data, ok := c.b.Exprs.Infix(id)
		if !ok {
			return fmt.Errorf("infix id=%d without payload", id)
		}
		if err := c.expr(data.Left, x.Span); err != nil {
			return err
		}
		return c.expr(data.Right, x.Span)
	case ast.ExprIf:
		data, ok := c.b.Exprs.If(id)
		if !ok {
			return fmt.Errorf("if id=%d without payload", id)
		}
		if err := c.expr(data.Cond, x.Span); err != nil {
			return err
		}
		if err := c.stmt(data.Then, x.Span); err != nil {
			return err
		}
		if data.Else.IsValid() {
			return c.stmt(data.Else, x.Span)
		}
	case ast.ExprFunc:
		data, ok := c.b.Exprs.Func(id)
		if !ok {
			return fmt.Errorf("fn id=%d without payload", id)
		}
		for _, prm := range data.Params {
			if err := c.span(prm.Span, x.Span, "param "+prm.Name); err != nil {
				return err
			}
		}
		return c.stmt(data.Body, x.Span)
	case ast.ExprCall:
		data, ok := c.b.Exprs.Call(id)
		if !ok {
			return fmt.Errorf("call id=%d without payload", id)
		}
		if err := c.expr(data.Callee, x.Span); err != nil {
			return err
		}
		for _, a := range data.Args {
			if err := c.expr(a, x.Span); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("expr id=%d has unknown kind %d", id, x.Kind)
	}
	return nil
}
