package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"monkey/internal/ast"
	"monkey/internal/source"
)

// astNode: промежуточное представление узла для дерева и JSON.
type astNode struct {
	Role     string     `json:"role,omitempty"`
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Span     string     `json:"span"`
	Children []*astNode `json:"children,omitempty"`
}

type nodeBuilder struct {
	b  *ast.Builder
	fs *source.FileSet
}

func (nb nodeBuilder) span(sp source.Span) string {
	if nb.fs == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := nb.fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (nb nodeBuilder) stmt(role string, id ast.StmtID) *astNode {
	st := nb.b.Stmts.Get(id)
	if st == nil {
		return &astNode{Role: role, Kind: "<nil>"}
	}
	n := &astNode{Role: role, Kind: st.Kind.String(), Span: nb.span(st.Span)}
	switch st.Kind {
	case ast.StmtLet:
		data, _ := nb.b.Stmts.Let(id)
		n.Text = data.Name.Name
		n.Children = append(n.Children, nb.expr("value", data.Value))
	case ast.StmtReturn:
		data, _ := nb.b.Stmts.Return(id)
		n.Children = append(n.Children, nb.expr("value", data.Value))
	case ast.StmtExpr:
		data, _ := nb.b.Stmts.ExprStmt(id)
		n.Children = append(n.Children, nb.expr("value", data.Value))
	case ast.StmtBlock:
		data, _ := nb.b.Stmts.Block(id)
		for _, s := range data.Stmts {
			n.Children = append(n.Children, nb.stmt("", s))
		}
	}
	return n
}

func (nb nodeBuilder) expr(role string, id ast.ExprID) *astNode {
	x := nb.b.Exprs.Get(id)
	if x == nil {
		return &astNode{Role: role, Kind: "<nil>"}
	}
	n := &astNode{Role: role, Kind: x.Kind.String(), Span: nb.span(x.Span)}
	switch x.Kind {
	case ast.ExprIdent:
		data, _ := nb.b.Exprs.Ident(id)
		n.Text = data.Name
	case ast.ExprInt:
		data, _ := nb.b.Exprs.Int(id)
		n.Text = strconv.FormatInt(data.Value, 10)
	case ast.ExprBool:
		data, _ := nb.b.Exprs.Bool(id)
		n.Text = strconv.FormatBool(data.Value)
	case ast.ExprPrefix:
		data, _ := nb.b.Exprs.Prefix(id)
		n.Text = ast.OpSymbol(data.Op)
		n.Children = append(n.Children, nb.expr("operand", data.Operand))
	case ast.ExprInfix:
		data, _ := nb.b.Exprs.Infix(id)
		n.Text = ast.OpSymbol(data.Op)
		n.Children = append(n.Children, nb.expr("left", data.Left), nb.expr("right", data.Right))
	case ast.ExprIf:
		data, _ := nb.b.Exprs.If(id)
		n.Children = append(n.Children, nb.expr("cond", data.Cond), nb.stmt("then", data.Then))
		if data.Else.IsValid() {
			n.Children = append(n.Children, nb.stmt("else", data.Else))
		}
	case ast.ExprFunc:
		data, _ := nb.b.Exprs.Func(id)
		names := make([]string, len(data.Params))
		for i, p := range data.Params {
			names[i] = p.Name
		}
		n.Text = strings.Join(names, ", ")
		n.Children = append(n.Children, nb.stmt("body", data.Body))
	case ast.ExprCall:
		data, _ := nb.b.Exprs.Call(id)
		n.Children = append(n.Children, nb.expr("callee", data.Callee))
		for _, a := range data.Args {
			n.Children = append(n.Children, nb.expr("arg", a))
		}
	}
	return n
}

func buildProgramNodes(prog *ast.Program, fs *source.FileSet) []*astNode {
	nb := nodeBuilder{b: prog.Builder, fs: fs}
	nodes := make([]*astNode, 0, len(prog.Stmts))
	for _, id := range prog.Stmts {
		nodes = append(nodes, nb.stmt("", id))
	}
	return nodes
}

// FormatASTPretty печатает каноническую форму программы.
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	text := prog.String()
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// FormatASTTree печатает программу деревом с отступами:
//
//	Let x (1:1-1:11)
//	└─ value: Int 5 (1:9-1:10)
func FormatASTTree(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	var sb strings.Builder
	for _, n := range buildProgramNodes(prog, fs) {
		writeTreeNode(&sb, n, "", "")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeNode(sb *strings.Builder, n *astNode, prefix, branch string) {
	sb.WriteString(prefix)
	sb.WriteString(branch)
	if n.Role != "" {
		sb.WriteString(n.Role)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Kind)
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Text)
	}
	if n.Span != "" {
		fmt.Fprintf(sb, " (%s)", n.Span)
	}
	sb.WriteByte('\n')

	childPrefix := prefix
	switch branch {
	case "├─ ":
		childPrefix += "│  "
	case "└─ ":
		childPrefix += "   "
	}
	for i, c := range n.Children {
		b := "├─ "
		if i == len(n.Children)-1 {
			b = "└─ "
		}
		writeTreeNode(sb, c, childPrefix, b)
	}
}

// ProgramJSON: корневая структура JSON-вывода AST.
type ProgramJSON struct {
	File       string     `json:"file,omitempty"`
	Canonical  string     `json:"canonical"`
	Statements []*astNode `json:"statements"`
}

// BuildProgramJSON собирает JSON-представление программы без сериализации.
func BuildProgramJSON(prog *ast.Program, fs *source.FileSet, path string) ProgramJSON {
	return ProgramJSON{
		File:       path,
		Canonical:  prog.String(),
		Statements: buildProgramNodes(prog, fs),
	}
}

// FormatASTJSON выводит дерево узлов и каноническую форму в JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program, fs *source.FileSet, path string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildProgramJSON(prog, fs, path))
}
