package parser_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/parser"
	"monkey/internal/source"
	"monkey/internal/trace"
)

func TestLetStatements(t *testing.T) {
	prog := parseOK(t, "let x = 5; let y = 10; let foo = 88;")
	names := []string{"x", "y", "foo"}
	if len(prog.Stmts) != len(names) {
		t.Fatalf("expected %d statements, got %d", len(names), len(prog.Stmts))
	}
	for i, want := range names {
		data, ok := prog.Builder.Stmts.Let(prog.Stmts[i])
		if !ok {
			t.Fatalf("statement %d is not a let", i)
		}
		if data.Name.Name != want {
			t.Errorf("statement %d: expected name %q, got %q", i, want, data.Name.Name)
		}
		if lit := prog.StmtTokenLiteral(prog.Stmts[i]); lit != "let" {
			t.Errorf("statement %d: token literal %q", i, lit)
		}
	}
}

func TestLetAndReturnValues(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let x = 5;", "let x = 5;"},
		{"let y = true", "let y = true;"},
		{"let foobar = y;", "let foobar = y;"},
		{"return 5;", "return 5;"},
		{"return x + y", "return (x + y);"},
		{"let f = fn(a) { return a; };", "let f = fn(a) { return a; };"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseOK(t, tt.input).String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntegerLiteralProgram(t *testing.T) {
	values := []string{"0", "5", "007", "42", "9223372036854775807"}
	pads := [][2]string{{"", ""}, {" ", "\n"}, {"\t\r\n", "  "}}
	for _, v := range values {
		for _, pad := range pads {
			input := pad[0] + v + pad[1]
			prog := parseOK(t, input)
			id := onlyExpr(t, prog)
			data, ok := prog.Builder.Exprs.Int(id)
			if !ok {
				t.Fatalf("%q: expected integer literal", input)
			}
			want, _ := strconv.ParseInt(v, 10, 64)
			if data.Value != want {
				t.Fatalf("%q: expected %d, got %d", input, want, data.Value)
			}
			if got := prog.RenderExpr(id); got != v {
				t.Fatalf("%q: rendered %q", input, got)
			}
		}
	}
}

func TestBooleanAndIdentifier(t *testing.T) {
	prog := parseOK(t, "true;")
	if data, ok := prog.Builder.Exprs.Bool(onlyExpr(t, prog)); !ok || !data.Value {
		t.Fatalf("expected true literal")
	}
	prog = parseOK(t, "foobar;")
	if data, ok := prog.Builder.Exprs.Ident(onlyExpr(t, prog)); !ok || data.Name != "foobar" {
		t.Fatalf("expected identifier foobar")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b * c", "(a + (b * c))"},
		{"a + b / c", "(a + (b / c))"},
		{"a - b - c", "((a - b) - c)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4);\n((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseOK(t, tt.input).String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIfExpression(t *testing.T) {
	prog := parseOK(t, "if (x < y) { x }")
	data, ok := prog.Builder.Exprs.If(onlyExpr(t, prog))
	if !ok {
		t.Fatalf("expected if expression")
	}
	if data.Else.IsValid() {
		t.Fatalf("else branch must be absent")
	}
	if got := prog.String(); got != "if ((x < y)) { x }" {
		t.Fatalf("got %q", got)
	}

	prog = parseOK(t, "if (x < y) { x } else { y; z }")
	data, _ = prog.Builder.Exprs.If(onlyExpr(t, prog))
	els, ok := prog.Builder.Stmts.Block(data.Else)
	if !ok || len(els.Stmts) != 2 {
		t.Fatalf("expected else block with 2 statements")
	}
	if got := prog.String(); got != "if ((x < y)) { x } else { y; z }" {
		t.Fatalf("got %q", got)
	}
}

func TestFunctionLiteral(t *testing.T) {
	tests := []struct {
		input  string
		params []string
		want   string
	}{
		{"fn() {};", nil, "fn() { }"},
		{"fn(x) {};", []string{"x"}, "fn(x) { }"},
		{"fn(x, y, z) { x + y; }", []string{"x", "y", "z"}, "fn(x, y, z) { (x + y) }"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog := parseOK(t, tt.input)
			data, ok := prog.Builder.Exprs.Func(onlyExpr(t, prog))
			if !ok {
				t.Fatalf("expected function literal")
			}
			if len(data.Params) != len(tt.params) {
				t.Fatalf("expected %d params, got %d", len(tt.params), len(data.Params))
			}
			for i, p := range tt.params {
				if data.Params[i].Name != p {
					t.Errorf("param %d: expected %q, got %q", i, p, data.Params[i].Name)
				}
			}
			if got := prog.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallExpression(t *testing.T) {
	prog := parseOK(t, "add(1, 2 * 3, 4 + 5);")
	data, ok := prog.Builder.Exprs.Call(onlyExpr(t, prog))
	if !ok || len(data.Args) != 3 {
		t.Fatalf("expected call with 3 args")
	}
	if got := prog.RenderExpr(data.Callee); got != "add" {
		t.Fatalf("callee = %q", got)
	}
	if got := prog.String(); got != "add(1, (2 * 3), (4 + 5))" {
		t.Fatalf("got %q", got)
	}
	if got := parseOK(t, "fn(x) { x }(5)").String(); got != "fn(x) { x }(5)" {
		t.Fatalf("got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		first string
	}{
		{"let x 5;", "expected next token to be ASSIGN, got INT instead"},
		{"let = 10;", "expected next token to be IDENT, got ASSIGN instead"},
		{"let 838383;", "expected next token to be IDENT, got INT instead"},
		{"@", "no prefix parse function for ILLEGAL found"},
		{"99999999999999999999", `could not parse "99999999999999999999" as integer`},
		{"fn(x, 1) {}", "expected next token to be IDENT, got INT instead"},
		{"add(1, 2", "expected next token to be RPAREN, got EOF instead"},
		{"if (x) { x", "expected next token to be RBRACE, got EOF instead"},
		{"(1 + 2", "expected next token to be RPAREN, got EOF instead"},
		{"return ;", "no prefix parse function for SEMICOLON found"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, errs := parser.Parse(lexer.Tokenize(tt.input))
			if len(errs) == 0 {
				t.Fatalf("expected diagnostics")
			}
			if errs[0] != tt.first {
				t.Fatalf("first diagnostic %q, want %q (all: %v)", errs[0], tt.first, errs)
			}
		})
	}
}

func TestMissingAssignKeepsNoLet(t *testing.T) {
	prog, errs := parser.Parse(lexer.Tokenize("let x 5;"))
	for _, id := range prog.Stmts {
		if _, ok := prog.Builder.Stmts.Let(id); ok {
			t.Fatalf("no let statement may be appended, got %s", prog.String())
		}
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e, "ASSIGN") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diagnostic mentioning ASSIGN, got %v", errs)
	}
}

func TestRecoverySkipsFailedStatement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errs  int
	}{
		{"missing assign", "let x 5; let y = 1;", "let y = 1;", 1},
		{"missing ident", "let = 5;", "", 1},
		{"missing ident then let", "let = 1; let y = 2;", "let y = 2;", 1},
		{"dangling infix", "1 + ; 2", "2", 1},
		{"braces inside skipped statement", "{ let x 5; y } z; w", "w", 1},
		{"failure inside block", "if (x) { 1 + } let y = 2;", "if (x) { };\nlet y = 2;", 1},
		{"block continues after failure", "fn() { let = 1; x }; y", "fn() { x };\ny", 1},
		{"unclosed if", "if (x) { 1", "", 1},
		{"unclosed else", "if (x) { a } else { b", "", 1},
		{"unclosed fn body", "a; fn() { if (b) { c }", "a", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, errs := parser.Parse(lexer.Tokenize(tt.input))
			if got := prog.String(); got != tt.want {
				t.Errorf("program %q, want %q", got, tt.want)
			}
			if len(errs) != tt.errs {
				t.Errorf("expected %d diagnostics, got %d: %v", tt.errs, len(errs), errs)
			}
		})
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	inputs := []string{
		"let x = 5; let y = 10; let foo = 88;",
		"-a * b",
		"a + b * c + d / e - f",
		"x; -y",
		"x (-y)",
		"if (a) { b } (c)",
		"if (x > 1) { return x; } else { let z = fn(a, b) { a * b }; z(1, 2) }",
		"let add = fn(x, y) { x + y; }; add(five, ten);",
		"fn() {}()",
		"!!true == false",
		"f(g(h(1)))(2)",
		"007 + 1",
		"{",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			prog, _ := parser.Parse(lexer.Tokenize(in))
			first := prog.String()
			again, errs := parser.Parse(lexer.Tokenize(first))
			if len(errs) != 0 {
				t.Fatalf("canonical text %q does not re-parse: %v", first, errs)
			}
			if second := again.String(); second != first {
				t.Fatalf("round trip mismatch:\n first: %q\nsecond: %q", first, second)
			}
		})
	}
}

func TestParseFileReportsCodes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.mk", []byte("let x 5;\n@;\n1 +;"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	res := parser.ParseFile(context.Background(), lx, parser.Options{})

	want := []diag.Code{diag.SynUnexpectedToken, diag.SynExpectExpression, diag.SynExpectExpression}
	items := res.Bag.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d diagnostics, got %s", len(want), diagnosticsSummary(res.Bag))
	}
	for i, code := range want {
		if items[i].Code != code {
			t.Errorf("diagnostic %d: expected %s, got %s", i, code.ID(), items[i].Code.ID())
		}
	}
	if len(res.Errors) != len(items) {
		t.Fatalf("string diagnostics and bag disagree: %v vs %s", res.Errors, diagnosticsSummary(res.Bag))
	}
	start, _ := fs.Resolve(items[1].Primary)
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("expected '@' at 2:1, got %d:%d", start.Line, start.Col)
	}
}

func TestParseFileMaxErrors(t *testing.T) {
	lx := lexer.Tokenize(") ; ) ; ) ; )")
	res := parser.ParseFile(context.Background(), lx, parser.Options{MaxErrors: 2})
	if len(res.Errors) != 2 || res.Bag.Len() != 2 {
		t.Fatalf("expected exactly 2 diagnostics, got %v / %s", res.Errors, diagnosticsSummary(res.Bag))
	}
}

func TestParseFileTrace(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	fs := source.NewFileSet()
	id := fs.AddVirtual("trace.mk", []byte("let a = 1; a;"))
	parser.ParseFile(ctx, lexer.New(fs.Get(id), lexer.Options{}), parser.Options{})

	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Kind.String()+":"+ev.Name)
	}
	want := "begin:parse:trace.mk point:stmt point:stmt end:parse:trace.mk"
	if got := strings.Join(names, " "); got != want {
		t.Fatalf("trace events %q, want %q", got, want)
	}
}

func TestProgramTokenLiteral(t *testing.T) {
	prog := parseOK(t, "return 1;")
	if prog.TokenLiteral() != "return" {
		t.Fatalf("got %q", prog.TokenLiteral())
	}
	empty := parseOK(t, "")
	if empty.TokenLiteral() != "" || empty.String() != "" || len(empty.Stmts) != 0 {
		t.Fatalf("empty program must render empty")
	}
}

func TestEmptyStatementsAreSkipped(t *testing.T) {
	prog := parseOK(t, ";; let a = 1;; ;")
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected a single let, got %q", prog.String())
	}
}
