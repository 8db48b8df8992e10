package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/parser"
	"monkey/internal/source"
)

func TestPrettyUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/test.mk", []byte("let a = 1;\nlet x 55;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 17, End: 19},
		"expected next token to be ASSIGN, got INT instead").
		WithNote(source.Span{File: id, Start: 11, End: 14}, "in this let statement"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})
	want := "src/test.mk:2:7: ERROR SYN2001: expected next token to be ASSIGN, got INT instead\n" +
		"1 | let a = 1;\n" +
		"2 | let x 55;\n" +
		"  |       ^~\n" +
		"  note: src/test.mk:2:1: in this let statement\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	content := "世界 @"
	id := fs.AddVirtual("w.mk", []byte(content))
	bag := diag.NewBag(1)
	at := uint32(strings.IndexByte(content, '@'))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: at, End: at + 1}, "unknown character \"@\""))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	caret := lines[len(lines)-1]
	// "世界 " занимает 5 колонок терминала
	if !strings.HasSuffix(caret, "|      ^") {
		t.Fatalf("caret misaligned: %q", caret)
	}
}

func TestPathModes(t *testing.T) {
	tests := []struct {
		mode PathMode
		base string
		want string
	}{
		{PathModeAuto, "", "/home/user/project/src/test.mk"},
		{PathModeRelative, "/home/user/project", "src/test.mk"},
		{PathModeBasename, "", "test.mk"},
	}
	for _, tt := range tests {
		if got := formatPath("/home/user/project/src/test.mk", tt.mode, tt.base); got != tt.want {
			t.Errorf("mode %d: got %q, want %q", tt.mode, got, tt.want)
		}
	}
	if got := formatPath("<stdin>", PathModeAbsolute, ""); got != "<stdin>" {
		t.Errorf("virtual path rewritten: %q", got)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.mk", []byte("let x 5;"))
	res := parser.ParseFile(t.Context(), lexer.New(fs.Get(id), lexer.Options{}), parser.Options{})

	var buf bytes.Buffer
	if err := JSON(&buf, res.Bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Diagnostics[0].Code != "SYN2001" || out.Diagnostics[0].Location.StartCol != 7 {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
}

func TestTokensFormats(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.mk", []byte("let x = 10 != 9;"))
	toks := lexer.New(fs.Get(id), lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), `NOT_EQ     "!=" at 1:12-1:14`) {
		t.Fatalf("unexpected pretty output:\n%s", pretty.String())
	}

	var packed bytes.Buffer
	if err := FormatTokensMsgPack(&packed, toks); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeTokensMsgPack(&packed)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(toks) || decoded[4].Kind != "NOT_EQ" || decoded[len(decoded)-1].Kind != "EOF" {
		t.Fatalf("unexpected msgpack tokens %+v", decoded)
	}
}

func TestASTTree(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.mk", []byte("let x = -a * b;"))
	prog, _ := parser.Parse(lexer.New(fs.Get(id), lexer.Options{}))

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, prog, fs); err != nil {
		t.Fatal(err)
	}
	want := "Let x (1:1-1:16)\n" +
		"└─ value: Infix * (1:9-1:15)\n" +
		"   ├─ left: Prefix - (1:9-1:11)\n" +
		"   │  └─ operand: Ident a (1:10-1:11)\n" +
		"   └─ right: Ident b (1:14-1:15)\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestASTJSONAndPretty(t *testing.T) {
	prog, _ := parser.Parse(lexer.Tokenize("if (a) { b } else { c }"))

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, prog, nil, "x.mk"); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Canonical  string `json:"canonical"`
		Statements []struct {
			Kind     string `json:"kind"`
			Children []struct {
				Kind     string `json:"kind"`
				Children []struct {
					Role string `json:"role"`
				} `json:"children"`
			} `json:"children"`
		} `json:"statements"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Canonical != "if (a) { b } else { c }" || out.Statements[0].Children[0].Kind != "If" {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
	if roles := out.Statements[0].Children[0].Children; len(roles) != 3 || roles[2].Role != "else" {
		t.Fatalf("unexpected if children: %s", buf.String())
	}

	buf.Reset()
	if err := FormatASTPretty(&buf, prog); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "if (a) { b } else { c }\n" {
		t.Fatalf("unexpected pretty: %q", buf.String())
	}
}
