package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.mk", []byte("let a = 1;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.mk", []byte("let b = 2;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.mk")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "let a = 1;" {
		t.Errorf("first file content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestGetOutOfRange(t *testing.T) {
	fs := NewFileSet()
	if f := fs.Get(3); f != nil {
		t.Fatalf("expected nil for unknown id, got %+v", f)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("repl", []byte("let x = 5;\nlet y = x;\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{10, LineCol{Line: 1, Col: 11}}, // сам '\n'
		{11, LineCol{Line: 2, Col: 1}},
		{15, LineCol{Line: 2, Col: 5}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.mk", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "third",
		4: "",
	}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.mk")
	// BOM + CRLF + decomposed "é" (e + U+0301)
	raw := []byte("\xEF\xBB\xBFlet a = 1;\r\nlet e\u0301 = 2;")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	want := "let a = 1;\nlet \u00e9 = 2;"
	if string(f.Content) != want {
		t.Fatalf("content = %q, want %q", f.Content, want)
	}
	for _, flag := range []FileFlags{FileHadBOM, FileNormalizedCRLF, FileNormalizedNFC} {
		if f.Flags&flag == 0 {
			t.Errorf("flag %b not set in %b", flag, f.Flags)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.mk")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 1, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 1, End: 6}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 10}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must keep receiver, got %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Errorf("cover must contain receiver")
	}
}
