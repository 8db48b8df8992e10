package lexer

import (
	"testing"

	"monkey/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mk", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	want := []rune{'a', '\n', 'b'}
	for i, r := range want {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF at step %d", i)
		}
		if cursor.Ch != r {
			t.Fatalf("step %d: expected %q, got %q", i, r, cursor.Ch)
		}
		if cursor.Off != uint32(i) {
			t.Fatalf("step %d: expected Off %d, got %d", i, i, cursor.Off)
		}
		cursor.Advance()
	}
	if !cursor.EOF() || cursor.Ch != 0 {
		t.Fatalf("expected EOF with Ch == 0, got Ch=%q", cursor.Ch)
	}
	// повторный Advance на EOF безопасен
	cursor.Advance()
	if !cursor.EOF() {
		t.Fatalf("expected EOF to stick")
	}
}

func TestEmptyFile(t *testing.T) {
	cursor := NewCursor(createFile(""))
	if !cursor.EOF() {
		t.Fatalf("expected EOF on empty file")
	}
	if cursor.PeekRune() != 0 {
		t.Fatalf("expected no peek rune on empty file")
	}
}

func TestMultiByteRunes(t *testing.T) {
	cursor := NewCursor(createFile("é£x"))
	if cursor.Ch != 'é' || cursor.Next != 2 {
		t.Fatalf("expected é of width 2, got %q next=%d", cursor.Ch, cursor.Next)
	}
	if cursor.PeekRune() != '£' {
		t.Fatalf("expected peek £, got %q", cursor.PeekRune())
	}
	cursor.Advance()
	if cursor.Off != 2 || cursor.Ch != '£' {
		t.Fatalf("expected £ at 2, got %q at %d", cursor.Ch, cursor.Off)
	}
	cursor.Advance()
	if cursor.Ch != 'x' || cursor.Off != 4 {
		t.Fatalf("expected x at 4, got %q at %d", cursor.Ch, cursor.Off)
	}
}

func TestMarkAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("hello world"))
	m := cursor.Mark()
	for range 5 {
		cursor.Advance()
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 5 {
		t.Fatalf("expected span 0..5, got %v", sp)
	}
	if got := cursor.Text(m); got != "hello" {
		t.Fatalf("expected text hello, got %q", got)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("=="))
	if !cursor.Eat('=') || !cursor.Eat('=') {
		t.Fatalf("expected to eat both '='")
	}
	if cursor.Eat('=') {
		t.Fatalf("should not eat at EOF")
	}
}
