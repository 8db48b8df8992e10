package lexer

import (
	"fmt"
	"unicode/utf8"

	"monkey/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле.
// Ch: текущая декодированная руна по смещению Off; Next: индекс следующего чтения.
// Ch == 0 при EOF().
type Cursor struct {
	File  *source.File
	Off   uint32
	Next  uint32
	Ch    rune
	// Limit is the exclusive upper bound for reads; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file, positioned on the first rune.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	c := Cursor{File: f, Limit: limit}
	c.Advance()
	return c
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Advance moves onto the next rune, decoding by UTF-8 boundary.
// Invalid bytes decode as utf8.RuneError of width 1.
func (c *Cursor) Advance() {
	if c.Next >= c.Limit {
		c.Off = c.Limit
		c.Ch = 0
		return
	}
	r, sz := c.decode(c.Next)
	c.Off = c.Next
	c.Ch = r
	c.Next += sz
}

// PeekRune возвращает руну после текущей, не сдвигая курсор (0 при EOF).
func (c *Cursor) PeekRune() rune {
	if c.Next >= c.Limit {
		return 0
	}
	r, _ := c.decode(c.Next)
	return r
}

// Eat consumes the current rune if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if c.EOF() || c.Ch != r {
		return false
	}
	c.Advance()
	return true
}

func (c *Cursor) decode(off uint32) (rune, uint32) {
	b := c.File.Content[off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.File.Content[off:c.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune width overflow: %w", err))
	}
	return r, usz
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Text returns the source slice between the mark and the current position.
func (c *Cursor) Text(m Mark) string {
	return string(c.File.Content[uint32(m):c.Off])
}
