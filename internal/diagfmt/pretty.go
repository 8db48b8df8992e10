package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"monkey/internal/diag"
	"monkey/internal/source"
)

type palette struct {
	err, warn, info, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		path := "<unknown>"
		if f != nil {
			path = formatPath(f.Path, opts.PathMode, opts.BaseDir)
		}
		fmt.Fprintf(w, "%s: %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
			pal.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID()),
			d.Message,
		)
		if f != nil {
			writeSnippet(w, f, start, end, opts.Context, pal)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			npath := path
			if nf := fs.Get(n.Span.File); nf != nil {
				npath = formatPath(nf.Path, opts.PathMode, opts.BaseDir)
			}
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), npath, ns.Line, ns.Col, n.Msg)
		}
	}
}

// writeSnippet печатает строку (плюс context строк до неё) и подчёркивание.
// Ширина считается через go-runewidth, чтобы ^ стоял под нужной колонкой.
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context int8, pal palette) {
	first := start.Line
	if context > 0 {
		if uint32(context) >= first {
			first = 1
		} else {
			first -= uint32(context)
		}
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		stop := min(int(end.Col)-1, len(line))
		width = max(runewidth.StringWidth(line[col:stop]), 1)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(line[:col]))
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), pad, pal.caret.Sprint(underline))
}
