package diag

import (
	"fmt"
	"sort"
	"strings"

	"monkey/internal/source"
)

// FormatShortDiagnostics renders one diagnostic per line in the form
// "<severity> <code> <path>:<line>:<col> <message>", sorted by position.
// The output is stable and is used by golden tests and the REPL.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if len(diags) == 0 {
		return ""
	}
	type entry struct {
		path string
		line uint32
		col  uint32
		sev  string
		code string
		msg  string
	}
	entries := make([]entry, 0, len(diags))
	for _, d := range diags {
		path, line, col := resolveSpan(fs, d.Primary)
		entries = append(entries, entry{
			path: path,
			line: line,
			col:  col,
			sev:  severityLabel(d.Severity),
			code: d.Code.ID(),
			msg:  sanitizeMessage(d.Message),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.path != b.path {
			return a.path < b.path
		}
		if a.line != b.line {
			return a.line < b.line
		}
		if a.col != b.col {
			return a.col < b.col
		}
		if a.sev != b.sev {
			return a.sev < b.sev
		}
		if a.code != b.code {
			return a.code < b.code
		}
		return a.msg < b.msg
	})

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s", e.sev, e.code, e.path, e.line, e.col, e.msg)
	}
	return sb.String()
}

func resolveSpan(fs *source.FileSet, sp source.Span) (path string, line, col uint32) {
	if fs == nil {
		return "<unknown>", 0, 0
	}
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>", 0, 0
	}
	start, _ := fs.Resolve(sp)
	return f.Path, start.Line, start.Col
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
