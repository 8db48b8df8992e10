
// Package fuzztests houses Go fuzz harnesses that exercise the monkey front
// end (source -> lexer -> parser -> AST rendering). Its goal is to guard
// against panics, hangs and broken tree invariants on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast, internal/testkit.

package fuzztests
