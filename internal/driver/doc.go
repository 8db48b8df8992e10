// Package driver склеивает source, lexer и parser в операции уровня CLI:
// разбор одного файла, строки из памяти и целой директории параллельно.
package driver
