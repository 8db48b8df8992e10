// Package repl реализует интерактивный цикл: строка на входе, токены или
// каноническое AST на выходе.
package repl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
)

// Mode selects what the REPL prints for every line.
type Mode string

const (
	ModeTokens Mode = "tokens"
	ModeAST    Mode = "ast"
)

// ParseMode validates a mode name coming from flags or monkey.toml.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTokens, ModeAST:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown repl mode %q (expected tokens|ast)", s)
	}
}

type Options struct {
	Prompt string
	Mode   Mode
	Color  bool
	// MaxDiagnostics ограничивает число ошибок на строку; 0: без ограничения.
	MaxDiagnostics int
}

// Start reads in line by line until EOF or ctx cancellation.
// Each line is handled independently: nothing carries over between lines.
// Lines have no length limit. ctx is checked before each prompt, so cancelling
// while a read on in is blocked takes effect only once that line (or EOF) arrives;
// callers that need a prompt stop should close in.
func Start(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = ">>"
	}
	if opts.Mode == "" {
		opts.Mode = ModeTokens
	}
	prompt := color.New(color.FgGreen, color.Italic)
	if opts.Color {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	reader := bufio.NewReader(in)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := prompt.Fprint(out, opts.Prompt); err != nil {
			return err
		}
		fmt.Fprint(out, " ")
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if readErr != nil && len(line) == 0 {
			fmt.Fprintln(out)
			return nil
		}
		line = bytes.TrimSuffix(bytes.TrimSuffix(line, []byte{'\n'}), []byte{'\r'})
		name := fmt.Sprintf("<repl:%d>", lineNo)
		if err := evalLine(ctx, out, name, line, opts); err != nil {
			return err
		}
	}
}

func evalLine(ctx context.Context, out io.Writer, name string, line []byte, opts Options) error {
	switch opts.Mode {
	case ModeAST:
		res, err := driver.ParseSource(ctx, name, line, opts.MaxDiagnostics)
		if err != nil {
			return err
		}
		if len(res.Errors) > 0 {
			diagfmt.Pretty(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: opts.Color})
			return nil
		}
		if rendered := res.Program.String(); rendered != "" {
			_, err = fmt.Fprintln(out, rendered)
		}
		return err
	default:
		res := driver.TokenizeSource(name, line, opts.MaxDiagnostics)
		// EOF не печатаем
		toks := res.Tokens[:len(res.Tokens)-1]
		return diagfmt.FormatTokensPretty(out, toks, res.FileSet)
	}
}
