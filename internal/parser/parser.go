package parser

import (
	"context"
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/token"
	"monkey/internal/trace"
)

type Options struct {
	// MaxErrors ограничивает число диагностик; 0: без ограничения.
	MaxErrors uint
	// Reporter получает структурированные диагностики; может быть nil.
	Reporter diag.Reporter
}

type Result struct {
	Program *ast.Program
	Errors  []string
	// Bag is set when the reporter writes into a bag.
	Bag *diag.Bag
}

// Parser: состояние парсера на один файл. Владеет лексером и окном cur/peek.
type Parser struct {
	lx     *lexer.Lexer
	b      *ast.Builder
	cur    token.Token
	peek   token.Token
	opts   Options
	errors []string
	count  uint

	tracer trace.Tracer
	spanID uint64
}

// New creates a parser and primes the two-token window.
func New(lx *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		lx:     lx,
		b:      ast.NewBuilder(ast.Hints{}),
		opts:   opts,
		tracer: trace.Nop,
	}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse разбирает весь поток лексера и возвращает программу и сообщения об ошибках.
func Parse(lx *lexer.Lexer) (*ast.Program, []string) {
	p := New(lx, Options{})
	prog := p.ParseProgram()
	return prog, p.Errors()
}

// ParseFile: входная точка для разбора одного файла драйвером.
// Трассер берётся из ctx; без Reporter диагностики собираются в собственный Bag.
func ParseFile(ctx context.Context, lx *lexer.Lexer, opts Options) Result {
	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case nil:
		bag = diag.NewBag(int(opts.MaxErrors)) // #nosec G115 -- NewBag clamps the limit
		opts.Reporter = diag.BagReporter{Bag: bag}
	case diag.BagReporter:
		bag = r.Bag
	case *diag.BagReporter:
		bag = r.Bag
	}

	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeModule, "parse:"+lx.File().Path, trace.CurrentSpan(ctx).SpanID)

	p := New(lx, opts)
	p.tracer = tr
	p.spanID = span.ID()
	prog := p.ParseProgram()

	span.WithExtra("stmts", strconv.Itoa(len(prog.Stmts))).
		WithExtra("errors", strconv.Itoa(len(p.errors))).
		End("")

	return Result{
		Program: prog,
		Errors:  p.Errors(),
		Bag:     bag,
	}
}

// Errors returns the diagnostics messages recorded so far, in report order.
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram разбирает операторы до EOF. Неудачный оператор пропускается
// целиком до ';' (их диагностики остаются); каждая итерация сдвигает окно
// минимум на один токен.
func (p *Parser) ParseProgram() *ast.Program {
	prog := ast.NewProgram(p.b)
	for !p.curIs(token.EOF) {
		if st := p.parseStatement(); st.IsValid() {
			prog.Push(st)
			trace.Point(p.tracer, trace.ScopeNode, "stmt", p.b.Stmts.Get(st).Kind.String(), p.spanID)
		} else {
			p.synchronize(false)
		}
		p.nextToken()
	}
	return prog
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek сдвигает окно, если следующий токен нужного вида; иначе репортит.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}
