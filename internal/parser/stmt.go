package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

// parseStatement выбирает распознаватель по текущему токену.
func (p *Parser) parseStatement() ast.StmtID {
	switch p.cur.Kind {
	case token.Let:
		return p.parseLet()
	case token.Return:
		return p.parseReturn()
	case token.Semicolon:
		// пустой оператор
		return ast.NoStmtID
	default:
		return p.parseExprStmt()
	}
}

// parseLet: let <ident> = <expr> [;]
// Узел создаётся только для полностью разобранного оператора.
func (p *Parser) parseLet() ast.StmtID {
	kw := p.cur
	if !p.expectPeek(token.Ident) {
		return ast.NoStmtID
	}
	name := ast.Ident{Name: p.cur.Literal, Span: p.cur.Span}
	if !p.expectPeek(token.Assign) {
		return ast.NoStmtID
	}
	p.nextToken()
	value := p.parseExpression(precLowest)
	if !value.IsValid() {
		return ast.NoStmtID
	}
	p.skipSemicolon()
	return p.b.Stmts.NewLet(kw, kw.Span.Cover(p.cur.Span), name, value)
}

// parseReturn: return <expr> [;]
func (p *Parser) parseReturn() ast.StmtID {
	kw := p.cur
	p.nextToken()
	value := p.parseExpression(precLowest)
	if !value.IsValid() {
		return ast.NoStmtID
	}
	p.skipSemicolon()
	return p.b.Stmts.NewReturn(kw, kw.Span.Cover(p.cur.Span), value)
}

func (p *Parser) parseExprStmt() ast.StmtID {
	first := p.cur
	value := p.parseExpression(precLowest)
	if !value.IsValid() {
		return ast.NoStmtID
	}
	p.skipSemicolon()
	return p.b.Stmts.NewExprStmt(first, first.Span.Cover(p.cur.Span), value)
}

// parseBlock: cur на '{' при входе, на '}' (или EOF) при выходе.
// ok == false, если блок не закрыт; узел тогда не создаётся.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace := p.cur
	var stmts []ast.StmtID
	p.nextToken()
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if st := p.parseStatement(); st.IsValid() {
			stmts = append(stmts, st)
		} else if p.synchronize(true) {
			// cur на '}' этого блока
			break
		}
		p.nextToken()
	}
	if p.curIs(token.EOF) {
		p.report(expectCode(token.RBrace), p.cur.Span, "expected next token to be RBRACE, got EOF instead")
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewBlock(lbrace, lbrace.Span.Cover(p.cur.Span), stmts), true
}

// synchronize пропускает остаток неудавшегося оператора: cur встаёт на ';'
// того же уровня вложенности или на EOF. В блоке также останавливается на
// закрывающей '}' и возвращает true.
func (p *Parser) synchronize(inBlock bool) bool {
	depth := 0
	for !p.curIs(token.EOF) {
		switch p.cur.Kind {
		case token.Semicolon:
			if depth == 0 {
				return false
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 && inBlock {
				return true
			}
			if depth > 0 {
				depth--
			}
		}
		p.nextToken()
	}
	return false
}

func (p *Parser) skipSemicolon() {
	if p.peekIs(token.Semicolon) {
		p.nextToken()
	}
}
