package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

// parseIf: if (<cond>) { ... } [else { ... }]
func (p *Parser) parseIf() ast.ExprID {
	kw := p.cur
	if !p.expectPeek(token.LParen) {
		return ast.NoExprID
	}
	p.nextToken()
	cond := p.parseExpression(precLowest)
	if !cond.IsValid() || !p.expectPeek(token.RParen) || !p.expectPeek(token.LBrace) {
		return ast.NoExprID
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID
	}

	els := ast.NoStmtID
	if p.peekIs(token.Else) {
		p.nextToken()
		if !p.expectPeek(token.LBrace) {
			return ast.NoExprID
		}
		if els, ok = p.parseBlock(); !ok {
			return ast.NoExprID
		}
	}
	return p.b.Exprs.NewIf(kw, kw.Span.Cover(p.cur.Span), cond, then, els)
}

// parseFunction: fn(<params>) { ... }
func (p *Parser) parseFunction() ast.ExprID {
	kw := p.cur
	if !p.expectPeek(token.LParen) {
		return ast.NoExprID
	}
	params, ok := p.parseParams()
	if !ok || !p.expectPeek(token.LBrace) {
		return ast.NoExprID
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID
	}
	return p.b.Exprs.NewFunc(kw, kw.Span.Cover(p.cur.Span), params, body)
}

// parseParams читает список идентификаторов; cur на '(' при входе, на ')' при выходе.
func (p *Parser) parseParams() ([]ast.Ident, bool) {
	params := []ast.Ident{}
	if p.peekIs(token.RParen) {
		p.nextToken()
		return params, true
	}
	if !p.expectPeek(token.Ident) {
		return nil, false
	}
	params = append(params, ast.Ident{Name: p.cur.Literal, Span: p.cur.Span})
	for p.peekIs(token.Comma) {
		p.nextToken()
		if !p.expectPeek(token.Ident) {
			return nil, false
		}
		params = append(params, ast.Ident{Name: p.cur.Literal, Span: p.cur.Span})
	}
	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return params, true
}

// parseCall: инфиксное правило для '('.
func (p *Parser) parseCall(callee ast.ExprID) ast.ExprID {
	lparen := p.cur
	args, ok := p.parseCallArgs()
	if !ok {
		return ast.NoExprID
	}
	span := lparen.Span.Cover(p.cur.Span)
	if c := p.b.Exprs.Get(callee); c != nil {
		span = c.Span.Cover(span)
	}
	return p.b.Exprs.NewCall(lparen, span, callee, args)
}

func (p *Parser) parseCallArgs() ([]ast.ExprID, bool) {
	args := []ast.ExprID{}
	if p.peekIs(token.RParen) {
		p.nextToken()
		return args, true
	}
	p.nextToken()
	arg := p.parseExpression(precLowest)
	if !arg.IsValid() {
		return nil, false
	}
	args = append(args, arg)
	for p.peekIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		arg = p.parseExpression(precLowest)
		if !arg.IsValid() {
			return nil, false
		}
		args = append(args, arg)
	}
	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return args, true
}
