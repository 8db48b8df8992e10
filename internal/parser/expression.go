package parser

import (
	"fmt"
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/token"
)

// parseExpression: ядро Pratt: префиксное правило для cur, затем,
// пока следующий оператор связывает сильнее minPrec, применяем инфиксные.
// Останавливается на ';'. Равный приоритет не продолжает цикл, отсюда левая ассоциативность.
func (p *Parser) parseExpression(minPrec int) ast.ExprID {
	prefix := prefixRules[p.cur.Kind]
	if prefix == nil {
		p.noPrefixError(p.cur)
		return ast.NoExprID
	}
	left := prefix(p)

	for left.IsValid() && !p.peekIs(token.Semicolon) && minPrec < p.peekPrecedence() {
		infix := infixRules[p.peek.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(p, left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.ExprID {
	return p.b.Exprs.NewIdent(p.cur)
}

func (p *Parser) parseInteger() ast.ExprID {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.report(diag.SynBadIntLiteral, p.cur.Span, fmt.Sprintf("could not parse %q as integer", p.cur.Literal))
		return ast.NoExprID
	}
	return p.b.Exprs.NewInt(p.cur, value)
}

func (p *Parser) parseBoolean() ast.ExprID {
	return p.b.Exprs.NewBool(p.cur, p.curIs(token.True))
}

func (p *Parser) parsePrefix() ast.ExprID {
	op := p.cur
	p.nextToken()
	operand := p.parseExpression(precPrefix)
	if !operand.IsValid() {
		return ast.NoExprID
	}
	return p.b.Exprs.NewPrefix(op, operand)
}

func (p *Parser) parseInfix(left ast.ExprID) ast.ExprID {
	op := p.cur
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	if !right.IsValid() {
		return ast.NoExprID
	}
	return p.b.Exprs.NewInfix(op, left, right)
}

// parseGrouped не создаёт узла: скобки только меняют связывание.
func (p *Parser) parseGrouped() ast.ExprID {
	p.nextToken()
	inner := p.parseExpression(precLowest)
	if !inner.IsValid() || !p.expectPeek(token.RParen) {
		return ast.NoExprID
	}
	return inner
}
