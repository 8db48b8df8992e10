package parser

import (
	"monkey/internal/token"
)

// Таблица приоритетов: чем больше число, тем сильнее связывание.
const (
	precLowest      = iota + 1
	precEquals      // == !=
	precLessGreater // < >
	precSum         // + -
	precProduct     // * /
	precPrefix      // -x !x
	precCall        // f(x)
)

var precedences = map[token.Kind]int{
	token.Eq:       precEquals,
	token.NotEq:    precEquals,
	token.Lt:       precLessGreater,
	token.Gt:       precLessGreater,
	token.Plus:     precSum,
	token.Minus:    precSum,
	token.Asterisk: precProduct,
	token.Slash:    precProduct,
	token.LParen:   precCall,
}

func precedenceOf(k token.Kind) int {
	if prec, ok := precedences[k]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) peekPrecedence() int { return precedenceOf(p.peek.Kind) }
func (p *Parser) curPrecedence() int  { return precedenceOf(p.cur.Kind) }
