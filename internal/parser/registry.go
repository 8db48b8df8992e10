package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

type (
	prefixRule func(*Parser) ast.ExprID
	infixRule  func(*Parser, ast.ExprID) ast.ExprID
)

// Реестры заполняются один раз в init: правила рекурсивно зовут parseExpression,
// который читает эти же таблицы, поэтому инициализатор var дал бы цикл.
var (
	prefixRules map[token.Kind]prefixRule
	infixRules  map[token.Kind]infixRule
)

func init() {
	prefixRules = map[token.Kind]prefixRule{
		token.Ident:    (*Parser).parseIdentifier,
		token.Int:      (*Parser).parseInteger,
		token.True:     (*Parser).parseBoolean,
		token.False:    (*Parser).parseBoolean,
		token.Bang:     (*Parser).parsePrefix,
		token.Minus:    (*Parser).parsePrefix,
		token.LParen:   (*Parser).parseGrouped,
		token.If:       (*Parser).parseIf,
		token.Function: (*Parser).parseFunction,
	}
	infixRules = map[token.Kind]infixRule{
		token.Plus:     (*Parser).parseInfix,
		token.Minus:    (*Parser).parseInfix,
		token.Asterisk: (*Parser).parseInfix,
		token.Slash:    (*Parser).parseInfix,
		token.Lt:       (*Parser).parseInfix,
		token.Gt:       (*Parser).parseInfix,
		token.Eq:       (*Parser).parseInfix,
		token.NotEq:    (*Parser).parseInfix,
		token.LParen:   (*Parser).parseCall,
	}
}
