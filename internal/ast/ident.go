package ast

import "monkey/internal/source"

// Ident is a name held by value: let targets and function parameters.
type Ident struct {
	Name string
	Span source.Span
}

func (id Ident) String() string { return id.Name }
