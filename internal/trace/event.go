package trace

import "time"

// Kind различает начало/конец спана и точечное событие.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope: гранулярность события. Меньшее значение означает более крупный уровень.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команда CLI
	ScopePass                    // tokenize, parse
	ScopeModule                  // один файл
	ScopeNode                    // оператор верхнего уровня
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePass: "pass", ScopeModule: "module", ScopeNode: "node"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Seq is assigned by the tracer that stores it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Name     string
	Detail   string
	// Elapsed задано только для KindSpanEnd.
	Elapsed time.Duration
	Attrs   map[string]string
}
