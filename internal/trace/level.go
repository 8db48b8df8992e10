package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // ничего не пишет сразу; ring-буфер сбрасывается при сбое
	LevelPhase        // driver + pass
	LevelDetail       // + по файлу
	LevelDebug        // + по оператору
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// deepest scope emitted per level; 0 = nothing.
var levelScope = [...]Scope{LevelPhase: ScopePass, LevelDetail: ScopeModule, LevelDebug: ScopeNode}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScope) {
		return false
	}
	deepest := levelScope[l]
	return deepest != 0 && scope <= deepest
}
