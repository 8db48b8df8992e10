package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin("load")
	tm.End(load, "1 file")
	tm.Track("parse", func() string { return "3 stmts" })

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(rep.Phases))
	}
	if rep.Phases[0].Name != "load" || rep.Phases[0].Note != "1 file" {
		t.Fatalf("unexpected first phase: %+v", rep.Phases[0])
	}
	if rep.Phases[1].Name != "parse" || rep.Phases[1].Note != "3 stmts" {
		t.Fatalf("unexpected second phase: %+v", rep.Phases[1])
	}
	if rep.TotalMS < 0 {
		t.Fatalf("negative total: %f", rep.TotalMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "load", "parse", "// 3 stmts", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestTimerRecord(t *testing.T) {
	tm := NewTimer()
	tm.Record("load", 2*time.Millisecond, "cached")
	rep := tm.Report()
	if len(rep.Phases) != 1 || rep.Phases[0].DurationMS != 2 || rep.TotalMS != 2 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "ignored")
	tm.End(-1, "ignored")
	if tm.Len() != 0 {
		t.Fatalf("expected no phases, got %d", tm.Len())
	}
	if rep := tm.Report(); rep.Phases != nil || rep.TotalMS != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if tm.Len() != 0 {
		t.Fatal("nil timer must report zero phases")
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("parse"), "")
		}()
	}
	wg.Wait()
	if tm.Len() != 16 {
		t.Fatalf("expected 16 phases, got %d", tm.Len())
	}
}
