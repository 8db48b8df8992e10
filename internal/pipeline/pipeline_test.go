package pipeline

import "testing"

func TestProgressFractions(t *testing.T) {
	tests := []struct {
		stage  Stage
		status Status
		want   float64
	}{
		{StageLoad, StatusQueued, 0},
		{StageLoad, StatusWorking, 0.1},
		{StageTokenize, StatusWorking, 0.3},
		{StageParse, StatusWorking, 0.6},
		{StageParse, StatusDone, 1},
		{StageLoad, StatusError, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.stage, tt.status); got != tt.want {
			t.Errorf("Progress(%s, %s) = %v, want %v", tt.stage, tt.status, got, tt.want)
		}
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 2)
	sink := ChannelSink{Ch: ch}
	sink.OnEvent(Event{File: "a.mk", Stage: StageParse, Status: StatusDone})
	close(ch)
	evt := <-ch
	if evt.File != "a.mk" || !evt.Terminal() {
		t.Fatalf("unexpected event %+v", evt)
	}
	// nil channel is a no-op
	ChannelSink{}.OnEvent(Event{})
}

func TestRecordingSink(t *testing.T) {
	var rec RecordingSink
	Emit(&rec, Event{File: "a.mk", Status: StatusWorking})
	Emit(nil, Event{File: "ignored"})
	Emit(NopSink{}, Event{File: "ignored"})
	got := rec.Events()
	if len(got) != 1 || got[0].Terminal() {
		t.Fatalf("unexpected events %+v", got)
	}
}
