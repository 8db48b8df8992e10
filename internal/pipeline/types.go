package pipeline

import "time"

// Stage describes a front-end phase of a single file.
type Stage string

const (
	// StageLoad reads and normalizes the file.
	StageLoad Stage = "load"
	// StageTokenize runs the lexer alone.
	StageTokenize Stage = "tokenize"
	// StageParse builds the AST.
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished without diagnostics.
	StatusDone Status = "done"
	// StatusError indicates the file finished with diagnostics or failed to load.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Terminal reports whether no more events will follow for this file.
func (e Event) Terminal() bool {
	return e.Status == StatusDone || e.Status == StatusError
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Progress returns the fraction of work a stage represents for one file.
func Progress(stage Stage, status Status) float64 {
	switch status {
	case StatusDone, StatusError:
		return 1
	case StatusQueued:
		return 0
	}
	switch stage {
	case StageLoad:
		return 0.1
	case StageTokenize:
		return 0.3
	case StageParse:
		return 0.6
	default:
		return 0
	}
}
