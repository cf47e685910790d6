package session

import "github.com/hibeam-dev/chaski_client/internal/event"

// LogLine is one free-form log line emitted by the engine during a run.
type LogLine struct {
	Text string
}

// Status is the terminal outcome of one engine run. It is passed through
// to the caller of Connect unchanged; the session layer never interprets it.
type Status struct {
	Status  string
	Message string
	Err     error
}

func (s Status) Failed() bool {
	return s.Err != nil
}

// Receiver is the callback registration point the engine delivers into
// while Run executes. Both methods are invoked from the engine's goroutine,
// in emission order.
type Receiver interface {
	Event(ev *event.Event)
	Log(line LogLine)
}

// Engine is the underlying connection engine. Run blocks for the whole
// attempt and returns the terminal status. Stop requests unwind and may be
// called from any goroutine; it is best-effort and asynchronous, Run is the
// only thing that decides when the attempt is over.
type Engine interface {
	Run(recv Receiver) Status
	Stop()
}

// Listener receives the forwarded callbacks for the duration of one Connect
// call. Both entry points run on the session's worker goroutine, never the
// caller's, and are never invoked after Connect returns. Blocking in a
// handler stalls event delivery and, transitively, the engine.
type Listener interface {
	OnEvent(ev *event.Event)
	OnLog(line LogLine)
}
