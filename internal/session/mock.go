package session

import (
	"sync"

	"github.com/hibeam-dev/chaski_client/internal/event"
)

// ScriptedEngine is a test double that replays a fixed callback script and
// returns a fixed terminal status. With blockUntilStop set, Run emits the
// script and then parks until Stop is called.
type ScriptedEngine struct {
	steps          []scriptStep
	exitStatus     Status
	blockUntilStop bool

	stopCh   chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	stopCalls int
}

type scriptStep struct {
	ev   *event.Event
	line *LogLine
}

func NewScriptedEngine(exitStatus Status) *ScriptedEngine {
	return &ScriptedEngine{
		exitStatus: exitStatus,
		stopCh:     make(chan struct{}),
	}
}

func (e *ScriptedEngine) ScriptEvent(ev *event.Event) *ScriptedEngine {
	e.steps = append(e.steps, scriptStep{ev: ev})
	return e
}

func (e *ScriptedEngine) ScriptLog(text string) *ScriptedEngine {
	e.steps = append(e.steps, scriptStep{line: &LogLine{Text: text}})
	return e
}

func (e *ScriptedEngine) BlockUntilStop() *ScriptedEngine {
	e.blockUntilStop = true
	return e
}

func (e *ScriptedEngine) Run(recv Receiver) Status {
	for _, step := range e.steps {
		if step.ev != nil {
			recv.Event(step.ev)
		}
		if step.line != nil {
			recv.Log(*step.line)
		}
	}

	if e.blockUntilStop {
		<-e.stopCh
	}

	return e.exitStatus
}

func (e *ScriptedEngine) Stop() {
	e.mu.Lock()
	e.stopCalls++
	e.mu.Unlock()

	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
}

func (e *ScriptedEngine) StopCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopCalls
}

var _ Engine = (*ScriptedEngine)(nil)
