package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hibeam-dev/chaski_client/internal/event"
)

// Session drives one connect attempt: it runs the engine's blocking Run call
// on a worker goroutine and relays every event and log callback to the
// listener attached for the duration of the attempt. One Session instance
// supports one attempt lifecycle at a time; concurrent Connect calls on the
// same instance are a usage error.
type Session struct {
	engine    Engine
	attemptID string

	mu       sync.RWMutex
	listener Listener
}

func New(engine Engine) *Session {
	return &Session{
		engine:    engine,
		attemptID: uuid.NewString(),
	}
}

// AttemptID identifies this attempt in logs and the event history.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// Connect attaches the listener, runs the engine on a worker goroutine and
// blocks until the run completes, then detaches the listener and returns the
// engine's terminal status. It never fails the caller: cancelling ctx only
// sends the engine a stop request, the wait continues until Run returns on
// its own. The cancel channel is cleared after the first stop so repeated
// cancellation signals cannot spin the wait loop.
func (s *Session) Connect(ctx context.Context, listener Listener) Status {
	s.attach(listener)
	defer s.detach()

	done := make(chan Status, 1)
	go func() {
		done <- s.engine.Run(s)
	}()

	cancelled := ctx.Done()
	for {
		select {
		case status := <-done:
			return status
		case <-cancelled:
			s.engine.Stop()
			cancelled = nil
		}
	}
}

func (s *Session) attach(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

func (s *Session) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = nil
}

// Event forwards an engine event to the attached listener; a no-op when no
// listener is attached.
func (s *Session) Event(ev *event.Event) {
	s.mu.RLock()
	listener := s.listener
	s.mu.RUnlock()

	if listener != nil {
		listener.OnEvent(ev)
	}
}

// Log forwards an engine log line to the attached listener; a no-op when no
// listener is attached.
func (s *Session) Log(line LogLine) {
	s.mu.RLock()
	listener := s.listener
	s.mu.RUnlock()

	if listener != nil {
		listener.OnLog(line)
	}
}

var _ Receiver = (*Session)(nil)
