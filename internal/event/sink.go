package event

import "sync"

// Sink accepts fully-constructed events for downstream consumption.
// AddEvent returns once the event has been handed off; implementations
// decide their own buffering and must serialize concurrent callers.
type Sink interface {
	AddEvent(ev *Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(*Event)

func (f SinkFunc) AddEvent(ev *Event) {
	f(ev)
}

// BusSink publishes every event on the bus under its kind name, so
// subscribers can pick individual kinds or the full set via Topics.
type BusSink struct {
	mu  sync.Mutex
	bus *Bus
}

func NewBusSink(bus *Bus) *BusSink {
	return &BusSink{bus: bus}
}

func (s *BusSink) AddEvent(ev *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bus.Publish(Message{Topic: ev.Name(), Data: ev})
}

// Topics returns the bus topics BusSink publishes on, one per kind.
func Topics() []string {
	topics := make([]string, 0, int(numKinds))
	for _, k := range Kinds() {
		topics = append(topics, k.String())
	}
	return topics
}

// MultiSink fans each event out to several sinks in order. A mutex keeps
// concurrent AddEvent calls from interleaving deliveries.
type MultiSink struct {
	mu    sync.Mutex
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) AddEvent(ev *Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sinks {
		s.AddEvent(ev)
	}
}

var (
	_ Sink = SinkFunc(nil)
	_ Sink = (*BusSink)(nil)
	_ Sink = (*MultiSink)(nil)
)
