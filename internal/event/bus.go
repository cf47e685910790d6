package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/maniartech/signals"
)

// Message is what travels on the bus: a topic (an event kind name or any
// other agreed string) plus an opaque payload.
type Message struct {
	Topic string
	Data  any
	Ctx   context.Context
}

type Handler func(Message)

type Bus struct {
	mu      sync.RWMutex
	signals map[string]signals.Signal[interface{}]
	nextKey uint64
}

func NewBus() *Bus {
	return &Bus{
		signals: make(map[string]signals.Signal[interface{}]),
	}
}

func (b *Bus) Subscribe(topic string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.signals[topic]; !exists {
		b.signals[topic] = signals.New[interface{}]()
	}

	// A plain counter: the handler's pointer address is not unique when the
	// same function subscribes twice.
	b.nextKey++
	key := fmt.Sprintf("listener-%d", b.nextKey)

	b.signals[topic].AddListener(func(ctx context.Context, data interface{}) {
		handler(Message{
			Topic: topic,
			Data:  data,
		})
	}, key)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if signal, exists := b.signals[topic]; exists {
			signal.RemoveListener(key)
		}
	}
}

func (b *Bus) SubscribeMultiple(topics []string, handler Handler) []func() {
	unsubs := make([]func(), 0, len(topics))

	for _, topic := range topics {
		unsub := b.Subscribe(topic, handler)
		unsubs = append(unsubs, unsub)
	}

	return unsubs
}

func (b *Bus) Publish(msg Message) {
	b.mu.RLock()
	signal, exists := b.signals[msg.Topic]
	b.mu.RUnlock()

	if exists {
		signal.Emit(context.Background(), msg.Data)
	}
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, signal := range b.signals {
		signal.Reset()
	}
	b.signals = make(map[string]signals.Signal[interface{}])
}
