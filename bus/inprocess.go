package bus

import (
	"fmt"
	"sync"

	channerics "github.com/niceyeti/channerics/channels"
)

const exchangeBuffer = 64

// exchange is one fanout topic: a single source channel that, once the
// bus starts, is broadcast to every subscriber channel joined before
// that point.
type exchange struct {
	source      chan []byte
	subscribers int
	outs        []chan []byte
}

// InProcess is the in-process channel transport: no external broker is
// involved, messages never leave the process, and every publish is
// delivered to subscribers over plain Go channels via
// github.com/niceyeti/channerics's generic fanout helpers.
type InProcess struct {
	mu        sync.Mutex
	exchanges map[string]*exchange
	done      <-chan struct{}
	started   bool
}

// NewInProcess creates a transport that stops fanning out once done is
// closed.
func NewInProcess(done <-chan struct{}) *InProcess {
	return &InProcess{
		exchanges: make(map[string]*exchange),
		done:      done,
	}
}

func (b *InProcess) DeclareExchange(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return fmt.Errorf("bus: cannot declare exchange %q after Start", name)
	}
	if _, ok := b.exchanges[name]; !ok {
		b.exchanges[name] = &exchange{source: make(chan []byte, exchangeBuffer)}
	}
	return nil
}

func (b *InProcess) Subscribe(name string) (<-chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil, fmt.Errorf("bus: cannot subscribe to %q after Start", name)
	}
	ex, ok := b.exchanges[name]
	if !ok {
		ex = &exchange{source: make(chan []byte, exchangeBuffer)}
		b.exchanges[name] = ex
	}
	ex.subscribers++
	// The real channel is handed out once Start fixes the broadcast
	// fanout; return a proxy that Start will wire through.
	placeholder := make(chan []byte, exchangeBuffer)
	ex.outs = append(ex.outs, placeholder)
	return placeholder, nil
}

func (b *InProcess) Publish(name string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("bus: marshal payload for exchange %q: %w", name, err)
	}
	b.mu.Lock()
	ex, ok := b.exchanges[name]
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("bus: exchange %q was never declared", name)
	}
	select {
	case ex.source <- data:
	case <-b.done:
	}
	return nil
}

func (b *InProcess) Ack(name string) {}

// Start fans out every declared exchange's source channel to its
// subscribers via channerics.Broadcast, then begins copying into each
// subscriber's placeholder channel. After Start, the subscriber set of
// every exchange is frozen.
func (b *InProcess) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}
	b.started = true
	for _, ex := range b.exchanges {
		if ex.subscribers == 0 {
			continue
		}
		broadcast := channerics.Broadcast(b.done, (<-chan []byte)(ex.source), ex.subscribers)
		for i, dst := range ex.outs {
			src := broadcast[i]
			go func(dst chan []byte, src <-chan []byte) {
				for msg := range channerics.OrDone(b.done, src) {
					select {
					case dst <- msg:
					case <-b.done:
						return
					}
				}
			}(dst, src)
		}
	}
}
