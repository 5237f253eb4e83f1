package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Event struct {
	OwnerID   *uint
	RequestID string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Sink persists one audit event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

const (
	DefaultQueueSize = 100
	writeTimeout     = 5 * time.Second
)

type Dispatcher struct {
	sink   Sink
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}
	closed sync.Once
}

func NewDispatcher(sink Sink, log *zap.Logger, queueSize int) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("request_id", ev.RequestID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until queued ones are written.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.closed.Do(func() { close(d.queue) })
	<-d.done
}
