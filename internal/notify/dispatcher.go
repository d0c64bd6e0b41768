package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type notice struct {
	address string
	subject string
	body    string
}

// Dispatcher queues notifications on a bounded channel and delivers them on a
// background worker. Enqueueing never blocks the caller and delivery failures
// are logged and discarded.
type Dispatcher struct {
	log      *zap.SugaredLogger
	notifier Notifier
	queue    chan notice

	stopOnce sync.Once
	done     chan struct{}
}

// NewDispatcher starts the delivery worker with the given queue capacity.
func NewDispatcher(log *zap.SugaredLogger, notifier Notifier, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		log:      log.Named("notify.dispatcher"),
		notifier: notifier,
		queue:    make(chan notice, queueSize),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

// Dispatch enqueues a notification without waiting for delivery. When the
// queue is full the notification is dropped with a warning.
func (d *Dispatcher) Dispatch(address, subject, body string) {
	select {
	case d.queue <- notice{address: address, subject: subject, body: body}:
	default:
		d.log.Warnw("notification queue full, dropping", "address", address, "subject", subject)
	}
}

// Stop drains queued notifications and stops the worker.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		if err := d.notifier.Send(context.Background(), n.address, n.subject, n.body); err != nil {
			d.log.Errorw("notification delivery failed", "error", err, "address", n.address)
			continue
		}
		d.log.Infow("notification delivered", "address", n.address, "subject", n.subject)
	}
}
