package audit

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Event struct {
	SalonID  string
	UserID   string
	Action   string
	Entity   string
	Metadata any
}

// Dispatcher records events on a background worker. When the queue is
// full events are dropped; auditing never blocks a dashboard request.
type Dispatcher struct {
	recorder Recorder
	log      logrus.FieldLogger
	queue    chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(recorder Recorder, log logrus.FieldLogger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, size),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Warn("audit record failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drains the queue and stops the worker. Dispatch must not be
// called after Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
