package memevent

import "context"

const channelCapacity = 100

// Handler is the bounded MPSC channel register write observers feed and a
// single worker drains.
type Handler struct {
	ch chan Event
}

// NewHandler constructs a Handler with its channel ready to receive.
func NewHandler() *Handler {
	return &Handler{ch: make(chan Event, channelCapacity)}
}

// Notify is the per-register observer callback: a non-blocking send that
// warns and drops the event if the channel is full. The external graph
// builder registers it against the write hooks for ABRM::TimestampLatch
// and SIRM::Control.
func (h *Handler) Notify(ev Event) {
	select {
	case h.ch <- ev:
	default:
		L.Warn("memevent: channel full, dropping event", "event", ev.String())
	}
}

// Drain pops every currently-queued event with a non-blocking receive loop,
// processes each in order against worker, and returns the first error
// encountered. Every queued event's side effects still run even after an
// earlier one fails; only the error report short-circuits.
func (h *Handler) Drain(ctx context.Context, w *Worker) error {
	var firstErr error
	for {
		select {
		case ev := <-h.ch:
			if err := process(ctx, ev, w); err != nil && firstErr == nil {
				firstErr = err
			}
		default:
			return firstErr
		}
	}
}

func process(ctx context.Context, ev Event, w *Worker) error {
	switch ev {
	case EventTimestampLatch:
		return handleTimestampLatch(ctx, w)
	case EventSiControl:
		return handleSiControl(ctx, w)
	default:
		return nil
	}
}
