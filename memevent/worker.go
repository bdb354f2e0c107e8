package memevent

import (
	"context"
	"sync"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/node"
)

// Worker bundles everything handleTimestampLatch/handleSiControl need to
// read and write the ABRM/SIRM registers and emit signals: the device and
// node graph a logical session owns, plus the outbound signal channels.
// Not safe for concurrent use: one Worker per logical device session,
// matching ctxt.Ctxt's own single-owner discipline.
type Worker struct {
	Mu     sync.Mutex
	Device gencam.Device
	Store  node.Store
	Cx     *node.Ctxt

	TimestampLatchID node.ID
	TimestampID      node.ID
	SiControlID      node.ID

	MaximumLeaderSizeID         node.ID
	PayloadTransferSizeID       node.ID
	PayloadTransferCountID      node.ID
	PayloadFinalTransferSize1ID node.ID
	PayloadFinalTransferSize2ID node.ID
	MaximumTrailerSizeID        node.ID
	RequiredLeaderSizeID        node.ID
	RequiredTrailerSizeID       node.ID
	RequiredPayloadSizeID       node.ID

	SirmAlignment int64

	EventSignals  chan<- EventSignal
	StreamSignals chan<- StreamSignal
}

func (w *Worker) readInt(ctx context.Context, id node.ID) (int64, error) {
	k, err := node.ExpectIIntegerKind(id, w.Store)
	if err != nil {
		return 0, err
	}
	return k.Value(ctx, w.Device, w.Store, w.Cx)
}

func (w *Worker) writeInt(ctx context.Context, id node.ID, v int64) error {
	k, err := node.ExpectIIntegerKind(id, w.Store)
	if err != nil {
		return err
	}
	return k.SetValue(ctx, v, w.Device, w.Store, w.Cx)
}

// trySendEventSignal is the non-blocking emit used for EventSignal, mirroring
// Worker::try_send_signal in the original control module.
func (w *Worker) trySendEventSignal(sig EventSignal) {
	if w.EventSignals == nil {
		return
	}
	select {
	case w.EventSignals <- sig:
	default:
		L.Warn("memevent: event signal channel full, dropping signal")
	}
}

// trySendStreamSignal is the StreamSignal analogue of trySendEventSignal.
// It reports whether the signal was actually delivered, so a caller waiting
// on the signal's completion channel doesn't block forever on a drop.
func (w *Worker) trySendStreamSignal(sig StreamSignal) bool {
	if w.StreamSignals == nil {
		return false
	}
	select {
	case w.StreamSignals <- sig:
		return true
	default:
		L.Warn("memevent: stream signal channel full, dropping signal")
		return false
	}
}
