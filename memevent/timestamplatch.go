package memevent

import (
	"context"

	"github.com/gencore/gencam"
)

// handleTimestampLatch implements TimestampLatchHandler::handle_events:
// reading the latch register must read exactly 1; on success the device's
// current clock is written to ABRM::Timestamp and an UpdateTimestamp signal
// is emitted once the memory lock is released.
func handleTimestampLatch(ctx context.Context, w *Worker) error {
	w.Mu.Lock()

	value, err := w.readInt(ctx, w.TimestampLatchID)
	if err != nil {
		w.Mu.Unlock()
		return err
	}
	if value != 1 {
		w.Mu.Unlock()
		return gencam.ErrGenericDevice
	}

	timestampNs, err := w.Device.TimestampNs(ctx)
	if err != nil {
		w.Mu.Unlock()
		return gencam.Wrap(gencam.KindIo, "read device timestamp", err)
	}

	if err := w.writeInt(ctx, w.TimestampID, int64(timestampNs)); err != nil {
		w.Mu.Unlock()
		return err
	}

	w.Mu.Unlock()

	w.trySendEventSignal(EventSignal{Kind: EventSignalUpdateTimestamp, TimestampNs: timestampNs})
	return nil
}
