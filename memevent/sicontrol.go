package memevent

import (
	"context"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/internal/ambient"
	"github.com/gencore/gencam/node"
)

// handleSiControl implements SiControlHandler::handle_events: 1 enables the
// streaming interface (after SIRM integrity verification), 0 disables it,
// anything else is the same generic-error case TimestampLatch uses.
func handleSiControl(ctx context.Context, w *Worker) error {
	w.Mu.Lock()
	value, err := w.readInt(ctx, w.SiControlID)
	w.Mu.Unlock()
	if err != nil {
		return err
	}

	switch value {
	case 1:
		return enableSirm(ctx, w)
	case 0:
		disableSirm(w)
		return nil
	default:
		return gencam.ErrGenericDevice
	}
}

// enableSirm verifies alignment then size, writes SIRM::Control back to 0
// and reports *gencam.Error{Kind: InvalidSiState} on the first failure, and
// otherwise emits StreamSignalEnable.
func enableSirm(ctx context.Context, w *Worker) error {
	if err := verifyAlignment(ctx, w); err != nil {
		return resetSiControl(ctx, w, err)
	}
	if err := verifySize(ctx, w); err != nil {
		return resetSiControl(ctx, w, err)
	}

	w.trySendStreamSignal(StreamSignal{Kind: StreamSignalEnable})
	return nil
}

func resetSiControl(ctx context.Context, w *Worker, cause error) error {
	w.Mu.Lock()
	err := w.writeInt(ctx, w.SiControlID, 0)
	w.Mu.Unlock()
	if err != nil {
		return err
	}
	return cause
}

// disableSirm sends StreamSignalDisable and blocks on its Done channel, the
// one intentional suspension point in this handler. A dropped signal is not
// waited on; there is no peer left to complete it.
func disableSirm(w *Worker) {
	done := make(chan struct{})
	if w.trySendStreamSignal(StreamSignal{Kind: StreamSignalDisable, Done: done}) {
		<-done
	}
}

func invalidSiState(reason string) error {
	return gencam.NewError(gencam.KindInvalidSiState, reason)
}

// verifyAlignment checks that every writable size register in SIRM is a
// multiple of the SIRM alignment.
func verifyAlignment(ctx context.Context, w *Worker) error {
	w.Mu.Lock()
	defer w.Mu.Unlock()

	ids := []node.ID{
		w.MaximumLeaderSizeID,
		w.PayloadTransferSizeID,
		w.PayloadFinalTransferSize1ID,
		w.PayloadFinalTransferSize2ID,
		w.MaximumTrailerSizeID,
	}
	for _, id := range ids {
		v, err := w.readInt(ctx, id)
		if err != nil {
			return err
		}
		if !ambient.Aligned(v, w.SirmAlignment) {
			return invalidSiState("SIRM register not aligned to required boundary")
		}
	}
	return nil
}

// verifySize checks that the specified leader/trailer/payload sizes are at
// least the required sizes.
func verifySize(ctx context.Context, w *Worker) error {
	w.Mu.Lock()
	defer w.Mu.Unlock()

	maxLeader, err := w.readInt(ctx, w.MaximumLeaderSizeID)
	if err != nil {
		return err
	}
	reqLeader, err := w.readInt(ctx, w.RequiredLeaderSizeID)
	if err != nil {
		return err
	}
	if maxLeader < reqLeader {
		return invalidSiState("maximum leader size smaller than required leader size")
	}

	maxTrailer, err := w.readInt(ctx, w.MaximumTrailerSizeID)
	if err != nil {
		return err
	}
	reqTrailer, err := w.readInt(ctx, w.RequiredTrailerSizeID)
	if err != nil {
		return err
	}
	if maxTrailer < reqTrailer {
		return invalidSiState("maximum trailer size smaller than required trailer size")
	}

	transferSize, err := w.readInt(ctx, w.PayloadTransferSizeID)
	if err != nil {
		return err
	}
	transferCount, err := w.readInt(ctx, w.PayloadTransferCountID)
	if err != nil {
		return err
	}
	final1, err := w.readInt(ctx, w.PayloadFinalTransferSize1ID)
	if err != nil {
		return err
	}
	final2, err := w.readInt(ctx, w.PayloadFinalTransferSize2ID)
	if err != nil {
		return err
	}
	reqPayload, err := w.readInt(ctx, w.RequiredPayloadSizeID)
	if err != nil {
		return err
	}

	specified := transferSize*transferCount + final1 + final2
	if specified < reqPayload {
		return invalidSiState("specified payload size smaller than required payload size")
	}
	return nil
}
