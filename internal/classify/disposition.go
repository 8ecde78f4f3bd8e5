// Package classify turns a clipboard snapshot into exactly one
// disposition through an ordered, short-circuiting handler chain.
package classify

import (
	"context"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

// Status is the outcome category of a single handler attempt.
type Status int

const (
	// NotApplicable means the handler cannot serve this snapshot and
	// the chain falls through to the next one.
	NotApplicable Status = iota
	// Saved means an artifact and a catalog row were created.
	Saved
	// Skipped means the handler claimed the snapshot but deliberately
	// stored nothing (veto, duplicate, too short).
	Skipped
	// Failed means the handler claimed the snapshot and an I/O or
	// catalog operation failed.
	Failed
)

func (s Status) String() string {
	switch s {
	case Saved:
		return "saved"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "not-applicable"
	}
}

// Disposition is the result of classifying one clipboard change.
type Disposition struct {
	Status Status
	Kind   clipboard.Kind
	Reason string
	Err    error
	Entry  *clipboard.Entry
}

func saved(e *clipboard.Entry) Disposition {
	return Disposition{Status: Saved, Kind: e.Kind, Entry: e}
}

func skipped(kind clipboard.Kind, reason string) Disposition {
	return Disposition{Status: Skipped, Kind: kind, Reason: reason}
}

func failed(kind clipboard.Kind, err error) Disposition {
	return Disposition{Status: Failed, Kind: kind, Err: err}
}

// Handler classifies a snapshot into a disposition.
type Handler interface {
	Name() string
	Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition
}

// Chain evaluates handlers in priority order; the first result other
// than NotApplicable wins.
type Chain []Handler

// Classify runs the chain. A NotApplicable result means no handler could
// serve the snapshot, which is a miss, not an error.
func (c Chain) Classify(ctx context.Context, snap *clipboard.Snapshot) Disposition {
	for _, h := range c {
		if disp := h.Classify(ctx, snap); disp.Status != NotApplicable {
			return disp
		}
	}
	return Disposition{Status: NotApplicable}
}
