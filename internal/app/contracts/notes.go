package contracts

import "context"

// NoteStorage archives raw review-note content under its content
// fingerprint. The ledger only ever stores the fingerprint.
type NoteStorage interface {
	StoreReviewNotes(ctx context.Context, fingerprintHex string, content []byte) error
}
