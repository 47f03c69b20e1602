// Package logbook implements the buffered, size-rotating log persistence
// service.
//
// # Overview
//
// Callers append timestamped text messages to an in-memory Buffer owned by a
// Service. Flush merges the buffered batch into the latest persisted record,
// prepending new content so records read newest-first, and rotates to a fresh
// record when the merged body would exceed the configured maximum length.
// Rotation is a content boundary: the new record starts with the pending
// batch only, the old body is left behind on the previous record.
//
// If any step of the primary flush fails, the service makes exactly one
// fallback attempt: it force-creates a fresh record and writes the pending
// batch into it. An error from that second attempt propagates to the caller.
// The buffer is cleared after every flush attempt regardless of outcome, so
// a caller that sees a propagated error has already lost the batch; the
// design trades guaranteed delivery for simplicity.
//
// A Service runs through three informal states: idle (buffer empty),
// accumulating (buffer non-empty), flushing. There is no terminal state.
//
// # Concurrency
//
// A Service is a single-owner object: one instance per request or unit of
// work, no internal locking. Two owners racing through a flush can both
// observe the same latest record and each rotate, leaving two fresh records
// with the last update winning. That cross-process race is accepted and not
// handled here.
package logbook
