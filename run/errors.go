package run

import "errors"

// ErrOutOfRange is panicked (never returned) when a lookup or edit
// addresses an index past the end of a Buffer. Per spec.md §7, callers are
// responsible for keeping indices valid; this is a fatal contract
// violation, not recoverable control flow — the same convention the
// teacher's internal/iterators package uses for errAdvanceTooFar.
var ErrOutOfRange = errors.New("ripstring: index out of range")
