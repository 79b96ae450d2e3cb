// Package ripstring provides an editable large-string buffer optimized for
// mixed-encoding text. A Buffer stores a logical Unicode string as an
// ordered sequence of adaptively-typed segments (see the run and segment
// packages), supporting O(log n + k) random-access edits while minimizing
// per-character storage overhead according to the character class present
// in each region.
//
// Indices passed to Buffer methods are LOGICAL element positions, not byte
// offsets and not codepoint counts — see the run package's doc comment for
// the exact definition. Ranges are half-open [start, end).
//
// See the run, splitter, and segment packages for the subsystems a Buffer
// orchestrates.
package ripstring
