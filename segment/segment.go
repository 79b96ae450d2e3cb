// Package segment implements the Segment type of spec.md §4.2: a single
// typed Run paired with its base logical index, offering local insert, cut
// and replace operations that preserve block-size invariants and return any
// overflow runs the caller (a Buffer) must splice in as new siblings.
package segment

import (
	"io"

	"github.com/clipperhouse/ripstring/run"
	"github.com/clipperhouse/ripstring/splitter"
)

// Range is the half-open logical range type shared across this module.
type Range = run.Range

// Segment is a bounded-size Run with a base logical index in a Buffer.
type Segment struct {
	index int
	r     run.Run
}

// New returns a Segment holding r at the given base index.
func New(index int, r run.Run) *Segment {
	return &Segment{index: index, r: r}
}

// NewEmpty returns the canonical empty Segment: an empty Ascii run at
// index 0, matching the Buffer's initial state.
func NewEmpty() *Segment {
	return &Segment{r: run.NewAscii(nil)}
}

// Index returns the Segment's base offset in the global logical sequence.
func (s *Segment) Index() int {
	return s.index
}

// SetIndex updates the Segment's base offset. Called by the Buffer during
// index repair; it never changes the Segment's content.
func (s *Segment) SetIndex(i int) {
	s.index = i
}

// Len returns the Segment's logical length (its Run's length).
func (s *Segment) Len() int {
	return s.r.Len()
}

// Kind reports the Segment's Run's storage class.
func (s *Segment) Kind() run.Kind {
	return s.r.Kind()
}

// Contains reports whether the global index falls within this Segment,
// per Compare's contract.
func (s *Segment) Contains(index int) bool {
	return s.Compare(index) == 0
}

// Compare orders a global index against this Segment: positive if the
// Segment starts after index, negative if it ends before index, zero if
// index falls within [s.index, s.index+s.Len()] inclusive of both
// boundaries. The inclusive upper boundary is deliberate (spec.md OQ3): a
// Buffer's binary search resolves the resulting tie leftward by returning
// the first Segment in index order whose Compare returns zero. The Buffer
// checks its last-edit Segment before searching, so a boundary index that
// the last-edited Segment contains resolves to that Segment.
func (s *Segment) Compare(index int) int {
	start := s.index
	end := s.index + s.Len()
	switch {
	case index < start:
		return 1
	case index > end:
		return -1
	default:
		return 0
	}
}

// Insert splits text into runs and applies spec.md §4.2's insert rules at
// global logical position at (Segment subtracts its own base index, same
// as Cut and Replace). It returns the ordered overflow runs, as new
// Segments with index 0 (the caller — a Buffer — repairs indices), to be
// spliced in immediately after this Segment. A nil/empty return means no
// structural change was needed.
func (s *Segment) Insert(at int, text string) []*Segment {
	at -= s.index
	incoming := collectRuns(text)

	switch {
	case s.Len() == 0:
		if len(incoming) > 0 {
			s.r = incoming[0]
			incoming = incoming[1:]
		}
	case at == s.Len():
		// Append point (spec.md OQ1: at == Len(), not Len()-1).
		incoming = tryMergeFront(&s.r, incoming)
	case at == 0:
		if len(incoming) > 0 {
			first := incoming[0]
			displaced := s.r
			s.r = first
			rest := append(incoming[1:], displaced)
			incoming = tryMergeFront(&s.r, rest)
		}
	default:
		tail := s.r.Split(at)
		incoming = append(incoming, tail)
		incoming = tryMergeFront(&s.r, incoming)
	}

	return toSegments(incoming)
}

// Cut removes the portion of r (global-range) that falls within this
// Segment and returns a new sibling Segment if the interior removal leaves
// a suffix that could not be merged back into the prefix. r is in global
// index units.
func (s *Segment) Cut(r Range) *Segment {
	start := r.Start - s.index
	end := r.End - s.index

	if start >= s.Len() {
		return nil
	}

	if end >= s.Len() {
		s.r.Split(start)
		return nil
	}

	removed := s.r.Split(start) // s.r now holds the retained prefix [0, start)
	suffix := removed.Split(end - start)
	// removed now holds only the deleted interior slice and is discarded;
	// suffix holds the retained tail [end, oldLen).

	if suffix.Len() < run.MinBlockSize || s.r.Len() < run.MinBlockSize {
		if s.r.TryMerge(suffix) {
			return nil
		}
	}
	if suffix.IsEmpty() {
		return nil
	}
	return New(0, suffix)
}

// Replace removes r (global-range) from this Segment and splices in the
// runs produced by splitting text, returning any overflow as new sibling
// Segments. Per spec.md §4.3, a Buffer only ever calls Replace on the
// first segment touched by a multi-segment replace; trimming the far
// segment is the Buffer's job (spec.md OQ2).
func (s *Segment) Replace(r Range, text string) []*Segment {
	start := r.Start - s.index
	end := r.End - s.index
	incoming := collectRuns(text)

	if end > s.Len() {
		s.r.Split(start)
		incoming = tryMergeFront(&s.r, incoming)
	} else {
		tail := s.r.Split(end)
		s.r.Split(start)
		incoming = tryMergeFront(&s.r, incoming)
		if !tail.IsEmpty() {
			incoming = append(incoming, tail)
		}
	}

	return toSegments(incoming)
}

// WriteTo renders the Segment's Run.
func (s *Segment) WriteTo(w io.Writer) (int64, error) {
	return s.r.WriteTo(w)
}

// String renders the Segment's Run.
func (s *Segment) String() string {
	return s.r.String()
}

// collectRuns tokenizes text via splitter.New and drains it into a slice.
func collectRuns(text string) []run.Run {
	if text == "" {
		return nil
	}
	sp := splitter.New(text)
	var runs []run.Run
	for {
		r, ok := sp.Next()
		if !ok {
			break
		}
		runs = append(runs, r)
	}
	return runs
}

// tryMergeFront attempts to merge the first of incoming into dst (the
// Merge rule: same Kind, combined length < MaxBlockSize). On success the
// merged run is consumed and the remaining incoming runs are returned
// unchanged; on failure incoming is returned unchanged.
func tryMergeFront(dst *run.Run, incoming []run.Run) []run.Run {
	if len(incoming) == 0 {
		return incoming
	}
	if dst.TryMerge(incoming[0]) {
		return incoming[1:]
	}
	return incoming
}

// toSegments wraps each non-empty run as an overflow Segment at index 0;
// the caller repairs indices once the Segments are spliced into place.
func toSegments(runs []run.Run) []*Segment {
	if len(runs) == 0 {
		return nil
	}
	out := make([]*Segment, 0, len(runs))
	for _, r := range runs {
		if r.IsEmpty() {
			continue
		}
		out = append(out, New(0, r))
	}
	return out
}
