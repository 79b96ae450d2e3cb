package ripstring

import (
	"io"
	"sort"
	"strings"

	"github.com/clipperhouse/ripstring/run"
	"github.com/clipperhouse/ripstring/segment"
	"github.com/clipperhouse/ripstring/splitter"
)

// Range is the half-open logical range [Start, End) used by Edit, in
// run-element units (see the package doc comment and the run package).
type Range = segment.Range

// Buffer is the top-level ordered container of segments (spec.md §4.3): it
// translates global index-range edits into per-segment operations,
// maintains cumulative index bookkeeping, and accelerates repeated edits
// in the same locality via a last-edit hint.
type Buffer struct {
	segments []*segment.Segment
	lastEdit int
}

// New returns an empty Buffer: a single empty Ascii segment.
func New() *Buffer {
	return &Buffer{segments: []*segment.Segment{segment.NewEmpty()}}
}

// FromText returns a Buffer reflecting text, one Segment per run the
// splitter produces.
func FromText(text string) *Buffer {
	segs := splitToSegments(text)
	if len(segs) == 0 {
		segs = []*segment.Segment{segment.NewEmpty()}
	}
	return &Buffer{segments: segs}
}

// Len returns the Buffer's total logical length.
func (b *Buffer) Len() int {
	last := b.segments[len(b.segments)-1]
	return last.Index() + last.Len()
}

// Edit applies r/newText against the Buffer, per spec.md §4.3's dispatch
// table:
//
//	r empty, newText empty  -> no-op
//	r empty, newText set    -> insert at r.Start
//	r set,   newText empty  -> cut over r
//	r set,   newText set    -> replace over r with newText
//
// Edit panics with run.ErrOutOfRange if r addresses an index past the end
// of the Buffer — per spec.md §7, the caller is responsible for keeping
// indices valid.
func (b *Buffer) Edit(r Range, newText string) {
	switch {
	case r.IsEmpty() && newText == "":
		return
	case r.IsEmpty():
		b.insert(r.Start, newText)
	case newText == "":
		b.cut(r)
	default:
		b.replace(r, newText)
	}
}

func (b *Buffer) insert(at int, text string) {
	i := b.findSegment(at)
	overflow := b.segments[i].Insert(at, text)
	b.splice(i+1, i+1, overflow)
	b.lastEdit = i
	b.fixIndexFrom(i)
}

func (b *Buffer) cut(r Range) {
	first := b.findSegment(r.Start)
	last := b.findSegment(r.End)

	if first == last {
		sibling := b.segments[first].Cut(r)
		if sibling != nil {
			b.splice(first+1, first+1, []*segment.Segment{sibling})
		}
	} else {
		firstSeg := b.segments[first]
		firstSeg.Cut(segment.Range{Start: r.Start, End: firstSeg.Index() + firstSeg.Len()})

		lastSeg := b.segments[last]
		if sibling := lastSeg.Cut(segment.Range{Start: lastSeg.Index(), End: r.End}); sibling != nil {
			b.segments[last] = sibling
		}

		b.removeBetween(first, last)
		last = first + 1
	}

	b.lastEdit = last
	b.fixIndexFrom(first)
	b.pruneEmpty()
}

func (b *Buffer) replace(r Range, newText string) {
	first := b.findSegment(r.Start)
	last := b.findSegment(r.End)

	firstSeg := b.segments[first]
	overflow := firstSeg.Replace(r, newText)

	if first != last {
		lastSeg := b.segments[last]
		if sibling := lastSeg.Cut(segment.Range{Start: lastSeg.Index(), End: r.End}); sibling != nil {
			b.segments[last] = sibling
		}
		b.removeBetween(first, last)
		last = first + 1
		b.splice(first+1, first+1, overflow)
	} else {
		b.splice(first+1, first+1, overflow)
	}

	b.lastEdit = last
	b.fixIndexFrom(first)
	b.pruneEmpty()
}

// pruneEmpty removes zero-length segments, preserving the invariant that a
// segment is only ever empty when it is the Buffer's sole segment (the
// canonical empty Buffer). It must run after fixIndexFrom: dropping a
// zero-length segment changes no surviving segment's index, since it
// contributed nothing to the running length total.
func (b *Buffer) pruneEmpty() {
	if len(b.segments) <= 1 {
		return
	}
	kept := b.segments[:0]
	for _, s := range b.segments {
		if s.Len() == 0 {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		kept = b.segments[:1]
	}
	b.segments = kept
	if b.lastEdit >= len(b.segments) {
		b.lastEdit = len(b.segments) - 1
	}
}

// removeBetween deletes every segment strictly between first and last
// (exclusive of both), leaving the two endpoints in place.
func (b *Buffer) removeBetween(first, last int) {
	if last <= first+1 {
		return
	}
	b.segments = append(b.segments[:first+1], b.segments[last:]...)
}

// splice replaces b.segments[from:to] with inserted, shifting the tail.
func (b *Buffer) splice(from, to int, inserted []*segment.Segment) {
	if len(inserted) == 0 {
		return
	}
	tail := append([]*segment.Segment(nil), b.segments[to:]...)
	b.segments = append(b.segments[:from], inserted...)
	b.segments = append(b.segments, tail...)
}

// fixIndexFrom repairs the index field of every segment from anchor
// onward, per spec.md §4.3's index-repair step.
func (b *Buffer) fixIndexFrom(anchor int) {
	base := b.segments[anchor]
	next := base.Index() + base.Len()
	for i := anchor + 1; i < len(b.segments); i++ {
		b.segments[i].SetIndex(next)
		next += b.segments[i].Len()
	}
}

// findSegment locates the segment containing the global logical index,
// checking the last-edit hint first (spec.md §4.3 / §5's locality
// acceleration) before falling back to binary search. It panics with
// run.ErrOutOfRange if no segment contains index.
func (b *Buffer) findSegment(index int) int {
	if b.lastEdit < len(b.segments) && b.segments[b.lastEdit].Contains(index) {
		return b.lastEdit
	}

	i := sort.Search(len(b.segments), func(i int) bool {
		return b.segments[i].Compare(index) >= 0
	})
	if i < len(b.segments) && b.segments[i].Contains(index) {
		return i
	}
	panic(run.ErrOutOfRange)
}

// String renders the Buffer's full logical text by concatenating every
// segment in order.
func (b *Buffer) String() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb)
	return sb.String()
}

// WriteTo streams the Buffer's logical text segment-by-segment, without
// building one global allocation for the whole text (spec.md §4.4).
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range b.segments {
		n, err := s.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func splitToSegments(text string) []*segment.Segment {
	sp := splitter.New(text)
	var segs []*segment.Segment
	index := 0
	for {
		r, ok := sp.Next()
		if !ok {
			break
		}
		segs = append(segs, segment.New(index, r))
		index += r.Len()
	}
	return segs
}
