// Package splitter implements the grapheme-aware lazy tokenizer described
// in spec.md §4.1: it partitions a source text into typed runs (run.Run)
// while respecting block-size targets aligned to newline boundaries.
//
// Splitter never fails on well-formed Unicode input; malformed input is
// outside its contract, since the source is already a validated Go string.
package splitter

import (
	"bytes"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/clipperhouse/ripstring/run"
)

// Splitter is a lazy, finite sequence of run.Runs over a source text.
// Construct with New, then call Next until it returns false.
type Splitter struct {
	text string
	pos  int

	// pending holds the runs produced by the current window, in source
	// order, waiting to be handed out one at a time. A plain FIFO slice —
	// append at the back, pop from the front — per the resolution of
	// spec.md's OQ4 (the original source's front-push deque is unnecessary).
	pending []run.Run
	head    int
}

// New returns a Splitter bound to text. text is consumed left to right by
// successive calls to Next.
func New(text string) *Splitter {
	return &Splitter{text: text}
}

// Next returns the next run in source order, or (zero, false) once the
// source is exhausted.
func (s *Splitter) Next() (run.Run, bool) {
	if s.head < len(s.pending) {
		r := s.pending[s.head]
		s.head++
		return r, true
	}
	if s.pos >= len(s.text) {
		return run.Run{}, false
	}

	s.fillWindow()
	return s.Next()
}

// fillWindow consumes one window of source text starting at s.pos,
// partitions it into runs, and refills s.pending.
func (s *Splitter) fillWindow() {
	remaining := s.text[s.pos:]
	end := windowEnd(remaining)

	s.pending = partition(remaining[:end])
	s.head = 0
	s.pos += end
}

// windowEnd picks the byte offset, relative to remaining, where the next
// window ends, per spec.md §4.1's block-size policy.
func windowEnd(remaining string) int {
	if len(remaining) <= run.MaxBlockSize {
		return len(remaining)
	}

	limit := run.MaxBlockSize
	if max := len(remaining) - run.MinBlockSize; max < limit {
		limit = max
	}

	search := remaining[run.MinBlockSize-1 : limit]
	if nl := bytes.LastIndexByte(search, '\n'); nl >= 0 {
		return run.MinBlockSize - 1 + nl + 1
	}

	split := limit
	for split > 0 && !isUTF8Boundary(remaining, split) {
		split--
	}
	return split
}

// isUTF8Boundary reports whether byte offset i in s falls on a UTF-8 scalar
// boundary (not in the middle of a multi-byte encoding).
func isUTF8Boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	// A continuation byte has the high bits 10xxxxxx.
	return s[i]&0xC0 != 0x80
}

// partition iterates grapheme clusters over window (a full window's worth
// of text) and groups them into typed runs per spec.md §4.1's routing
// rules, returned in source order.
func partition(window string) []run.Run {
	var runs []run.Run

	var kind run.Kind
	var ascii []byte
	var bmp []rune
	var complex []string
	hasCurrent := false

	flush := func() {
		if !hasCurrent {
			return
		}
		switch kind {
		case run.Ascii:
			if len(ascii) > 0 {
				runs = append(runs, run.NewAscii(ascii))
			}
		case run.Bmp:
			if len(bmp) > 0 {
				runs = append(runs, run.NewBmp(bmp))
			}
		default:
			if len(complex) > 0 {
				runs = append(runs, run.NewComplex(complex))
			}
		}
		ascii, bmp, complex = nil, nil, nil
		hasCurrent = false
	}

	iter := graphemes.FromString(window)
	for iter.Next() {
		cluster := iter.Text()

		switch {
		case len(cluster) == 1 && cluster[0] < 0x80:
			b := cluster[0]
			if hasCurrent && kind == run.Ascii {
				ascii = append(ascii, b)
				continue
			}
			if hasCurrent && kind == run.Bmp && !isASCIIAlpha(b) {
				bmp = append(bmp, rune(b))
				continue
			}
			flush()
			kind, hasCurrent = run.Ascii, true
			ascii = append(ascii, b)
		case len(cluster) > 2:
			if hasCurrent && kind == run.Complex {
				complex = append(complex, cluster)
				continue
			}
			flush()
			kind, hasCurrent = run.Complex, true
			complex = append(complex, cluster)
		default:
			if hasCurrent && kind == run.Bmp {
				bmp = append(bmp, []rune(cluster)...)
				continue
			}
			flush()
			kind, hasCurrent = run.Bmp, true
			bmp = append(bmp, []rune(cluster)...)
		}
	}
	flush()

	return runs
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
