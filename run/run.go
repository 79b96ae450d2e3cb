// Package run defines the Run type: the tagged storage variant that backs
// every Segment in a Buffer. A Run is Ascii, Bmp, or Complex, chosen to
// minimize per-element overhead for the character class it holds.
//
// Length, throughout this package and its callers, always means the number
// of elements in a Run's backing sequence — bytes for Ascii, scalar values
// for Bmp, grapheme-cluster strings for Complex — never UTF-8 byte length
// and never codepoint count. Callers that need byte or codepoint offsets
// must compute them from the rendered text; this package does not expose
// them.
package run

import (
	"io"
	"strings"
)

// MaxBlockSize is the upper bound on a Run's length after any edit
// completes. Runs are split rather than allowed to grow past it.
const MaxBlockSize = 1024

// MinBlockSize is the lower bound below which adjacent Runs of the same
// Kind should coalesce when an edit gives the opportunity. Runs smaller
// than MinBlockSize may exist; they are not compacted proactively.
const MinBlockSize = 512

// Kind identifies a Run's storage class.
type Kind uint8

const (
	// Ascii holds bytes, each less than 0x80.
	Ascii Kind = iota
	// Bmp holds scalar values whose UTF-8 encoding is one or two bytes —
	// small-alphabet non-ASCII text such as Cyrillic or Latin Extended.
	Bmp
	// Complex holds grapheme clusters, each an owned string of one or more
	// scalar values — emoji, ZWJ sequences, combining marks, and any
	// grapheme whose UTF-8 encoding exceeds two bytes.
	Complex
)

func (k Kind) String() string {
	switch k {
	case Ascii:
		return "Ascii"
	case Bmp:
		return "Bmp"
	case Complex:
		return "Complex"
	default:
		return "Kind(?)"
	}
}

// Run is a single typed run of text: one of Ascii, Bmp, or Complex. The
// zero value is an empty Ascii run, matching the empty Buffer's initial
// segment.
type Run struct {
	kind    Kind
	ascii   []byte
	bmp     []rune
	complex []string
}

// NewAscii returns an Ascii Run over b. b is taken by reference; callers
// should not mutate it afterward.
func NewAscii(b []byte) Run {
	return Run{kind: Ascii, ascii: b}
}

// NewBmp returns a Bmp Run over r.
func NewBmp(r []rune) Run {
	return Run{kind: Bmp, bmp: r}
}

// NewComplex returns a Complex Run over graphemes.
func NewComplex(graphemes []string) Run {
	return Run{kind: Complex, complex: graphemes}
}

// Kind reports the Run's storage class.
func (r *Run) Kind() Kind {
	return r.kind
}

// Len returns the Run's logical length: the element count of its backing
// sequence, per the package doc.
func (r *Run) Len() int {
	switch r.kind {
	case Ascii:
		return len(r.ascii)
	case Bmp:
		return len(r.bmp)
	default:
		return len(r.complex)
	}
}

// IsEmpty reports whether the Run has zero elements.
func (r *Run) IsEmpty() bool {
	return r.Len() == 0
}

// TryMerge attempts to append other's elements to r. Merge succeeds only
// when r and other share a Kind and their combined length is below
// MaxBlockSize; on success other is consumed and true is returned. On
// failure r is untouched and false is returned, leaving other for the
// caller to keep separate.
func (r *Run) TryMerge(other Run) bool {
	if r.kind != other.kind {
		return false
	}
	if r.Len()+other.Len() >= MaxBlockSize {
		return false
	}
	switch r.kind {
	case Ascii:
		r.ascii = append(r.ascii, other.ascii...)
	case Bmp:
		r.bmp = append(r.bmp, other.bmp...)
	default:
		r.complex = append(r.complex, other.complex...)
	}
	return true
}

// Split splits r at logical position at: r retains [0, at), and the
// returned Run holds [at, Len()) of the same Kind. at must be in
// [0, Len()]; Split does not validate it (callers already hold the base
// index and length needed to keep at in range).
func (r *Run) Split(at int) Run {
	switch r.kind {
	case Ascii:
		tail := append([]byte(nil), r.ascii[at:]...)
		r.ascii = r.ascii[:at:at]
		return NewAscii(tail)
	case Bmp:
		tail := append([]rune(nil), r.bmp[at:]...)
		r.bmp = r.bmp[:at:at]
		return NewBmp(tail)
	default:
		tail := append([]string(nil), r.complex[at:]...)
		r.complex = r.complex[:at:at]
		return NewComplex(tail)
	}
}

// WriteTo renders the Run's elements as UTF-8 text, without building an
// intermediate string for the whole Run.
func (r *Run) WriteTo(w io.Writer) (int64, error) {
	switch r.kind {
	case Ascii:
		n, err := w.Write(r.ascii)
		return int64(n), err
	case Bmp:
		var total int64
		for _, ch := range r.bmp {
			n, err := w.Write([]byte(string(ch)))
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		return total, nil
	default:
		var total int64
		for _, g := range r.complex {
			n, err := io.WriteString(w, g)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
}

// String renders the Run's elements as a single string.
func (r *Run) String() string {
	var b strings.Builder
	b.Grow(r.Len())
	_, _ = r.WriteTo(&b)
	return b.String()
}
