package ripstring

import (
	"strings"

	"github.com/clipperhouse/ripstring/segment"
)

// Builder accumulates text for bulk Buffer construction. It is equivalent
// to FromText but useful when the source text is assembled incrementally
// (for example, read in chunks) — splitting and index assignment happen
// once, in Build, rather than incrementally the way repeated Edit calls
// would pay for each insertion.
type Builder struct {
	text strings.Builder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteString appends s to the text the Builder will split on Build.
func (b *Builder) WriteString(s string) {
	b.text.WriteString(s)
}

// Build runs the splitter once over the accumulated text and returns the
// resulting Buffer, with every segment's index assigned in a single
// forward pass.
func (b *Builder) Build() *Buffer {
	segs := splitToSegments(b.text.String())
	if len(segs) == 0 {
		segs = []*segment.Segment{segment.NewEmpty()}
	}
	return &Buffer{segments: segs}
}
