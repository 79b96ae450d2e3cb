package ripstring_test

import (
	"strings"
	"testing"

	"github.com/clipperhouse/ripstring"
)

func TestCharacterAtATimeBuild(t *testing.T) {
	b := ripstring.New()
	pos := 0
	for _, s := range []string{"H", "e", "l", "l", "o", " ", "world", ". "} {
		b.Edit(ripstring.Range{Start: pos, End: pos}, s)
		pos += len([]rune(s))
	}
	if got, want := b.String(), "Hello world. "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFullEditSequence(t *testing.T) {
	b := ripstring.New()
	for _, s := range []string{"H", "e", "l", "l", "o", " ", "world", ". "} {
		b.Edit(ripstring.Range{Start: b.Len(), End: b.Len()}, s)
	}
	if got, want := b.String(), "Hello world. "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Edit(ripstring.Range{Start: 13, End: 13}, "Привет мир.")
	if got, want := b.String(), "Hello world. Привет мир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Edit(ripstring.Range{Start: 13, End: 20}, "")
	if got, want := b.String(), "Hello world. мир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Edit(ripstring.Range{Start: 11, End: 13}, "")
	if got, want := b.String(), "Hello worldмир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Edit(ripstring.Range{Start: 11, End: 11}, ". Привет ")
	if got, want := b.String(), "Hello world. Привет мир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Edit(ripstring.Range{Start: 5, End: 20}, " ")
	if got, want := b.String(), "Hello мир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSmallReplaceWithinSingleSegment(t *testing.T) {
	b := ripstring.FromText("hello world")
	b.Edit(ripstring.Range{Start: 1, End: 9}, "era")
	if got, want := b.String(), "herald"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCutSpanningToPastSegmentEnd(t *testing.T) {
	b := ripstring.FromText("Hello world. Привет мир.")
	b.Edit(ripstring.Range{Start: 5, End: 20}, " ")
	if got, want := b.String(), "Hello мир."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyEditIsNoOp(t *testing.T) {
	b := ripstring.FromText("Hello world")
	before := b.String()
	b.Edit(ripstring.Range{Start: 3, End: 3}, "")
	if b.String() != before {
		t.Fatalf("got %q, want unchanged %q", b.String(), before)
	}
}

func TestEmptyBufferInsertPromotesType(t *testing.T) {
	b := ripstring.New()
	b.Edit(ripstring.Range{Start: 0, End: 0}, "Привет")
	if got, want := b.String(), "Привет"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"Привет мир",
		"a👨‍👩‍👧‍👦b",
		strings.Repeat("x", 3000),
	}
	for _, s := range cases {
		b := ripstring.FromText(s)
		if got := b.String(); got != s {
			t.Fatalf("round trip failed for %q: got %q", s, got)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range edit")
		}
	}()
	b := ripstring.FromText("hi")
	b.Edit(ripstring.Range{Start: 100, End: 100}, "x")
}

func TestInsertAtBoundariesOfASegment(t *testing.T) {
	b := ripstring.FromText("hello")
	b.Edit(ripstring.Range{Start: 0, End: 0}, ">")
	b.Edit(ripstring.Range{Start: b.Len(), End: b.Len()}, "<")
	if got, want := b.String(), ">hello<"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	b.Edit(ripstring.Range{Start: 3, End: 3}, "-")
	if got, want := b.String(), ">he-llo<"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteTo(t *testing.T) {
	b := ripstring.FromText("hello world")
	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int(n) != len("hello world") {
		t.Fatalf("got %d bytes written, want %d", n, len("hello world"))
	}
	if sb.String() != "hello world" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestBuilder(t *testing.T) {
	bld := ripstring.NewBuilder()
	bld.WriteString("hello ")
	bld.WriteString("world")
	b := bld.Build()
	if got, want := b.String(), "hello world"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLargeBufferCrossesSegmentsOnEdit(t *testing.T) {
	text := strings.Repeat("a", 3000)
	b := ripstring.FromText(text)
	// Cut across what should be multiple splitter-produced segments.
	b.Edit(ripstring.Range{Start: 100, End: 2900}, "Z")
	want := text[:100] + "Z" + text[2900:]
	if got := b.String(); got != want {
		t.Fatalf("got length %d, want length %d", len(got), len(want))
	}
}

func TestReplaceEndingOnSegmentBoundaryLeavesNoDeadSegment(t *testing.T) {
	text := strings.Repeat("a", 3000)
	b := ripstring.FromText(text)
	// End (2048) lands exactly on a splitter-produced segment boundary: the
	// far segment this replace touches is trimmed down to nothing. A
	// lingering zero-length segment wouldn't show up in String() on its
	// own, so a follow-up edit is what would expose stale bookkeeping.
	b.Edit(ripstring.Range{Start: 100, End: 2048}, "Z")
	want := text[:100] + "Z" + text[2048:]
	if got := b.String(); got != want {
		t.Fatalf("got %q, want length %d", got[:min(len(got), 20)], len(want))
	}

	b.Edit(ripstring.Range{Start: b.Len() - 1, End: b.Len() - 1}, "Q")
	want = want[:len(want)-1] + "Q" + want[len(want)-1:]
	if got := b.String(); got != want {
		t.Fatalf("follow-up edit mismatch: got length %d, want length %d", len(got), len(want))
	}
}
