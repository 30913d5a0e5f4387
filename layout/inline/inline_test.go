package inline

import (
	"testing"

	"github.com/kanryu/flowdoc/layout"
	"github.com/kanryu/flowdoc/layout/flow"
)

func layoutText(t *testing.T, body string, advance, width layout.Abs) []layout.Frame {
	t.Helper()
	l := Layouter{AdvancePerRune: advance}
	frag, err := l.LayoutInline(nil, Text{Body: body, FontSize: 10}, layout.Location(0), nil, false, layout.Size{Width: width, Height: layout.Inf()}, false)
	if err != nil {
		t.Fatalf("LayoutInline: %v", err)
	}
	return frag.Frames()
}

func TestLayoutInlineShortTextFitsOneLine(t *testing.T) {
	frames := layoutText(t, "hello world", 1, 100)
	if len(frames) != 1 {
		t.Fatalf("expected 1 line, got %d", len(frames))
	}
}

func TestLayoutInlineWrapsAtWordBoundary(t *testing.T) {
	// Each word is 5 runes wide (advance 1), and the available width only
	// fits one word plus a trailing space, so three words must wrap onto
	// separate lines rather than splitting mid-word.
	frames := layoutText(t, "aaaaa bbbbb ccccc", 1, 6)
	if len(frames) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(frames))
	}
}

func TestLayoutInlineOverlongWordStaysOnOwnLine(t *testing.T) {
	// A single word longer than the available width cannot be split by a
	// UAX #14 line-break search (no opportunity inside it), so it must still
	// be emitted as one line rather than looping forever.
	frames := layoutText(t, "supercalifragilisticexpialidocious", 1, 5)
	if len(frames) != 1 {
		t.Fatalf("expected the overlong word on a single line, got %d", len(frames))
	}
}

func TestLayoutInlineRejectsUnknownContent(t *testing.T) {
	l := Layouter{AdvancePerRune: 1}
	frag, err := l.LayoutInline(nil, struct{}{}, layout.Location(0), nil, false, layout.Size{Width: 100, Height: layout.Inf()}, false)
	if err != nil {
		t.Fatalf("LayoutInline: %v", err)
	}
	if frag.Len() != 0 {
		t.Fatalf("expected no frames for unrecognized content, got %d", frag.Len())
	}
}

func TestDirectionDetectsRTL(t *testing.T) {
	if got := direction("hello"); got != layout.LTR {
		t.Fatalf("expected LTR for plain Latin text, got %v", got)
	}
	if got := direction("אבג"); got != layout.RTL {
		t.Fatalf("expected RTL for Hebrew text, got %v", got)
	}
}

var _ flow.InlineLayouter = Layouter{}
