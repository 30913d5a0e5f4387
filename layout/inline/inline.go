package inline

import (
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/bidi"

	"github.com/kanryu/flowdoc/layout"
	"github.com/kanryu/flowdoc/layout/flow"
)

// Text is the InlineContent payload this adapter understands: a run of
// plain text plus the font metrics needed to measure it.
type Text struct {
	Body     string
	FontSize layout.Abs
	LineGap  layout.Abs
}

// Layouter is a minimal flow.InlineLayouter: it breaks Text at UAX #14 line
// boundaries, greedily packs runes onto lines up to the available width, and
// emits one frame per line holding a single placeholder TextItem.
type Layouter struct {
	// AdvancePerRune is the fixed horizontal advance assigned to every rune,
	// standing in for real font shaping.
	AdvancePerRune layout.Abs
}

// direction reports the paragraph's resolved base direction so callers can
// choose how to interpret Align.X (Start/End rather than Left/Right).
func direction(text string) layout.Dir {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return layout.LTR
	}
	dir, err := p.Direction()
	if err != nil {
		return layout.LTR
	}
	if dir == bidi.RightToLeft {
		return layout.RTL
	}
	return layout.LTR
}

// breakRuneOffsets returns the rune offsets of every UAX #14 line-break
// opportunity in runes, in ascending order, always ending with len(runes).
func breakRuneOffsets(runes []rune) []int {
	var seg segmenter.Segmenter
	seg.Init(runes)

	var offsets []int
	iter := seg.LineIterator()
	for iter.Next() {
		ln := iter.Line()
		offsets = append(offsets, ln.Offset+ln.Len)
	}
	if len(offsets) == 0 || offsets[len(offsets)-1] != len(runes) {
		offsets = append(offsets, len(runes))
	}
	return offsets
}

// LayoutInline implements flow.InlineLayouter.
func (l Layouter) LayoutInline(
	_ *layout.Engine,
	content flow.InlineContent,
	_ layout.Location,
	_ *layout.StyleChain,
	_ bool,
	base layout.Size,
	expandX bool,
) (layout.Fragment, error) {
	text, ok := content.(Text)
	if !ok {
		return layout.NewFragment(nil), nil
	}

	advance := l.AdvancePerRune
	if advance == 0 {
		advance = text.FontSize * 0.55
	}
	lineHeight := text.FontSize + text.LineGap

	width := base.Width
	maxRunesPerLine := int(width / advance)
	if maxRunesPerLine < 1 {
		maxRunesPerLine = 1
	}

	runes := []rune(text.Body)
	breaks := breakRuneOffsets(runes)

	// Walk break-opportunity segments, greedily accumulating them onto the
	// current line until the next segment would overflow it.
	var lines []layout.Frame
	lineStart, segStart := 0, 0
	for _, segEnd := range breaks {
		if segEnd-lineStart > maxRunesPerLine && segStart > lineStart {
			lines = append(lines, makeLineFrame(runes, lineStart, segStart, advance, lineHeight, width, expandX))
			lineStart = segStart
		}
		segStart = segEnd
	}
	lines = append(lines, makeLineFrame(runes, lineStart, segStart, advance, lineHeight, width, expandX))

	return layout.NewFragment(lines), nil
}

func makeLineFrame(runes []rune, start, end int, advance, lineHeight, width layout.Abs, expandX bool) layout.Frame {
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start = end
	}
	text := string(runes[start:end])
	w := advance * layout.Abs(end-start)
	size := layout.Size{Width: w, Height: lineHeight}
	if expandX {
		size.Width = width
	}
	frame := layout.NewSoftFrame(size)
	if end > start {
		frame.Push(layout.Point{}, layout.TextItem{Text: text, Size: layout.Size{Width: w, Height: lineHeight}})
	}
	return frame
}
