package flow

import (
	"testing"

	"github.com/kanryu/flowdoc/layout"
)

// fixedInline returns a fixed number of lines of a fixed height, ignoring its
// content argument entirely; good enough to drive the packer's region logic.
type fixedInline struct {
	lineHeight layout.Abs
	lineWidth  layout.Abs
	count      int
}

func (f fixedInline) LayoutInline(_ *layout.Engine, _ InlineContent, _ layout.Location, _ *layout.StyleChain, _ bool, base layout.Size, _ bool) (layout.Fragment, error) {
	frames := make([]layout.Frame, f.count)
	for i := range frames {
		fr := layout.NewSoftFrame(layout.Size{Width: f.lineWidth, Height: f.lineHeight})
		frames[i] = fr
	}
	return layout.NewFragment(frames), nil
}

type fixedBlock struct {
	size layout.Size
}

func (b fixedBlock) Layout(_ *layout.Engine, _ layout.Location, _ *layout.StyleChain, _ layout.Regions) (layout.Fragment, error) {
	return layout.NewFragment([]layout.Frame{layout.NewHardFrame(b.size)}), nil
}

func newEngine() *layout.Engine {
	return &layout.Engine{Sink: layout.NewSink()}
}

func par() ParChild {
	return ParChild{
		Content: struct{}{},
		Align:   layout.Alignment{X: layout.AlignStart, Y: layout.AlignStart},
		Leading: 2,
	}
}

func TestLayouterSingleParagraphFitsOneRegion(t *testing.T) {
	f := &Flow{Children: []Child{par()}}
	l := New(newEngine(), f, layout.Locator{}.Split(), nil, layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{}), fixedInline{lineHeight: 10, lineWidth: 100, count: 3}, FootnoteConfig{})

	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected 1 frame, got %d", frag.Len())
	}
}

func TestLayouterWeakSpacingCollapsesAtRegionStart(t *testing.T) {
	rel := layout.RelAbs(50)
	f := &Flow{Children: []Child{
		SpacingChild{Rel: &rel, Weak: true},
		par(),
	}}
	l := New(newEngine(), f, layout.Locator{}.Split(), nil, layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{}), fixedInline{lineHeight: 10, lineWidth: 100, count: 1}, FootnoteConfig{})

	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	frame := frag.Frames()[0]
	// The weak spacer preceded any frame item, so it must have been dropped:
	// the line should sit at y=0, not y=50.
	items := frame.Items()
	if len(items) == 0 {
		t.Fatal("expected at least one item")
	}
	if items[0].Pos.Y != 0 {
		t.Fatalf("expected weak leading spacer to collapse, line at y=%v", items[0].Pos.Y)
	}
}

func TestLayouterBlockOverflowsToNextRegion(t *testing.T) {
	f := &Flow{Children: []Child{
		BlockChild{Layouter: fixedBlock{size: layout.Size{Width: 100, Height: 150}}},
		BlockChild{Layouter: fixedBlock{size: layout.Size{Width: 100, Height: 150}}},
	}}
	l := New(newEngine(), f, layout.Locator{}.Split(), nil, layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{}), fixedInline{}, FootnoteConfig{})

	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected the second 150pt block to overflow into its own region, got %d frames", frag.Len())
	}
}

func TestIsOutOfFlowNonFloatingPlaced(t *testing.T) {
	item := PlacedItem{Float: false}
	if !IsOutOfFlow(item) {
		t.Fatal("non-floating placed item should be out of flow")
	}
	item.Float = true
	if IsOutOfFlow(item) {
		t.Fatal("floating placed item should not be out of flow")
	}
}
