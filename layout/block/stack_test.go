package block

import (
	"testing"

	"github.com/kanryu/flowdoc/layout"
)

type fixedFrame struct {
	size layout.Size
}

func (f fixedFrame) Layout(_ *layout.Engine, _ layout.Location, _ *layout.StyleChain, _ layout.Regions) (layout.Fragment, error) {
	return layout.NewFragment([]layout.Frame{layout.NewHardFrame(f.size)}), nil
}

func TestStackLayoutStacksVerticallyWithGap(t *testing.T) {
	s := &Stack{
		Dir:     layout.TTB,
		Spacing: AbsSpacing{Value: 5},
		Children: []StackChild{
			StackItem{Layouter: fixedFrame{size: layout.Size{Width: 50, Height: 20}}},
			StackItem{Layouter: fixedFrame{size: layout.Size{Width: 50, Height: 20}}},
		},
	}

	regions := layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{})
	frag, err := s.Layout(&layout.Engine{Sink: layout.NewSink()}, layout.Location(0), nil, regions)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected 1 frame, got %d", frag.Len())
	}
	frame := frag.Frames()[0]
	if got, want := frame.Height(), layout.Abs(45); got != want {
		t.Fatalf("expected height %v (20+5+20), got %v", want, got)
	}

	items := frame.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 positioned children, got %d", len(items))
	}
	if items[0].Pos.Y != 0 {
		t.Fatalf("expected first child at y=0, got %v", items[0].Pos.Y)
	}
	if items[1].Pos.Y != 25 {
		t.Fatalf("expected second child at y=25 (20+5 gap), got %v", items[1].Pos.Y)
	}
}

func TestStackLayoutOverflowsToNextRegion(t *testing.T) {
	// Each block exactly fills a region's height, so the stack's
	// regionIsFull check (run before laying out the next child) trips and
	// starts a fresh region rather than the child having to split itself.
	s := &Stack{
		Dir: layout.TTB,
		Children: []StackChild{
			StackItem{Layouter: fixedFrame{size: layout.Size{Width: 50, Height: 200}}},
			StackItem{Layouter: fixedFrame{size: layout.Size{Width: 50, Height: 200}}},
		},
	}

	regions := layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{})
	frag, err := s.Layout(&layout.Engine{Sink: layout.NewSink()}, layout.Location(0), nil, regions)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected the second 200pt block to overflow into its own region, got %d frames", frag.Len())
	}
}

func TestPadGrowsFrameBackOutByInset(t *testing.T) {
	inset := layout.SplatSides(layout.RelAbs(10))
	p := &Pad{
		Inset: inset,
		Body:  fixedFrame{size: layout.Size{Width: 30, Height: 30}},
	}

	regions := layout.One(layout.Size{Width: 100, Height: 100}, layout.Axes[bool]{})
	frag, err := p.Layout(&layout.Engine{Sink: layout.NewSink()}, layout.Location(0), nil, regions)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected 1 frame, got %d", frag.Len())
	}
	size := frag.Frames()[0].Size()
	if got, want := size.Width, layout.Abs(50); got != want {
		t.Fatalf("expected grown width 50 (30+10+10), got %v", got)
	}
	if got, want := size.Height, layout.Abs(50); got != want {
		t.Fatalf("expected grown height 50 (30+10+10), got %v", got)
	}
}

func TestSinglePlacedLayoutTakesFirstFrame(t *testing.T) {
	single := &Single{Body: fixedFrame{size: layout.Size{Width: 20, Height: 20}}}
	frame, err := single.Layout(&layout.Engine{Sink: layout.NewSink()}, layout.Location(0), nil, layout.Size{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frame.Size() != (layout.Size{Width: 20, Height: 20}) {
		t.Fatalf("expected the body's frame size, got %v", frame.Size())
	}
}
