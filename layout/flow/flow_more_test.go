package flow

import (
	"testing"

	"github.com/kanryu/flowdoc/layout"
)

func TestLayouterColbreakStartsNewRegionWhenBacklogRemains(t *testing.T) {
	f := &Flow{Children: []Child{
		par(),
		ColbreakChild{},
		par(),
	}}
	regions := layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{})
	l := New(newEngine(), f, layout.Locator{}.Split(), nil, regions, fixedInline{lineHeight: 10, lineWidth: 100, count: 1}, FootnoteConfig{})

	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected colbreak to force a second region, got %d frames", frag.Len())
	}
}

func TestLayoutColumnsBypassedOnInfiniteWidth(t *testing.T) {
	f := &Flow{Children: []Child{par()}}
	regions := layout.Repeat(layout.Size{Width: layout.Inf(), Height: 200}, layout.Axes[bool]{})
	inner := New(newEngine(), f, layout.Locator{}.Split(), nil, regions, fixedInline{lineHeight: 10, lineWidth: 100, count: 1}, FootnoteConfig{})

	frag, err := LayoutColumns(newEngine(), runnerStub{inner}, layout.Location(0), nil, regions, 3, 5, layout.LTR)
	if err != nil {
		t.Fatalf("LayoutColumns: %v", err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected infinite width to bypass column splitting, got %d frames", frag.Len())
	}
}

func TestLayoutColumnsStitchesTwoColumnsIntoOneRegion(t *testing.T) {
	f := &Flow{Children: []Child{
		BlockChild{Layouter: fixedBlock{size: layout.Size{Width: 10, Height: 190}}},
		BlockChild{Layouter: fixedBlock{size: layout.Size{Width: 10, Height: 190}}},
	}}
	regions := layout.Repeat(layout.Size{Width: 100, Height: 200}, layout.Axes[bool]{})
	inner := New(newEngine(), f, layout.Locator{}.Split(), nil, regions, fixedInline{}, FootnoteConfig{})

	frag, err := LayoutColumns(newEngine(), runnerStub{inner}, layout.Location(0), nil, regions, 2, 10, layout.LTR)
	if err != nil {
		t.Fatalf("LayoutColumns: %v", err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected both blocks to fit side-by-side in one output region, got %d frames", frag.Len())
	}
	if got, want := frag.Frames()[0].Width(), layout.Abs(100); got != want {
		t.Fatalf("expected output frame to span the full region width, got %v", got)
	}
}

// runnerStub adapts an already-constructed *Layouter to FragmentLayouter's
// single-call shape.
type runnerStub struct {
	l *Layouter
}

func (r runnerStub) Layout(_ *layout.Engine, _ layout.Location, _ *layout.StyleChain, _ layout.Regions) (layout.Fragment, error) {
	return r.l.Layout()
}
