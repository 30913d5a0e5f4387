// Package block is a minimal adapter implementing the flow package's
// BlockLayouter and PlacedLayouter collaborators: a directional stack of
// sub-blocks and absolute/fractional spacing, and a padding wrapper that
// shrinks the region, lays out its body, then grows the frame back out.
package block

import (
	"fmt"

	"github.com/kanryu/flowdoc/layout"
)

// Spacing is either an absolute gap or a fractional share of the leftover
// main-axis space.
type Spacing interface{ isSpacing() }

// AbsSpacing is a fixed gap between stack children.
type AbsSpacing struct{ Value layout.Abs }

func (AbsSpacing) isSpacing() {}

// FrSpacing is a fractional gap sharing leftover space with its siblings.
type FrSpacing struct{ Value layout.Fr }

func (FrSpacing) isSpacing() {}

// Stack arranges its children (blocks and spacing, in order) along Dir,
// optionally expanding to fill the cross axis.
type Stack struct {
	Dir      layout.Dir
	Spacing  Spacing
	Children []StackChild
}

// StackChild is one element of a Stack: either a sub-block or explicit
// spacing inserted between blocks.
type StackChild interface{ isStackChild() }

type StackItem struct {
	Layouter FrameLayouter
	Align    layout.Alignment
}

func (StackItem) isStackChild() {}

type StackGap struct{ Spacing Spacing }

func (StackGap) isStackChild() {}

// FrameLayouter lays itself out into a sequence of regions. Structurally
// identical to flow.BlockLayouter, so a flow.BlockChild.Layouter value can be
// passed here directly without an adapter, and vice versa.
type FrameLayouter interface {
	Layout(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		regions layout.Regions,
	) (layout.Fragment, error)
}

// Layout implements flow.BlockLayouter: it packs Children along s.Dir,
// deferring the configured inter-block Spacing until a block actually
// follows (so trailing/leading spacing around an empty stack never appears).
// It starts a new region only when the current one is full before a child or
// between the frames of a multi-frame child; a child that does not fit the
// remaining space is not moved to the next region.
func (s *Stack) Layout(
	engine *layout.Engine,
	locator layout.Location,
	styles *layout.StyleChain,
	regions layout.Regions,
) (layout.Fragment, error) {
	l := newStackLayouter(s.Dir, regions)

	var deferred Spacing
	for _, child := range s.Children {
		switch c := child.(type) {
		case StackGap:
			l.layoutSpacing(c.Spacing)
			deferred = nil
		case StackItem:
			if deferred != nil {
				l.layoutSpacing(deferred)
			}
			if err := l.layoutBlock(engine, locator, styles, c.Layouter, c.Align); err != nil {
				return layout.Fragment{}, err
			}
			deferred = s.Spacing
		}
	}

	return l.finish()
}

// genericSize decomposes a Size into the main-axis and cross-axis extent for
// the stack's current direction, independent of whether that direction is
// horizontal or vertical.
type genericSize struct{ Main, Cross layout.Abs }

func (g genericSize) toSize(axis layout.Axis) layout.Size {
	if axis == layout.AxisX {
		return layout.Size{Width: g.Main, Height: g.Cross}
	}
	return layout.Size{Width: g.Cross, Height: g.Main}
}

type stackItem interface{ isPreparedItem() }

type preparedAbsolute struct{ Value layout.Abs }

func (preparedAbsolute) isPreparedItem() {}

type preparedFractional struct{ Value layout.Fr }

func (preparedFractional) isPreparedItem() {}

type preparedFrame struct {
	Frame layout.Frame
	Align layout.Alignment
}

func (preparedFrame) isPreparedItem() {}

type stackLayouter struct {
	dir     layout.Dir
	axis    layout.Axis
	regions layout.Regions
	expand  layout.Axes[bool]
	initial layout.Size
	used    genericSize
	fr      layout.Fr
	items   []stackItem
	out     []layout.Frame
}

func newStackLayouter(dir layout.Dir, regions layout.Regions) *stackLayouter {
	axis := dir.Axis()
	return &stackLayouter{
		dir:     dir,
		axis:    axis,
		regions: regions,
		expand:  regions.Expand,
		initial: regions.Size,
	}
}

func (l *stackLayouter) mainRemaining() layout.Abs {
	if l.axis == layout.AxisX {
		return l.regions.Size.Width
	}
	return l.regions.Size.Height
}

func (l *stackLayouter) setMainRemaining(v layout.Abs) {
	if l.axis == layout.AxisX {
		l.regions.Size.Width = v
	} else {
		l.regions.Size.Height = v
	}
}

func (l *stackLayouter) layoutSpacing(spacing Spacing) {
	switch s := spacing.(type) {
	case AbsSpacing:
		remaining := l.mainRemaining()
		limited := s.Value.Min(remaining)
		if l.axis == layout.AxisY {
			l.setMainRemaining(remaining - limited)
		}
		l.used.Main += limited
		l.items = append(l.items, preparedAbsolute{Value: limited})
	case FrSpacing:
		l.fr += s.Value
		l.items = append(l.items, preparedFractional{Value: s.Value})
	}
}

func (l *stackLayouter) regionIsFull() bool {
	return l.mainRemaining() <= 0
}

func (l *stackLayouter) layoutBlock(
	engine *layout.Engine,
	locator layout.Location,
	styles *layout.StyleChain,
	child FrameLayouter,
	align layout.Alignment,
) error {
	if l.regionIsFull() {
		if err := l.finishRegion(); err != nil {
			return err
		}
	}

	childRegions := l.regions
	if l.axis == layout.AxisX {
		childRegions.Expand.X = false
	} else {
		childRegions.Expand.Y = false
	}

	frag, err := child.Layout(engine, locator, styles, childRegions)
	if err != nil {
		return err
	}

	frames := frag.Frames()
	for i, frame := range frames {
		size := frame.Size()
		if l.axis == layout.AxisY {
			l.regions.Size.Height -= size.Height
		} else {
			l.regions.Size.Width -= size.Width
		}

		var gs genericSize
		if l.axis == layout.AxisX {
			gs = genericSize{Main: size.Width, Cross: size.Height}
		} else {
			gs = genericSize{Main: size.Height, Cross: size.Width}
		}
		l.used.Main += gs.Main
		l.used.Cross = l.used.Cross.Max(gs.Cross)

		l.items = append(l.items, preparedFrame{Frame: frame, Align: align})

		if i+1 < len(frames) {
			if err := l.finishRegion(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *stackLayouter) finishRegion() error {
	used := l.used.toSize(l.axis)
	size := layout.Size{
		Width:  used.Width,
		Height: used.Height,
	}
	if l.expand.X {
		size.Width = l.initial.Width
	}
	if l.expand.Y {
		size.Height = l.initial.Height
	}
	size = size.Min(l.initial)

	var full layout.Abs
	if l.axis == layout.AxisX {
		full = l.initial.Width
	} else {
		full = l.initial.Height
	}
	remaining := full - l.used.Main

	if l.fr > 0 && full.IsFinite() {
		l.used.Main = full
		if l.axis == layout.AxisX {
			size.Width = full
		} else {
			size.Height = full
		}
	}

	if !size.Width.IsFinite() || !size.Height.IsFinite() {
		return fmt.Errorf("block: stack spacing resolves to an infinite size")
	}

	frame := layout.NewHardFrame(size)
	var cursor layout.Abs

	for _, item := range l.items {
		switch it := item.(type) {
		case preparedAbsolute:
			cursor += it.Value
		case preparedFractional:
			cursor += it.Value.Share(l.fr, remaining)
		case preparedFrame:
			var crossAlign layout.FixedAlignment
			if l.axis == layout.AxisX {
				crossAlign = it.Align.Y
			} else {
				crossAlign = it.Align.X
			}

			fsize := it.Frame.Size()
			var childMain layout.Abs
			if l.axis == layout.AxisX {
				childMain = fsize.Width
			} else {
				childMain = fsize.Height
			}

			// Main-axis position follows the cursor directly; a child's own
			// main-axis alignment (distinct from its cross-axis alignment
			// handled below) is not modeled here.
			var main layout.Abs
			if l.dir.IsPositive() {
				main = cursor
			} else {
				main = l.used.Main - childMain - cursor
			}

			var crossParent, crossChild layout.Abs
			if l.axis == layout.AxisX {
				crossParent, crossChild = size.Height, fsize.Height
			} else {
				crossParent, crossChild = size.Width, fsize.Width
			}
			cross := crossAlign.Position(crossParent - crossChild)

			var pos layout.Point
			if l.axis == layout.AxisX {
				pos = layout.Point{X: main, Y: cross}
			} else {
				pos = layout.Point{X: cross, Y: main}
			}

			cursor += childMain
			frame.PushFrame(pos, it.Frame)
		}
	}

	l.out = append(l.out, frame)
	l.regions.Next()
	l.initial = l.regions.Size
	l.used = genericSize{}
	l.fr = 0
	l.items = nil
	return nil
}

func (l *stackLayouter) finish() (layout.Fragment, error) {
	if err := l.finishRegion(); err != nil {
		return layout.Fragment{}, err
	}
	return layout.NewFragment(l.out), nil
}
