package flow

import (
	"fmt"

	"github.com/kanryu/flowdoc/layout"
)

// Layouter performs flow layout: it packs an ordered child stream into a
// paginated sequence of regions, honoring orphan/widow prevention, sticky
// adjacency, weak spacing, floats and footnote hoisting.
type Layouter struct {
	engine   *layout.Engine
	flow     *Flow
	inline   InlineLayouter
	footnote FootnoteConfig

	// root is whether this is the outermost flow; only root flows host
	// footnotes.
	root bool

	locator *layout.SplitLocator
	styles  *layout.StyleChain
	regions layout.Regions

	// expand is the flow's own expansion request, independent of whatever
	// regions.Expand is forced to for internal bookkeeping.
	expand layout.Axes[bool]

	// initial is regions.Size as it stood before this region started being
	// consumed; used as the baseline for relative-spacing resolution.
	initial layout.Size

	lastWasPar bool

	items         []Item
	pendingTags   []layout.Tag
	pendingFloats []PlacedItem

	hasFootnotes bool
	finished     []layout.Frame
}

// New constructs a flow layouter. See §4.2 Construction: the single-block
// exemption for expand.y, the root flag capture-and-clear, and the footnote
// config caching all happen here.
func New(
	engine *layout.Engine,
	flow *Flow,
	locator *layout.SplitLocator,
	styles *layout.StyleChain,
	regions layout.Regions,
	inline InlineLayouter,
	footnote FootnoteConfig,
) *Layouter {
	alone := false
	if len(flow.Children) == 1 {
		_, alone = flow.Children[0].(BlockChild)
	}

	expand := regions.Expand
	if !alone {
		regions.Expand.Y = false
	}

	root := regions.Root
	regions.Root = false

	return &Layouter{
		engine:   engine,
		flow:     flow,
		inline:   inline,
		footnote: footnote,
		root:     root,
		locator:  locator,
		styles:   styles,
		regions:  regions,
		expand:   expand,
		initial:  regions.Size,
	}
}

// Layout runs the main loop over every child in source order and finishes
// the fragment.
func (l *Layouter) Layout() (layout.Fragment, error) {
	for _, child := range l.flow.Children {
		var err error
		switch c := child.(type) {
		case TagChild:
			l.handleTag(c)
		case SpacingChild:
			err = l.handleSpacing(c)
		case ColbreakChild:
			err = l.handleColbreak()
		case ParChild:
			err = l.handlePar(c)
		case BlockChild:
			err = l.handleBlock(c)
		case PlaceChild:
			err = l.handlePlace(c)
		case FlushChild:
			err = l.handleFlush()
		default:
			err = fmt.Errorf("flow: unexpected flow child %T", child)
		}
		if err != nil {
			return layout.Fragment{}, err
		}
	}
	return l.finish()
}

// handleTag queues metadata to attach to the next non-empty frame.
func (l *Layouter) handleTag(c TagChild) {
	l.pendingTags = append(l.pendingTags, c.Tag)
}

// handleSpacing emits Absolute or Fractional spacing.
func (l *Layouter) handleSpacing(c SpacingChild) error {
	if c.Fr != nil {
		return l.handleItem(FractionalItem{Amount: *c.Fr})
	}
	var rel layout.Relative
	if c.Rel != nil {
		rel = *c.Rel
	}
	return l.handleItem(AbsoluteItem{
		Amount: rel.RelativeTo(l.initial.Height),
		Weak:   c.Weak,
	})
}

// handleColbreak commits the current region if a further one remains.
func (l *Layouter) handleColbreak() error {
	if l.regions.CanBreak() {
		return l.finishRegion(true)
	}
	return nil
}

// handlePar lays out a paragraph's lines, applying orphan/widow guards.
// See §4.2 Paragraph handling.
func (l *Layouter) handlePar(c ParChild) error {
	loc := l.locator.Next(c)
	frag, err := l.inline.LayoutInline(l.engine, c.Content, loc, c.Styles, l.lastWasPar, l.regions.Base(), l.regions.Expand.X)
	if err != nil {
		return err
	}
	lines := frag.Frames()

	// If the first line doesn't fit, defer any previously-committed sticky
	// frame to the next region and retry.
	if len(lines) > 0 {
		first := lines[0]
		for !l.regions.Size.Height.Fits(first.Height()) && !l.regions.InLast() {
			inLast, err := l.finishRegionWithMigration()
			if err != nil {
				return err
			}
			if inLast {
				break
			}
		}
	}

	n := len(lines)
	prevOrphans := c.CostOrphan > 0 && n >= 2 && !lines[1].IsEmpty()
	prevWidows := c.CostWidow > 0 && n >= 2 && !lines[n-2].IsEmpty()
	prevAll := n == 3 && prevOrphans && prevWidows

	heightAt := func(i int) layout.Abs {
		if i < 0 || i >= n {
			return 0
		}
		return lines[i].Height()
	}
	front1, front2 := heightAt(0), heightAt(1)
	back2, back1 := heightAt(n-2), heightAt(n-1)

	for i, frame := range lines {
		if i > 0 {
			if err := l.handleItem(AbsoluteItem{Amount: c.Leading, Weak: true}); err != nil {
				return err
			}
		}

		var needed layout.Abs
		switch {
		case prevAll && i == 0:
			needed = front1 + c.Leading + front2 + c.Leading + back1
		case prevOrphans && i == 0:
			needed = front1 + c.Leading + front2
		case prevWidows && i >= 2 && i+2 == n:
			needed = back2 + c.Leading + back1
		default:
			needed = frame.Height()
		}

		if !l.regions.InLast() && !l.regions.Size.Height.Fits(needed) {
			if next, ok := l.regions.NthHeight(1); ok && next.Fits(needed) {
				if err := l.finishRegion(false); err != nil {
					return err
				}
			}
		}

		l.drainTag(&frame)
		if err := l.handleItem(FrameItemEntry{Frame: frame, Align: c.Align, Sticky: false, Movable: true}); err != nil {
			return err
		}
	}

	l.lastWasPar = true
	return nil
}

// handlePlace lays out a placed element and emits a PlacedItem.
func (l *Layouter) handlePlace(c PlaceChild) error {
	loc := l.locator.Next(c)
	frame, err := c.Layouter.Layout(l.engine, loc, c.Styles, l.regions.Base())
	if err != nil {
		return err
	}
	return l.handleItem(PlacedItem{
		Frame:     frame,
		XAlign:    c.XAlign,
		YAlign:    c.YAlign,
		Delta:     c.Delta,
		Float:     c.Float,
		Clearance: c.Clearance,
	})
}

// handleFlush drains queued floats, reattempting each as a regular item
// (a previously-deferred float may now fit), then commits regions until the
// float queue is empty.
func (l *Layouter) handleFlush() error {
	pending := l.pendingFloats
	l.pendingFloats = nil
	for _, it := range pending {
		if err := l.handleItem(it); err != nil {
			return err
		}
	}
	for len(l.pendingFloats) > 0 {
		if err := l.finishRegion(false); err != nil {
			return err
		}
	}
	return nil
}

// drainTag attaches any pending tags to the front of a non-empty frame.
func (l *Layouter) drainTag(frame *layout.Frame) {
	if len(l.pendingTags) == 0 || frame.IsEmpty() {
		return
	}
	items := make([]layout.PositionedItem, len(l.pendingTags))
	for i, tag := range l.pendingTags {
		items[i] = layout.PositionedItem{Pos: layout.Point{}, Item: layout.TagItem{Tag: tag}}
	}
	frame.PrependMultiple(items)
	l.pendingTags = nil
}
