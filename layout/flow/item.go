package flow

import "github.com/kanryu/flowdoc/layout"

// Item is one prepared entry awaiting commit into the current region's
// frame. It is a closed sum type: placement logic pattern-matches on it
// rather than relying on inheritance, per the item model invariants.
type Item interface{ isFlowItem() }

// AbsoluteItem is vertical spacing; Weak items are dropped if no preceding
// in-flow Frame item exists yet in the region, and trimmed from the tail
// before commit.
type AbsoluteItem struct {
	Amount layout.Abs
	Weak   bool
}

func (AbsoluteItem) isFlowItem() {}

// FractionalItem is a share of leftover vertical space, resolved at commit.
type FractionalItem struct {
	Amount layout.Fr
}

func (FractionalItem) isFlowItem() {}

// FrameItemEntry is a laid-out block occupying its own vertical band.
// Sticky means "migrate together with the next item rather than be
// stranded at region end"; Movable means "may be re-flowed together with
// its footnotes into the next region" (true for paragraph lines and
// single-region blocks).
type FrameItemEntry struct {
	Frame   layout.Frame
	Align   layout.Alignment
	Sticky  bool
	Movable bool
}

func (FrameItemEntry) isFlowItem() {}

// PlacedItem is absolutely positioned content. Non-floating items contribute
// zero height; floating items reserve height+clearance and dock to the top
// or bottom band per YAlign (nil means "auto": a float's alignment is
// resolved before the item is pushed, while a non-floating item keeps nil and
// sits at the flow cursor).
type PlacedItem struct {
	Frame     layout.Frame
	XAlign    layout.FixedAlignment
	YAlign    *layout.FixedAlignment
	Delta     layout.Axes[layout.Relative]
	Float     bool
	Clearance layout.Abs
}

func (PlacedItem) isFlowItem() {}

// FootnoteItem is an entry in the footnote area (or the separator itself,
// which is always the first FootnoteItem of a region that has any).
type FootnoteItem struct {
	Frame layout.Frame
}

func (FootnoteItem) isFlowItem() {}

// IsOutOfFlow reports whether the item takes no vertical space in the flow
// and therefore does not by itself force a region to be created: non-floating
// placed items, and frames that are zero-size and contain only links/tags.
func IsOutOfFlow(item Item) bool {
	switch it := item.(type) {
	case PlacedItem:
		return !it.Float
	case FrameItemEntry:
		if !it.Frame.Size().IsZero() {
			return false
		}
		for _, pi := range it.Frame.Items() {
			switch pi.Item.(type) {
			case layout.LinkItem, layout.TagItem:
				continue
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}
