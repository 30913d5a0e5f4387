package flow

import (
	"github.com/kanryu/flowdoc/layout"
)

// handleBlock lays out a block, promoting it to root for footnote-hosting
// purposes if this flow is root and the block permits it, committing between
// successive fragment frames and collecting/discharging any footnotes the
// block's content referenced.
func (l *Layouter) handleBlock(c BlockChild) error {
	isRoot := l.root
	if isRoot && c.Rootable {
		l.root = false
		l.regions.Root = true
	}

	if l.regions.IsFull() {
		if err := l.finishRegion(false); err != nil {
			return err
		}
	}

	loc := l.locator.Next(c)
	frag, err := c.Layouter.Layout(l.engine, loc, c.Styles, l.regions)
	if err != nil {
		return err
	}
	frames := frag.Frames()
	// A single-region block is movable: handleItem discharges its footnotes
	// together with the frame, so both can migrate to the next region.
	movable := len(frames) == 1

	var notes []layout.Tag
	for i, frame := range frames {
		if i > 0 {
			if err := l.finishRegion(false); err != nil {
				return err
			}
		}
		if l.root && !movable {
			collectFootnotes(&notes, &frame)
		}
		l.drainTag(&frame)
		if err := l.handleItem(FrameItemEntry{Frame: frame, Align: c.Align, Sticky: c.Sticky, Movable: movable}); err != nil {
			return err
		}
	}

	if err := l.tryHandleFootnotes(notes); err != nil {
		return err
	}

	if isRoot && c.Rootable {
		l.root = isRoot
		l.regions.Root = false
	}
	l.lastWasPar = false
	return nil
}

// handleItem is the central dispatch that enqueues a prepared Item,
// committing regions as needed to make room, and running the root flow's
// footnote bookkeeping for movable frames and floats.
func (l *Layouter) handleItem(item Item) error {
	switch it := item.(type) {
	case AbsoluteItem:
		if it.Weak && !l.hasPrecedingFrame() {
			return nil
		}
		l.regions.Size.Height -= it.Amount
		l.items = append(l.items, item)
		return nil

	case FractionalItem:
		l.items = append(l.items, item)
		return nil

	case FrameItemEntry:
		height := it.Frame.Height()
		for !l.regions.Size.Height.Fits(height) && !l.regions.InLast() {
			if err := l.finishRegion(false); err != nil {
				return err
			}
		}
		inLast := l.regions.InLast()
		l.regions.Size.Height -= height

		if l.root && it.Movable {
			var notes []layout.Tag
			frame := it.Frame
			collectFootnotes(&notes, &frame)
			it.Frame = frame
			l.items = append(l.items, it)

			fit, err := l.handleFootnotes(&notes, true, inLast)
			if err != nil {
				return err
			}
			if !fit {
				l.items = l.items[:len(l.items)-1]
				if err := l.finishRegion(false); err != nil {
					return err
				}
				l.items = append(l.items, it)
				l.regions.Size.Height -= height
				if _, err := l.handleFootnotes(&notes, true, true); err != nil {
					return err
				}
			}
			return nil
		}

		l.items = append(l.items, item)
		return nil

	case PlacedItem:
		if !it.Float {
			l.items = append(l.items, item)
			return nil
		}
		height := it.Frame.Height()
		if len(l.pendingFloats) > 0 || (!l.regions.Size.Height.Fits(height+it.Clearance) && !l.regions.InLast()) {
			l.pendingFloats = append(l.pendingFloats, it)
			return nil
		}
		if it.YAlign == nil {
			ratio := float64((l.regions.Size.Height-(height+it.Clearance)/2) / l.regions.Full)
			var a layout.FixedAlignment
			if ratio <= 0.5 {
				a = layout.AlignEnd
			} else {
				a = layout.AlignStart
			}
			it.YAlign = &a
		}
		frame := it.Frame
		frame.SetSize(layout.Size{Width: frame.Width(), Height: frame.Height() + it.Clearance})
		if *it.YAlign == layout.AlignEnd {
			frame.Translate(layout.Point{Y: it.Clearance})
		}
		it.Frame = frame
		l.regions.Size.Height -= frame.Height()
		l.items = append(l.items, it)
		if l.root {
			var notes []layout.Tag
			f := it.Frame
			collectFootnotes(&notes, &f)
			_, err := l.handleFootnotes(&notes, false, l.regions.InLast())
			return err
		}
		return nil

	case FootnoteItem:
		l.items = append(l.items, item)
		return nil

	default:
		l.items = append(l.items, item)
		return nil
	}
}

// hasPrecedingFrame reports whether any in-flow Frame item has been pushed
// yet in the current region, used to decide whether a weak spacer collapses.
func (l *Layouter) hasPrecedingFrame() bool {
	for _, it := range l.items {
		if _, ok := it.(FrameItemEntry); ok {
			return true
		}
	}
	return false
}

// finishRegionWithMigration moves a trailing run of sticky/absolute items
// into the next region before committing, so a sticky block is never
// stranded alone at the bottom of a region. Returns whether the region the
// carried items were moved into is the last one (see Regions.InLast).
func (l *Layouter) finishRegionWithMigration() (bool, error) {
	sticky := len(l.items)
	for sticky > 0 {
		switch it := l.items[sticky-1].(type) {
		case AbsoluteItem:
			sticky--
			continue
		case FrameItemEntry:
			if it.Sticky {
				sticky--
				continue
			}
		}
		break
	}

	carry := make([]Item, len(l.items)-sticky)
	copy(carry, l.items[sticky:])
	l.items = l.items[:sticky]

	if err := l.finishRegion(false); err != nil {
		return false, err
	}
	inLast := l.regions.InLast()

	for _, it := range carry {
		if err := l.handleItem(it); err != nil {
			return false, err
		}
	}
	return inLast, nil
}

// finishRegion commits the current region's queued items into a frame and
// advances to the next region. If force is false and every queued item is
// out-of-flow, it takes the fast path of emitting an empty frame without
// walking the placement passes at all.
func (l *Layouter) finishRegion(force bool) error {
	if !force && len(l.items) > 0 && l.allOutOfFlow() {
		l.finished = append(l.finished, layout.NewSoftFrame(l.initial))
		l.regions.Next()
		l.initial = l.regions.Size
		return nil
	}

	for len(l.items) > 0 {
		if a, ok := l.items[len(l.items)-1].(AbsoluteItem); ok && a.Weak {
			l.items = l.items[:len(l.items)-1]
			continue
		}
		break
	}

	var fr layout.Fr
	var used layout.Size
	var footnoteHeight, floatTopHeight, floatBottomHeight layout.Abs
	firstFootnote := true

	for _, item := range l.items {
		switch it := item.(type) {
		case AbsoluteItem:
			used.Height += it.Amount
		case FractionalItem:
			fr += it.Amount
		case FrameItemEntry:
			used.Height += it.Frame.Height()
			used.Width = used.Width.Max(it.Frame.Width())
		case PlacedItem:
			if it.Float {
				if it.YAlign != nil && *it.YAlign == layout.AlignStart {
					floatTopHeight += it.Frame.Height()
				} else {
					floatBottomHeight += it.Frame.Height()
				}
			}
		case FootnoteItem:
			if !firstFootnote {
				footnoteHeight += l.footnote.Gap
			}
			firstFootnote = false
			footnoteHeight += it.Frame.Height()
			used.Width = used.Width.Max(it.Frame.Width())
		}
	}
	used.Height += footnoteHeight + floatTopHeight + floatBottomHeight

	size := l.initial
	if l.expand.X {
		size.Width = l.initial.Width
	} else {
		size.Width = used.Width.Min(l.initial.Width)
	}
	if l.expand.Y {
		size.Height = l.initial.Height
	} else {
		size.Height = used.Height.Min(l.initial.Height)
	}
	if (fr > 0 || l.hasFootnotes) && l.initial.Height.IsFinite() {
		size.Height = l.initial.Height
	}

	output := layout.NewHardFrame(size)

	floatTopOffset := layout.Abs(0)
	offset := floatTopHeight
	floatBottomOffset := layout.Abs(0)
	footnoteOffset := layout.Abs(0)
	ruler := layout.AlignStart

	for _, item := range l.items {
		switch it := item.(type) {
		case AbsoluteItem:
			offset += it.Amount

		case FractionalItem:
			remaining := l.initial.Height - used.Height
			offset += it.Amount.Share(fr, remaining)

		case FrameItemEntry:
			ruler = ruler.Max(it.Align.Y)
			x := it.Align.X.Position(size.Width - it.Frame.Width())
			y := offset + ruler.Position(size.Height-used.Height)
			output.PushFrame(layout.Point{X: x, Y: y}, it.Frame)
			offset += it.Frame.Height()

		case PlacedItem:
			x := it.XAlign.Position(size.Width - it.Frame.Width())
			var y layout.Abs
			if it.Float {
				if it.YAlign != nil && *it.YAlign == layout.AlignStart {
					y = floatTopOffset
					floatTopOffset += it.Frame.Height()
				} else {
					y = size.Height - footnoteHeight - floatBottomHeight + floatBottomOffset
					floatBottomOffset += it.Frame.Height()
				}
			} else if it.YAlign != nil {
				y = it.YAlign.Position(size.Height - it.Frame.Height())
			} else {
				y = offset + ruler.Position(size.Height-used.Height)
			}
			pos := layout.Point{X: x, Y: y}
			delta := layout.Point{
				X: it.Delta.X.RelativeTo(size.Width),
				Y: it.Delta.Y.RelativeTo(size.Height),
			}
			output.PushFrame(pos.Add(delta), it.Frame)

		case FootnoteItem:
			y := size.Height - footnoteHeight + footnoteOffset
			output.PushFrame(layout.Point{X: 0, Y: y}, it.Frame)
			footnoteOffset += it.Frame.Height() + l.footnote.Gap
		}
	}

	if force && len(l.pendingTags) > 0 {
		items := make([]layout.PositionedItem, len(l.pendingTags))
		for i, tag := range l.pendingTags {
			items[i] = layout.PositionedItem{Pos: layout.Point{Y: offset}, Item: layout.TagItem{Tag: tag}}
		}
		output.PushMultiple(items)
		l.pendingTags = nil
	}

	l.items = nil
	l.finished = append(l.finished, output)
	l.regions.Next()
	l.initial = l.regions.Size
	l.hasFootnotes = false

	if len(l.pendingFloats) > 0 {
		pending := l.pendingFloats
		l.pendingFloats = nil
		for _, it := range pending {
			if err := l.handleItem(it); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Layouter) allOutOfFlow() bool {
	for _, it := range l.items {
		if !IsOutOfFlow(it) {
			return false
		}
	}
	return true
}

// finish drains the remaining region backlog, forces a final region, and
// flushes any stranded items, returning every committed frame.
func (l *Layouter) finish() (layout.Fragment, error) {
	if l.expand.Y {
		for len(l.regions.Backlog) > 0 {
			if err := l.finishRegion(true); err != nil {
				return layout.Fragment{}, err
			}
		}
	}
	if err := l.finishRegion(true); err != nil {
		return layout.Fragment{}, err
	}
	for len(l.items) > 0 {
		if err := l.finishRegion(true); err != nil {
			return layout.Fragment{}, err
		}
	}
	return layout.NewFragment(l.finished), nil
}
