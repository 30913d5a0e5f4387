package flow

import (
	"github.com/kanryu/flowdoc/layout"
)

// collectFootnotes walks frame (recursing into groups) and appends any
// footnote reference tags found, deduplicated by location.
func collectFootnotes(notes *[]layout.Tag, frame *layout.Frame) {
	for _, pi := range frame.Items() {
		switch item := pi.Item.(type) {
		case layout.GroupItem:
			sub := item.Frame
			collectFootnotes(notes, &sub)
		case layout.TagItem:
			if _, ok := item.Tag.Payload.(FootnoteRef); !ok {
				continue
			}
			dup := false
			for _, n := range *notes {
				if n.Location == item.Tag.Location {
					dup = true
					break
				}
			}
			if !dup {
				*notes = append(*notes, item.Tag)
			}
		}
	}
}

// tryHandleFootnotes runs the root flow's footnote discharge after a block,
// retrying with force if the first attempt didn't fit and had to roll back.
func (l *Layouter) tryHandleFootnotes(notes []layout.Tag) error {
	if !l.root || len(notes) == 0 {
		return nil
	}
	fit, err := l.handleFootnotes(&notes, false, l.regions.InLast())
	if err != nil {
		return err
	}
	if fit {
		return nil
	}
	if err := l.finishRegion(false); err != nil {
		return err
	}
	_, err = l.handleFootnotes(&notes, false, true)
	return err
}

// layoutFootnoteSeparator lays out the footnote separator into the current
// region, charges its height (plus clearance) against the remaining space,
// and appends it to the pending item list. Unconditional: callers are
// responsible for only invoking it when a region actually needs a fresh
// separator (a region's first footnote, or a continuation region after
// finishRegion reset hasFootnotes).
func (l *Layouter) layoutFootnoteSeparator() error {
	sepRegion := layout.NewRegion(layout.Size{Width: l.regions.Size.Width, Height: l.regions.Size.Height}, layout.Axes[bool]{X: l.regions.Expand.X, Y: false})
	// The separator is laid out against the fixed root location rather than a
	// freshly scoped one, a known sharp edge kept deliberately (see DESIGN.md).
	sep, err := l.footnote.Separator.LayoutSeparator(l.engine, layout.Location(0), l.styles, sepRegion)
	if err != nil {
		return err
	}
	sep.SetSize(layout.Size{Width: sep.Width(), Height: sep.Height() + l.footnote.Clearance})
	sep.Translate(layout.Point{Y: l.footnote.Clearance})
	l.hasFootnotes = true
	l.regions.Size.Height -= sep.Height()
	l.items = append(l.items, FootnoteItem{Frame: sep})
	return nil
}

// handleFootnotes lays out the separator (once per region) and each note's
// entry, appending FootnoteItem(s) to the pending item list. If the very
// first entry (or any entry, when movable) produces an empty first frame and
// force is false, the whole attempt is rolled back to its pre-call snapshot
// and false is returned so the caller can retry in a fresh region.
func (l *Layouter) handleFootnotes(notes *[]layout.Tag, movable bool, force bool) (bool, error) {
	prevNotesLen := len(*notes)
	prevItemsLen := len(l.items)
	prevSize := l.regions.Size
	prevHasFootnotes := l.hasFootnotes

	k := 0
	for k < len(*notes) {
		note := (*notes)[k]
		ref, ok := note.Payload.(FootnoteRef)
		if !ok {
			k++
			continue
		}

		if !l.hasFootnotes {
			if err := l.layoutFootnoteSeparator(); err != nil {
				return false, err
			}
		}
		l.regions.Size.Height -= l.footnote.Gap

		entryRegions := l.regions.WithRoot(false)
		frag, err := l.footnote.Resolver.LayoutEntry(l.engine, ref.Location, l.styles, entryRegions)
		if err != nil {
			return false, err
		}
		frames := frag.Frames()

		if !force && (k == 0 || movable) && (len(frames) == 0 || frames[0].IsEmpty()) {
			*notes = (*notes)[:prevNotesLen]
			l.items = l.items[:prevItemsLen]
			l.regions.Size = prevSize
			l.hasFootnotes = prevHasFootnotes
			return false, nil
		}

		var nested []layout.Tag
		for i, frame := range frames {
			if i > 0 {
				if err := l.finishRegion(false); err != nil {
					return false, err
				}
				// A continuation region starts fresh: finishRegion cleared
				// hasFootnotes, so the separator must be re-emitted before the
				// entry's next frame, and the gap re-charged beneath it.
				if err := l.layoutFootnoteSeparator(); err != nil {
					return false, err
				}
				l.regions.Size.Height -= l.footnote.Gap
			}
			f := frame
			collectFootnotes(&nested, &f)
			l.regions.Size.Height -= f.Height()
			l.items = append(l.items, FootnoteItem{Frame: f})
		}

		if len(nested) > 0 {
			rest := append([]layout.Tag{}, (*notes)[k+1:]...)
			head := append([]layout.Tag{}, (*notes)[:k+1]...)
			head = append(head, nested...)
			head = append(head, rest...)
			*notes = head
		}
		k++
	}
	return true, nil
}
