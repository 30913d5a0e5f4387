package layout

// FrameKind distinguishes frames that keep their declared size even when
// empty (Hard, used for parity blanks and column outputs) from frames that
// may be trimmed to their content (Soft).
type FrameKind int

const (
	Soft FrameKind = iota
	Hard
)

// Tag is an opaque piece of introspection metadata (a counter update, a
// location marker, ...) carried through a frame without affecting its
// geometry. The layout core mostly just moves tags around; the payloads it
// looks inside are flow.FootnoteRef (footnote collection) and CounterUpdate
// (ManualPageCounter.Visit).
type Tag struct {
	Location Location
	Payload  TagPayload
}

// TagPayload is the value a Tag carries. It is an open interface so that
// payload types declared in other packages (such as flow.FootnoteRef) can be
// carried as well. CounterUpdate is the only payload this package itself
// interprets.
type TagPayload interface{}

// Location is an opaque, comparable identity assigned by a Locator.
type Location uint64

// FrameItem is one positioned child of a Frame.
type FrameItem interface{ isFrameItem() }

// GroupItem embeds a sub-frame (with its own local transform origin).
type GroupItem struct {
	Frame Frame
}

func (GroupItem) isFrameItem() {}

// TagItem carries introspection metadata at a position, contributing zero
// visible geometry.
type TagItem struct {
	Tag Tag
}

func (TagItem) isFrameItem() {}

// LinkItem is a zero-size link annotation anchor.
type LinkItem struct {
	Dest string
	Size Size
}

func (LinkItem) isFrameItem() {}

// BoxItem is a filled placeholder rectangle. The block adapter does not emit
// it: stacks and pads place their children as GroupItems.
type BoxItem struct {
	Size Size
}

func (BoxItem) isFrameItem() {}

// TextItem is a glyph-less placeholder for a laid-out run of text, sized by
// the inline adapter's monospace metric.
type TextItem struct {
	Text string
	Size Size
}

func (TextItem) isFrameItem() {}

// PositionedItem is one (position, item) entry of a Frame.
type PositionedItem struct {
	Pos  Point
	Item FrameItem
}

// Frame is a rigid, laid-out rectangle: a size, an ordered list of positioned
// children, and a kind (hard retains its size even when empty).
type Frame struct {
	size  Size
	items []PositionedItem
	kind  FrameKind
}

// NewSoftFrame creates an empty soft frame of the given size.
func NewSoftFrame(size Size) Frame { return Frame{size: size, kind: Soft} }

// NewHardFrame creates an empty hard frame of the given size.
func NewHardFrame(size Size) Frame { return Frame{size: size, kind: Hard} }

func (f *Frame) Size() Size      { return f.size }
func (f *Frame) Width() Abs      { return f.size.Width }
func (f *Frame) Height() Abs     { return f.size.Height }
func (f *Frame) Kind() FrameKind { return f.kind }

func (f *Frame) SetSize(size Size) { f.size = size }

// IsEmpty reports whether the frame has no positioned children.
func (f *Frame) IsEmpty() bool { return len(f.items) == 0 }

func (f *Frame) Items() []PositionedItem { return f.items }

// Push appends a single item at a position.
func (f *Frame) Push(pos Point, item FrameItem) {
	f.items = append(f.items, PositionedItem{Pos: pos, Item: item})
}

// PushFrame appends a sub-frame's contents as a single group at pos.
func (f *Frame) PushFrame(pos Point, sub Frame) {
	f.items = append(f.items, PositionedItem{Pos: pos, Item: GroupItem{Frame: sub}})
}

// PushMultiple appends several items at once, preserving their relative order.
func (f *Frame) PushMultiple(items []PositionedItem) {
	f.items = append(f.items, items...)
}

// PrependMultiple prepends several items, preserving their relative order.
func (f *Frame) PrependMultiple(items []PositionedItem) {
	f.items = append(append([]PositionedItem{}, items...), f.items...)
}

// Translate shifts every child position by delta.
func (f *Frame) Translate(delta Point) {
	for i := range f.items {
		f.items[i].Pos = f.items[i].Pos.Add(delta)
	}
}

// Clone returns a copy that is safe to mutate independently (positions and
// the item slice are copied; FrameItem payloads are treated as immutable
// value types once constructed).
func (f *Frame) Clone() Frame {
	items := make([]PositionedItem, len(f.items))
	copy(items, f.items)
	return Frame{size: f.size, items: items, kind: f.kind}
}

// Fragment is the result of laying content into one or more regions: one
// frame per consumed region, in region order.
type Fragment struct {
	frames []Frame
}

func NewFragment(frames []Frame) Fragment { return Fragment{frames: frames} }

func (f Fragment) Frames() []Frame { return f.frames }
func (f Fragment) Len() int        { return len(f.frames) }

// IntoFrame unwraps a single-frame fragment; panics if the fragment does not
// contain exactly one frame, mirroring the invariant that callers only use
// this on fragments they know are single-region.
func (f Fragment) IntoFrame() Frame {
	if len(f.frames) != 1 {
		panic("layout: IntoFrame called on a fragment that is not exactly one frame")
	}
	return f.frames[0]
}
