package layout

// Region is a single rectangular layout budget: a size plus, per axis,
// whether the committed frame must expand to fill that dimension even if its
// content is smaller.
type Region struct {
	Size   Size
	Expand Axes[bool]
}

func NewRegion(size Size, expand Axes[bool]) Region {
	return Region{Size: size, Expand: expand}
}

func (r Region) Width() Abs  { return r.Size.Width }
func (r Region) Height() Abs { return r.Size.Height }

// Shrink returns the region with margins subtracted from its size.
func (r Region) Shrink(inset Sides[Abs]) Region {
	sum := SumSides(inset)
	return Region{
		Size:   Size{Width: r.Size.Width - sum.Width, Height: r.Size.Height - sum.Height},
		Expand: r.Expand,
	}
}

// Regions is an ordered stream of regions: the current size, an ordered
// backlog of explicit next sizes, and an optional repeating "last" size. Full
// records the original vertical budget for fractional-share math. Root marks
// the outermost flow, which alone may host footnotes.
type Regions struct {
	Size    Size
	Full    Abs
	Backlog []Abs
	Last    *Abs
	Expand  Axes[bool]
	Root    bool
}

// Repeat builds a Regions stream that repeats `size` forever (the common case
// for a page run: every region after the first has the same size).
func Repeat(size Size, expand Axes[bool]) Regions {
	last := size.Height
	return Regions{Size: size, Full: size.Height, Last: &last, Expand: expand}
}

// One builds a Regions stream holding exactly one region (no backlog, no
// repeating last), used for single-shot child layout (placed elements).
func One(size Size, expand Axes[bool]) Regions {
	return Regions{Size: size, Full: size.Height, Expand: expand}
}

func (r *Regions) Width() Abs  { return r.Size.Width }
func (r *Regions) Height() Abs { return r.Size.Height }

// Base is the region size ignoring anything already consumed on the current
// region — i.e. the full width together with the repeating/backlog height,
// used to resolve sizes that should not shrink as content is placed.
func (r *Regions) Base() Size {
	height := r.Size.Height
	if len(r.Backlog) > 0 {
		height = r.Backlog[0]
	} else if r.Last != nil {
		height = *r.Last
	}
	return Size{Width: r.Size.Width, Height: height}
}

// CanBreak reports whether at least one more region is available after the
// current one.
func (r *Regions) CanBreak() bool {
	return len(r.Backlog) > 0 || r.Last != nil
}

// InLast reports whether the current region is the last distinct one: the
// backlog is empty and either there is no repeating last size or the current
// height equals it. Advancing further cannot yield a larger region, so retry
// loops that advance regions stop here instead of spinning forever on content
// that fits no region.
func (r *Regions) InLast() bool {
	return len(r.Backlog) == 0 && (r.Last == nil || *r.Last == r.Size.Height)
}

// MayProgress reports whether calling Next would move to a genuinely
// available region (mirrors CanBreak; kept as a distinct name at call sites
// that ask "is it worth waiting instead of forcing now").
func (r *Regions) MayProgress() bool { return r.CanBreak() }

// IsFull reports whether the current region has (effectively) zero height
// left to give.
func (r *Regions) IsFull() bool {
	return r.Size.Height <= 0
}

// Next advances to the next region: pops the backlog if non-empty, else
// switches to the repeating Last size, else leaves Size as-is (terminal
// region, further content overflows it — the "overset" case).
func (r *Regions) Next() {
	if len(r.Backlog) > 0 {
		r.Size.Height = r.Backlog[0]
		r.Backlog = r.Backlog[1:]
		return
	}
	if r.Last != nil {
		r.Size.Height = *r.Last
	}
}

// Clone returns an independent copy (the backlog slice is copied so the
// clone's Next() does not affect the original).
func (r Regions) Clone() Regions {
	backlog := make([]Abs, len(r.Backlog))
	copy(backlog, r.Backlog)
	var last *Abs
	if r.Last != nil {
		v := *r.Last
		last = &v
	}
	return Regions{
		Size: r.Size, Full: r.Full, Backlog: backlog, Last: last,
		Expand: r.Expand, Root: r.Root,
	}
}

// WithSize returns a copy with Size replaced (width changed, e.g. for column
// pods), keeping the rest of the stream.
func (r Regions) WithSize(size Size) Regions {
	c := r.Clone()
	c.Size = size
	return c
}

// WithExpand returns a copy with Expand replaced.
func (r Regions) WithExpand(expand Axes[bool]) Regions {
	c := r.Clone()
	c.Expand = expand
	return c
}

// WithRoot returns a copy with Root set explicitly, used when handing a
// non-root sub-regions copy to nested layout (e.g. footnote entries).
func (r Regions) WithRoot(root bool) Regions {
	c := r.Clone()
	c.Root = root
	return c
}

// Iter yields the current region height, then the backlog, then repeats Last
// forever. Callers that only need a bounded peek (e.g. "does the next region
// fit this line") should take a small prefix.
func (r *Regions) Iter() RegionsIter {
	return RegionsIter{sizes: append([]Abs{r.Size.Height}, r.Backlog...), last: r.Last}
}

// RegionsIter is a forward-only, effectively-infinite iterator over region
// heights (it never terminates once `last` is reached, matching the
// conceptual "pages go on forever after the specified backlog" semantics).
type RegionsIter struct {
	sizes []Abs
	last  *Abs
	pos   int
}

func (it *RegionsIter) Next() (Abs, bool) {
	if it.pos < len(it.sizes) {
		v := it.sizes[it.pos]
		it.pos++
		return v, true
	}
	if it.last != nil {
		return *it.last, true
	}
	return 0, false
}

// NthHeight peeks the nth (0-based) region height without consuming the
// iterator permanently; used by the paragraph orphan/widow check ("does the
// *next* region fit this line").
func (r *Regions) NthHeight(n int) (Abs, bool) {
	it := r.Iter()
	var v Abs
	var ok bool
	for i := 0; i <= n; i++ {
		v, ok = it.Next()
		if !ok {
			return 0, false
		}
	}
	return v, true
}
