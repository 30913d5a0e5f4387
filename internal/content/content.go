// Package content is the small in-memory content-tree vocabulary the
// internal/realize adapter accepts in place of a real parser/evaluator: a
// document is a slice of pages, each page a slice of flow-level nodes.
package content

import "github.com/kanryu/flowdoc/layout"

// Document is the root of a content tree: an ordered sequence of pages plus
// document-level metadata.
type Document struct {
	Pages []Page
	Title string
}

// Page is one page run's worth of content plus the page-level styles
// (margins, size, columns, ...) it should be realized under.
type Page struct {
	Styles    *layout.StyleChain
	Body      []Node
	ClearTo   *Parity
}

// Parity mirrors pages.Parity without importing layout/pages, so the content
// vocabulary has no dependency on the realization target.
type Parity int

const (
	ParityEven Parity = iota
	ParityOdd
)

// Node is one flow-level element of a page's body, in source order.
type Node interface{ isNode() }

// Par is a paragraph: plain text plus the metrics/costs that drive its
// inline layout and orphan/widow prevention.
type Par struct {
	Text       string
	FontSize   layout.Abs
	LineGap    layout.Abs
	Align      layout.Alignment
	Leading    layout.Abs
	CostOrphan layout.Ratio
	CostWidow  layout.Ratio
}

func (Par) isNode() {}

// Block wraps an already-constructed block-level layouter (a block.Stack,
// block.Pad, or any other flow.BlockLayouter) as a flow child.
type Block struct {
	Layouter BlockLayouter
	Align    layout.Alignment
	Sticky   bool
	Rootable bool
}

func (Block) isNode() {}

// BlockLayouter is the shape internal/realize expects a block body to
// satisfy; structurally identical to flow.BlockLayouter.
type BlockLayouter interface {
	Layout(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		regions layout.Regions,
	) (layout.Fragment, error)
}

// Spacing is vertical space between siblings: either a relative length
// (optionally weak/collapsible) or a fractional share of leftover space.
type Spacing struct {
	Rel  *layout.Relative
	Fr   *layout.Fr
	Weak bool
}

func (Spacing) isNode() {}

// Colbreak requests a region break if further regions remain.
type Colbreak struct{}

func (Colbreak) isNode() {}

// Place positions a layouter absolutely (optionally floating) within the
// current region.
type Place struct {
	Layouter  PlacedLayouter
	XAlign    layout.FixedAlignment
	YAlign    *layout.FixedAlignment
	Delta     layout.Axes[layout.Relative]
	Float     bool
	Clearance layout.Abs
}

func (Place) isNode() {}

// PlacedLayouter is the shape internal/realize expects placed content to
// satisfy; structurally identical to flow.PlacedLayouter.
type PlacedLayouter interface {
	Layout(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		base layout.Size,
	) (layout.Frame, error)
}

// Flush drains queued floats before continuing with later content.
type Flush struct{}

func (Flush) isNode() {}
