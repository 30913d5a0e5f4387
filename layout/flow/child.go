// Package flow implements the block-level packer: it distributes an ordered
// sequence of flow children (paragraphs, blocks, spacing, placed/floating
// content, breaks, footnotes, tags) across a paginated stream of regions.
//
// The realization layer (out of scope here) is responsible for turning a
// content tree into the []Child slice this package consumes; flow itself
// never inspects source syntax or resolves styles beyond reading the handful
// of keys enumerated in the package-level Config types.
package flow

import (
	"github.com/kanryu/flowdoc/layout"
)

// Child is one element of a realized flow, in source order.
type Child interface{ isFlowChild() }

// TagChild carries introspection metadata to attach to the next non-empty
// frame.
type TagChild struct {
	Tag layout.Tag
}

func (TagChild) isFlowChild() {}

// SpacingChild is vertical spacing between flow children: either an absolute
// length (optionally weak, i.e. collapsible) or a fractional share of
// leftover space.
type SpacingChild struct {
	Rel      *layout.Relative
	Fr       *layout.Fr
	Weak     bool
}

func (SpacingChild) isFlowChild() {}

// ColbreakChild requests a region break if further regions remain.
type ColbreakChild struct{}

func (ColbreakChild) isFlowChild() {}

// InlineContent is the opaque payload a realization layer hands to the
// inline-layout adapter; flow never looks inside it.
type InlineContent interface{}

// InlineLayouter is the external `layout_inline` collaborator: it turns a
// paragraph's inline content into an ordered list of line frames.
type InlineLayouter interface {
	LayoutInline(
		engine *layout.Engine,
		content InlineContent,
		locator layout.Location,
		styles *layout.StyleChain,
		consecutive bool,
		base layout.Size,
		expandX bool,
	) (layout.Fragment, error)
}

// ParChild is a paragraph: its inline content plus the costs that drive
// orphan/widow prevention.
type ParChild struct {
	Content     InlineContent
	Styles      *layout.StyleChain
	Align       layout.Alignment
	Leading     layout.Abs
	CostOrphan  layout.Ratio
	CostWidow   layout.Ratio
}

func (ParChild) isFlowChild() {}

// BlockLayouter is the external `Block.layout` collaborator: a block lays
// itself out into one or more regions (multi-frame fragment) and may contain
// footnote references discovered afterwards.
type BlockLayouter interface {
	Layout(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		regions layout.Regions,
	) (layout.Fragment, error)
}

// BlockChild is a block-level element laid out over possibly many regions.
type BlockChild struct {
	Layouter BlockLayouter
	Styles   *layout.StyleChain
	Align    layout.Alignment
	Sticky   bool
	Rootable bool
}

func (BlockChild) isFlowChild() {}

// PlacedLayouter is the external `Placed.layout` collaborator: placed content
// is laid out once into a single base size.
type PlacedLayouter interface {
	Layout(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		base layout.Size,
	) (layout.Frame, error)
}

// PlaceChild is an absolutely positioned (optionally floating) element.
type PlaceChild struct {
	Layouter  PlacedLayouter
	Styles    *layout.StyleChain
	XAlign    layout.FixedAlignment
	YAlign    *layout.FixedAlignment // nil means auto
	Delta     layout.Axes[layout.Relative]
	Float     bool
	Clearance layout.Abs
}

func (PlaceChild) isFlowChild() {}

// FlushChild drains queued floats before continuing with later content.
type FlushChild struct{}

func (FlushChild) isFlowChild() {}

// FootnoteRef is a Tag payload marking a reference to a footnote at Location;
// ParChild/BlockChild frames carry these so the layouter can discover
// transitively-referenced footnotes inside laid-out sub-frames.
type FootnoteRef struct {
	Location layout.Location
}

func (FootnoteRef) isTagPayload() {}

// FootnoteResolver is the external collaborator that lays out a footnote
// entry's body given its location, and reports any further footnotes
// referenced from inside that body (via the usual FootnoteRef tag scan).
type FootnoteResolver interface {
	LayoutEntry(
		engine *layout.Engine,
		loc layout.Location,
		styles *layout.StyleChain,
		regions layout.Regions,
	) (layout.Fragment, error)
}

// SeparatorLayouter lays out the footnote separator (typically a short rule)
// into a single region.
type SeparatorLayouter interface {
	LayoutSeparator(
		engine *layout.Engine,
		locator layout.Location,
		styles *layout.StyleChain,
		region layout.Region,
	) (layout.Frame, error)
}

// FootnoteConfig bundles the footnote-area collaborators and style-derived
// constants (separator content, clearance above it, gap between entries).
type FootnoteConfig struct {
	Resolver  FootnoteResolver
	Separator SeparatorLayouter
	Clearance layout.Abs
	Gap       layout.Abs
}

// Flow is the realized input to the layouter: an ordered child list plus the
// styles they were realized under (used as the style chain root for spacing
// resolution and the footnote config).
type Flow struct {
	Children []Child
	Styles   *layout.StyleChain
}
