package pages

import (
	"github.com/kanryu/flowdoc/layout"
)

// Binding is the page binding side, used to decide which margin becomes
// "inside" vs "outside" on two-sided documents.
type Binding int

const (
	BindingLeft Binding = iota
	BindingRight
)

// Swap reports whether the left/right margins should be swapped for the
// page at the given 0-indexed physical number (the count of pages already
// emitted before this one).
func (b Binding) Swap(physical int) bool {
	if b == BindingLeft {
		return physical%2 == 1
	}
	return physical%2 == 0
}

// Parity is a desired page-count parity, used to decide whether a blank page
// must be inserted before a page run to align it to a particular side.
type Parity int

const (
	ParityEven Parity = iota
	ParityOdd
)

// Matches reports whether pageCount already has this parity.
func (p Parity) Matches(pageCount int) bool {
	isEven := pageCount%2 == 0
	if p == ParityEven {
		return isEven
	}
	return !isEven
}

// Numbering names a page-number formatting pattern (the classic Typst
// pattern language: "1", "i", "I", "a", "A"; any other pattern renders as
// Arabic numerals).
type Numbering struct {
	Pattern string
}

// PageConfig is everything about a page run that must be resolved before its
// flow content is laid out: it is read once per run from the run's style
// chain.
type PageConfig struct {
	Size          layout.Size
	Margin        layout.Sides[layout.Abs]
	TwoSided      bool
	Binding       Binding
	Fill          *Paint
	Numbering     *Numbering
	NumberAlign   layout.Alignment
	HeaderAscent  layout.Abs
	FooterDescent layout.Abs
	Columns       int
	ColumnGutter  layout.Abs
	Dir           layout.Dir
}

// Paint is a flat fill color; kept minimal since rendering is out of scope.
type Paint struct {
	R, G, B, A uint8
}

// Marginal lays out running content (header, footer, background, foreground)
// given the resolved page number and the area available to it.
type Marginal interface {
	Layout(engine *layout.Engine, locator layout.Location, styles *layout.StyleChain, area layout.Size, number int) (layout.Frame, error)
}

// FlowFragmentLayouter is the external `flow` collaborator: it lays a page
// run's content out into the run's content regions.
type FlowFragmentLayouter interface {
	Layout(engine *layout.Engine, locator layout.Location, styles *layout.StyleChain, regions layout.Regions) (layout.Fragment, error)
}

// LayoutedPage is a page whose content, margins and static marginals
// (background/foreground) are resolved, but whose header/footer and
// left/right margin assignment still depend on its eventual physical page
// number — known only once finalized in document order.
type LayoutedPage struct {
	Inner      layout.Frame
	Config     PageConfig
	Header     Marginal
	Footer     Marginal
	Background layout.Frame
	Foreground layout.Frame
	HasBackground, HasForeground bool
	Styles     *layout.StyleChain
	Locator    *layout.SplitLocator
}

// Page is a fully finalized page: a complete frame ready for rendering, plus
// the metadata a renderer needs (fill, numbering, logical number).
type Page struct {
	Frame     layout.Frame
	Fill      *Paint
	Numbering *Numbering
	Number    int
}

// DocumentInfo carries document-level metadata untouched by layout.
type DocumentInfo struct {
	Title    string
	Author   []string
	Keywords []string
}

// Document is the fully laid out, paginated result.
type Document struct {
	Pages []Page
	Info  DocumentInfo
}

// ManualPageCounter tracks the physical (0-indexed, counts every emitted
// page) and logical (1-indexed by default, but may be redirected by a
// CounterUpdate tag) page numbers across Finalize calls.
type ManualPageCounter struct {
	physical int
	logical  int
}

func NewManualPageCounter() *ManualPageCounter {
	return &ManualPageCounter{logical: 1}
}

func (c *ManualPageCounter) Physical() int { return c.physical }
func (c *ManualPageCounter) Logical() int  { return c.logical }

func (c *ManualPageCounter) Step() {
	c.physical++
	c.logical++
}

// Visit scans frame (recursing into groups) for page-counter update tags and
// applies them to the logical counter.
func (c *ManualPageCounter) Visit(frame *layout.Frame) {
	for _, pi := range frame.Items() {
		switch item := pi.Item.(type) {
		case layout.GroupItem:
			sub := item.Frame
			c.Visit(&sub)
		case layout.TagItem:
			update, ok := item.Tag.Payload.(layout.CounterUpdate)
			if !ok || update.Key != layout.CounterPage {
				continue
			}
			c.logical = update.Apply(c.logical)
		}
	}
}
