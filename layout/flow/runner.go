package flow

import "github.com/kanryu/flowdoc/layout"

// Runner packages a Flow plus its external collaborators into something
// that satisfies the single-call `Layout(engine, locator, styles, regions)`
// shape the page pipeline and the column splitter expect, hiding the
// two-step New-then-Layout construction a Layouter otherwise needs.
type Runner struct {
	Flow     *Flow
	Inline   InlineLayouter
	Footnote FootnoteConfig
}

// Layout constructs a fresh Layouter against regions and runs it to
// completion. A Runner is stateless and may be reused/invoked concurrently
// across independent regions (each call gets its own Layouter).
func (r Runner) Layout(
	engine *layout.Engine,
	locator layout.Location,
	styles *layout.StyleChain,
	regions layout.Regions,
) (layout.Fragment, error) {
	split := layout.NewLocator(locator).Split()
	l := New(engine, r.Flow, split, styles, regions, r.Inline, r.Footnote)
	return l.Layout()
}
