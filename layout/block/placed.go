package block

import "github.com/kanryu/flowdoc/layout"

// Single adapts a FrameLayouter (Stack, Pad, or any other block in this
// package) to flow.PlacedLayouter by running it against a one-region,
// non-expanding Regions built from the given base size and taking its first
// frame — placed content is laid out once, never paginated.
type Single struct {
	Body FrameLayouter
}

// Layout implements flow.PlacedLayouter.
func (s *Single) Layout(
	engine *layout.Engine,
	locator layout.Location,
	styles *layout.StyleChain,
	base layout.Size,
) (layout.Frame, error) {
	regions := layout.One(base, layout.Axes[bool]{})
	frag, err := s.Body.Layout(engine, locator, styles, regions)
	if err != nil {
		return layout.Frame{}, err
	}
	if frag.Len() == 0 {
		return layout.NewSoftFrame(layout.Size{}), nil
	}
	return frag.Frames()[0], nil
}
