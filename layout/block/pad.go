package block

import "github.com/kanryu/flowdoc/layout"

// Pad wraps a body block, shrinking the region it is laid out into by Inset
// and growing the resulting frames back out by the same amount, so the body
// never needs to know padding is applied around it.
type Pad struct {
	Inset layout.Sides[layout.Relative]
	Body  FrameLayouter
}

// Layout implements flow.BlockLayouter.
func (p *Pad) Layout(
	engine *layout.Engine,
	locator layout.Location,
	styles *layout.StyleChain,
	regions layout.Regions,
) (layout.Fragment, error) {
	shrunk := shrinkRegions(regions, p.Inset)

	frag, err := p.Body.Layout(engine, locator, styles, shrunk)
	if err != nil {
		return layout.Fragment{}, err
	}

	frames := frag.Frames()
	grown := make([]layout.Frame, len(frames))
	for i, frame := range frames {
		grown[i] = grow(frame, p.Inset)
	}
	return layout.NewFragment(grown), nil
}

func resolvedSum(inset layout.Sides[layout.Relative]) layout.Axes[layout.Relative] {
	return layout.Axes[layout.Relative]{
		X: layout.Relative{Abs: inset.Left.Abs + inset.Right.Abs, Ratio: inset.Left.Ratio + inset.Right.Ratio},
		Y: layout.Relative{Abs: inset.Top.Abs + inset.Bottom.Abs, Ratio: inset.Top.Ratio + inset.Bottom.Ratio},
	}
}

func shrink(size layout.Size, inset layout.Sides[layout.Relative]) layout.Size {
	sum := resolvedSum(inset)
	return layout.Size{
		Width:  size.Width - sum.X.RelativeTo(size.Width),
		Height: size.Height - sum.Y.RelativeTo(size.Height),
	}
}

func shrinkRegions(regions layout.Regions, inset layout.Sides[layout.Relative]) layout.Regions {
	sum := resolvedSum(inset)
	result := regions.Clone()
	result.Size = shrink(regions.Size, inset)
	result.Full = regions.Full - sum.Y.RelativeTo(regions.Full)
	for i, h := range result.Backlog {
		result.Backlog[i] = h - sum.Y.RelativeTo(h)
	}
	if result.Last != nil {
		v := *result.Last - sum.Y.RelativeTo(*result.Last)
		result.Last = &v
	}
	return result
}

// grow is the inverse of shrink: given a frame sized to fit inside the
// padding, it computes the padded size w such that shrinking w by inset
// yields exactly the frame's current size, then translates the frame's
// contents inward by the resolved left/top inset.
//
// Per axis, solving w - inset.resolve(w) = s for w gives:
//
//	w = (s + inset.abs) / (1 - inset.ratio)
func grow(frame layout.Frame, inset layout.Sides[layout.Relative]) layout.Frame {
	sum := resolvedSum(inset)
	size := frame.Size()
	padded := layout.Size{
		Width:  growDimension(size.Width, sum.X),
		Height: growDimension(size.Height, sum.Y),
	}

	left := inset.Left.RelativeTo(padded.Width)
	top := inset.Top.RelativeTo(padded.Height)

	out := layout.NewSoftFrame(padded)
	out.PushFrame(layout.Point{X: left, Y: top}, frame)
	return out
}

func growDimension(s layout.Abs, p layout.Relative) layout.Abs {
	divisor := 1.0 - float64(p.Ratio)
	if divisor == 0 {
		return s + p.Abs
	}
	return layout.Abs((float64(s) + float64(p.Abs)) / divisor)
}
