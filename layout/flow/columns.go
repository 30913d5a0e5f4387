package flow

import (
	"github.com/kanryu/flowdoc/layout"
)

// FragmentLayouter is the collaborator a multi-column flow delegates the
// actual per-column-pod layout to (normally a Layouter wrapping the same
// Flow, invoked against the narrower pod regions).
type FragmentLayouter interface {
	Layout(engine *layout.Engine, locator layout.Location, styles *layout.StyleChain, regions layout.Regions) (layout.Fragment, error)
}

// LayoutColumns splits regions into `count` equal-width columns separated by
// gutter, lays the content out into that narrower "pod" via inner, and
// restitches the resulting frames count-at-a-time into one frame per output
// region. Infinite-width regions bypass column splitting entirely (there is
// no way to divide infinite width into equal shares).
func LayoutColumns(
	engine *layout.Engine,
	inner FragmentLayouter,
	locator layout.Location,
	styles *layout.StyleChain,
	regions layout.Regions,
	count int,
	gutter layout.Abs,
	dir layout.Dir,
) (layout.Fragment, error) {
	if regions.Size.Width.IsInfinite() || count < 2 {
		return inner.Layout(engine, locator, styles, regions)
	}

	width := (regions.Size.Width - gutter*layout.Abs(count-1)) / layout.Abs(count)

	backlog := buildColumnBacklog(regions, count)

	pod := layout.Regions{
		Size:    layout.Size{Width: width, Height: regions.Size.Height},
		Full:    regions.Full,
		Backlog: backlog,
		Last:    regions.Last,
		Expand:  layout.Axes[bool]{X: true, Y: regions.Expand.Y},
		Root:    regions.Root,
	}

	frag, err := inner.Layout(engine, locator, styles, pod)
	if err != nil {
		return layout.Fragment{}, err
	}
	frames := frag.Frames()

	totalRegions := (len(frames) + count - 1) / count
	if totalRegions == 0 {
		totalRegions = 1
	}

	it := regions.Iter()
	var out []layout.Frame
	pos := 0
	for r := 0; r < totalRegions; r++ {
		regionHeight, _ := it.Next()

		height := layout.Abs(0)
		if regions.Expand.Y {
			height = regionHeight
		}
		output := layout.NewHardFrame(layout.Size{Width: regions.Size.Width, Height: height})

		cursor := layout.Abs(0)
		for c := 0; c < count; c++ {
			if pos >= len(frames) {
				break
			}
			frame := frames[pos]
			pos++
			if !regions.Expand.Y {
				sz := output.Size()
				if frame.Height() > sz.Height {
					output.SetSize(layout.Size{Width: sz.Width, Height: frame.Height()})
				}
			}
			var x layout.Abs
			if dir.IsPositive() {
				x = cursor
			} else {
				x = regions.Size.Width - cursor - width
			}
			output.PushFrame(layout.Point{X: x, Y: 0}, frame)
			cursor += width + gutter
		}
		out = append(out, output)
	}

	return layout.NewFragment(out), nil
}

// buildColumnBacklog expands the incoming region-height stream so that each
// logical region contributes `count` pod heights in a row: the current
// region's height repeated count times, then each backlog height repeated
// count times. The leading skip(1) is what aligns the first pod column with
// the already-current region size rather than inserting a spurious repeat of
// it before the loop even starts.
func buildColumnBacklog(regions layout.Regions, count int) []layout.Abs {
	seq := append([]layout.Abs{regions.Size.Height}, regions.Backlog...)
	var expanded []layout.Abs
	for _, h := range seq {
		for i := 0; i < count; i++ {
			expanded = append(expanded, h)
		}
	}
	if len(expanded) > 0 {
		expanded = expanded[1:]
	}
	return expanded
}
