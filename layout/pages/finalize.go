package pages

import (
	"github.com/kanryu/flowdoc/layout"
)

// Finalize assembles a LayoutedPage into a complete Page now that its
// physical page number is known: it resolves the inside/outside margin swap,
// lays out the (possibly page-number-dependent) header and footer, and
// stitches background, header, inner content, footer and foreground into one
// frame in that fixed paint order.
func Finalize(engine *layout.Engine, counter *ManualPageCounter, lp LayoutedPage) (Page, error) {
	cfg := lp.Config
	margin := cfg.Margin
	if cfg.TwoSided && cfg.Binding.Swap(counter.Physical()) {
		margin.Left, margin.Right = margin.Right, margin.Left
	}

	full := layout.Size{
		Width:  lp.Inner.Width() + margin.Left + margin.Right,
		Height: lp.Inner.Height() + margin.Top + margin.Bottom,
	}
	frame := layout.NewHardFrame(full)

	number := counter.Logical()

	header, footer := lp.Header, lp.Footer
	if cfg.Numbering != nil {
		numberMarginal := numberingMarginal{pattern: cfg.Numbering.Pattern, align: cfg.NumberAlign}
		// An explicit header/footer always wins over the auto-numbering
		// marginal in whichever slot the number-align style picks.
		if cfg.NumberAlign.Y == layout.AlignStart {
			if header == nil {
				header = numberMarginal
			}
		} else {
			if footer == nil {
				footer = numberMarginal
			}
		}
	}

	if lp.HasBackground {
		frame.PushFrame(layout.Point{}, lp.Background)
	}
	if header != nil {
		headerArea := layout.Size{Width: full.Width, Height: margin.Top - cfg.HeaderAscent}
		hf, err := header.Layout(engine, lp.Locator.Next(nil), lp.Styles, headerArea, number)
		if err != nil {
			return Page{}, err
		}
		y := margin.Top - cfg.HeaderAscent - hf.Height()
		frame.PushFrame(layout.Point{X: margin.Left, Y: y}, hf)
	}

	frame.PushFrame(layout.Point{X: margin.Left, Y: margin.Top}, lp.Inner)

	if footer != nil {
		footerArea := layout.Size{Width: full.Width, Height: margin.Bottom - cfg.FooterDescent}
		ff, err := footer.Layout(engine, lp.Locator.Next(nil), lp.Styles, footerArea, number)
		if err != nil {
			return Page{}, err
		}
		y := full.Height - margin.Bottom + cfg.FooterDescent
		frame.PushFrame(layout.Point{X: margin.Left, Y: y}, ff)
	}
	if lp.HasForeground {
		frame.PushFrame(layout.Point{}, lp.Foreground)
	}

	counter.Visit(&frame)
	counter.Step()

	return Page{
		Frame:     frame,
		Fill:      cfg.Fill,
		Numbering: cfg.Numbering,
		Number:    number,
	}, nil
}

// numberingMarginal is the built-in marginal used to print the page number
// when a page has a numbering pattern but no explicit header/footer content
// in the slot that numbering would occupy; an explicit header/footer always
// wins over it.
type numberingMarginal struct {
	pattern string
	align   layout.Alignment
}

func (n numberingMarginal) Layout(_ *layout.Engine, _ layout.Location, _ *layout.StyleChain, area layout.Size, number int) (layout.Frame, error) {
	text := FormatPageNumber(number, n.pattern)
	width := layout.Abs(len(text)) * 6
	size := layout.Size{Width: width, Height: 10}
	frame := layout.NewSoftFrame(area)
	x := n.align.X.Position(area.Width - size.Width)
	frame.Push(layout.Point{X: x, Y: 0}, layout.TextItem{Text: text, Size: size})
	return frame, nil
}
