package pages

import (
	"github.com/kanryu/flowdoc/layout"
	"github.com/kanryu/flowdoc/layout/flow"
)

const paperA4Width layout.Abs = 595.276
const paperA4Height layout.Abs = 841.89

// PageRun is one already-split run of page-uniform content: a contiguous
// stretch of flow children realized under one unchanging page style.
type PageRun struct {
	Flow       FlowFragmentLayouter
	Styles     *layout.StyleChain
	Locator    layout.Location
	ExtendTo   *Parity
	Header     Marginal
	Footer     Marginal
	Background Marginal
	Foreground Marginal
}

// resolveConfig reads the handful of page.* style keys a run needs,
// defaulting to A4 portrait with a 2.5/21 margin, matching the classic
// default-margin-as-a-fraction-of-the-shorter-side rule.
func resolveConfig(styles *layout.StyleChain) PageConfig {
	width := layout.GetOr(styles, "page.width", paperA4Width)
	height := layout.GetOr(styles, "page.height", paperA4Height)
	if layout.GetOr(styles, "page.flipped", false) {
		width, height = height, width
	}
	size := layout.Size{Width: width, Height: height}

	minDim := width.Min(height)
	if !minDim.IsFinite() {
		minDim = paperA4Width
	}
	defaultMargin := layout.Ratio(2.5 / 21.0).Resolve(minDim)

	margin := layout.Sides[layout.Abs]{
		Left:   layout.GetOr(styles, "page.margin.left", defaultMargin),
		Top:    layout.GetOr(styles, "page.margin.top", defaultMargin),
		Right:  layout.GetOr(styles, "page.margin.right", defaultMargin),
		Bottom: layout.GetOr(styles, "page.margin.bottom", defaultMargin),
	}

	binding := layout.GetOr(styles, "page.binding", BindingLeft)
	if _, explicit := styles.Get("page.binding"); !explicit {
		if layout.GetOr(styles, "text.dir", layout.LTR) != layout.LTR {
			binding = BindingRight
		}
	}

	var numbering *Numbering
	if pattern, ok := styles.Get("page.numbering"); ok {
		if s, ok := pattern.(string); ok && s != "" {
			numbering = &Numbering{Pattern: s}
		}
	}

	return PageConfig{
		Size:          size,
		Margin:        margin,
		TwoSided:      layout.GetOr(styles, "page.margin.two-sided", false),
		Binding:       binding,
		Fill:          layout.GetOr[*Paint](styles, "page.fill", nil),
		Numbering:     numbering,
		NumberAlign:   layout.GetOr(styles, "page.number-align", layout.Alignment{X: layout.AlignCenter, Y: layout.AlignEnd}),
		HeaderAscent:  layout.GetOr(styles, "page.header-ascent", margin.Top*0.3),
		FooterDescent: layout.GetOr(styles, "page.footer-descent", margin.Bottom*0.3),
		Columns:       layout.GetOr(styles, "page.columns", 1),
		ColumnGutter:  layout.GetOr(styles, "page.column-gutter", layout.Abs(0)),
		Dir:           layout.GetOr(styles, "text.dir", layout.LTR),
	}
}

// LayoutPageRun lays a run's flow content out into one LayoutedPage per
// region the flow produced, attaching the run's resolved config and
// marginals (background/foreground are laid out eagerly here since they
// never depend on the eventual physical number; header/footer are deferred
// to Finalize).
func LayoutPageRun(engine *layout.Engine, run PageRun) ([]LayoutedPage, error) {
	cfg := resolveConfig(run.Styles)
	area := layout.Size{
		Width:  cfg.Size.Width - cfg.Margin.Left - cfg.Margin.Right,
		Height: cfg.Size.Height - cfg.Margin.Top - cfg.Margin.Bottom,
	}
	regions := layout.Repeat(area, layout.Axes[bool]{X: area.Width.IsFinite(), Y: area.Height.IsFinite()})
	regions.Root = true

	var frag layout.Fragment
	var err error
	if cfg.Columns > 1 {
		frag, err = layoutWithColumns(engine, run, cfg, regions)
	} else {
		frag, err = run.Flow.Layout(engine, run.Locator, run.Styles, regions)
	}
	if err != nil {
		return nil, err
	}

	locator := layout.Locator{}.Split()
	var out []LayoutedPage
	for _, inner := range frag.Frames() {
		full := layout.Size{
			Width:  inner.Width() + cfg.Margin.Left + cfg.Margin.Right,
			Height: inner.Height() + cfg.Margin.Top + cfg.Margin.Bottom,
		}
		lp := LayoutedPage{
			Inner:   inner,
			Config:  cfg,
			Header:  run.Header,
			Footer:  run.Footer,
			Styles:  run.Styles,
			Locator: locator,
		}
		if run.Background != nil {
			bg, err := run.Background.Layout(engine, locator.Next(nil), run.Styles, full, 0)
			if err != nil {
				return nil, err
			}
			lp.Background, lp.HasBackground = bg, true
		}
		if run.Foreground != nil {
			fg, err := run.Foreground.Layout(engine, locator.Next(nil), run.Styles, full, 0)
			if err != nil {
				return nil, err
			}
			lp.Foreground, lp.HasForeground = fg, true
		}
		out = append(out, lp)
	}
	return out, nil
}

// layoutWithColumns splits the run's content regions into cfg.Columns pods
// via the flow package's column splitter. run.Flow already satisfies
// flow.FragmentLayouter structurally (identical method signature), so no
// adapter is needed.
func layoutWithColumns(engine *layout.Engine, run PageRun, cfg PageConfig, regions layout.Regions) (layout.Fragment, error) {
	return flow.LayoutColumns(engine, run.Flow, run.Locator, run.Styles, regions, cfg.Columns, cfg.ColumnGutter, cfg.Dir)
}
