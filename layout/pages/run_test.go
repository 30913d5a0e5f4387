package pages

import (
	"testing"

	"github.com/kanryu/flowdoc/layout"
)

type fixedFlow struct {
	frames []layout.Frame
}

func (f fixedFlow) Layout(_ *layout.Engine, _ layout.Location, _ *layout.StyleChain, _ layout.Regions) (layout.Fragment, error) {
	return layout.NewFragment(f.frames), nil
}

func newEngine() *layout.Engine {
	return &layout.Engine{Sink: layout.NewSink()}
}

func TestResolveConfigDefaultsToA4Portrait(t *testing.T) {
	cfg := resolveConfig(layout.NewStyleChain(nil))
	if cfg.Size.Width != paperA4Width || cfg.Size.Height != paperA4Height {
		t.Fatalf("expected A4 default size, got %v", cfg.Size)
	}
	if cfg.Binding != BindingLeft {
		t.Fatalf("expected default binding left, got %v", cfg.Binding)
	}
}

func TestResolveConfigFlippedSwapsDimensions(t *testing.T) {
	cfg := resolveConfig(layout.NewStyleChain(map[string]any{"page.flipped": true}))
	if cfg.Size.Width != paperA4Height || cfg.Size.Height != paperA4Width {
		t.Fatalf("expected flipped A4 dimensions, got %v", cfg.Size)
	}
}

func TestResolveConfigRTLDefaultsBindingRight(t *testing.T) {
	cfg := resolveConfig(layout.NewStyleChain(map[string]any{"text.dir": layout.RTL}))
	if cfg.Binding != BindingRight {
		t.Fatalf("expected RTL default binding right, got %v", cfg.Binding)
	}
}

func TestResolveConfigExplicitBindingOverridesDirDefault(t *testing.T) {
	cfg := resolveConfig(layout.NewStyleChain(map[string]any{
		"text.dir":     layout.RTL,
		"page.binding": BindingLeft,
	}))
	if cfg.Binding != BindingLeft {
		t.Fatalf("expected explicit binding to win over the text-direction default, got %v", cfg.Binding)
	}
}

func TestLayoutPageRunYieldsOnePagePerFlowFrame(t *testing.T) {
	styles := layout.NewStyleChain(map[string]any{
		"page.width":  layout.Abs(100),
		"page.height": layout.Abs(200),
		"page.margin.left": layout.Abs(10), "page.margin.right": layout.Abs(10),
		"page.margin.top": layout.Abs(10), "page.margin.bottom": layout.Abs(10),
	})
	run := PageRun{
		Flow:    fixedFlow{frames: []layout.Frame{layout.NewHardFrame(layout.Size{Width: 80, Height: 180})}},
		Styles:  styles,
		Locator: layout.Locator{}.Split().Next(0),
	}
	pages, err := LayoutPageRun(newEngine(), run)
	if err != nil {
		t.Fatalf("LayoutPageRun: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 laid-out page, got %d", len(pages))
	}
}

func TestLayoutDocumentInsertsBlankParityPage(t *testing.T) {
	styles := layout.NewStyleChain(map[string]any{
		"page.width": layout.Abs(100), "page.height": layout.Abs(100),
		"page.margin.left": layout.Abs(0), "page.margin.right": layout.Abs(0),
		"page.margin.top": layout.Abs(0), "page.margin.bottom": layout.Abs(0),
	})
	odd := ParityOdd
	runs := []PageRun{
		{
			Flow:     fixedFlow{frames: []layout.Frame{layout.NewHardFrame(layout.Size{Width: 100, Height: 100})}},
			Styles:   styles,
			Locator:  layout.Locator{}.Split().Next(0),
			ExtendTo: &odd,
		},
	}
	doc, err := LayoutDocument(newEngine(), runs, DocumentInfo{Title: "t"})
	if err != nil {
		t.Fatalf("LayoutDocument: %v", err)
	}
	// Starting from page count 0 (even), a run requiring odd parity before it
	// starts forces one blank page first, then its own single page: 2 total.
	if len(doc.Pages) != 2 {
		t.Fatalf("expected a blank parity page inserted before the run, got %d pages", len(doc.Pages))
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 2 {
		t.Fatalf("expected logical numbers 1,2, got %d,%d", doc.Pages[0].Number, doc.Pages[1].Number)
	}
}

func TestFinalizeSwapsMarginsOnBindingParity(t *testing.T) {
	styles := layout.NewStyleChain(nil)
	cfg := PageConfig{
		Size:     layout.Size{Width: 100, Height: 100},
		Margin:   layout.Sides[layout.Abs]{Left: 5, Right: 15, Top: 0, Bottom: 0},
		TwoSided: true,
		Binding:  BindingLeft,
	}
	lp := LayoutedPage{
		Inner:   layout.NewHardFrame(layout.Size{Width: 80, Height: 100}),
		Config:  cfg,
		Styles:  styles,
		Locator: layout.Locator{}.Split(),
	}
	counter := NewManualPageCounter()
	counter.Step() // physical=1, so BindingLeft.Swap(1) is true
	page, err := Finalize(newEngine(), counter, lp)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	// Swapped margins (15 left, 5 right) still sum to the same full width.
	if got, want := page.Frame.Width(), layout.Abs(100); got != want {
		t.Fatalf("expected full width %v, got %v", want, got)
	}
}

func TestFinalizeNumberingMarginalFillsEmptyFooterSlot(t *testing.T) {
	styles := layout.NewStyleChain(nil)
	cfg := PageConfig{
		Size:          layout.Size{Width: 100, Height: 100},
		Margin:        layout.Sides[layout.Abs]{Left: 0, Right: 0, Top: 0, Bottom: 20},
		Numbering:     &Numbering{Pattern: "1"},
		NumberAlign:   layout.Alignment{X: layout.AlignCenter, Y: layout.AlignEnd},
		FooterDescent: 2,
	}
	lp := LayoutedPage{
		Inner:   layout.NewHardFrame(layout.Size{Width: 100, Height: 80}),
		Config:  cfg,
		Styles:  styles,
		Locator: layout.Locator{}.Split(),
	}
	page, err := Finalize(newEngine(), NewManualPageCounter(), lp)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if page.Number != 1 {
		t.Fatalf("expected logical number 1, got %d", page.Number)
	}
	if got := len(page.Frame.Items()); got != 2 {
		t.Fatalf("expected inner content plus the numbering footer, got %d items", got)
	}
}

func TestFormatPageNumberArabicAndRoman(t *testing.T) {
	if got, want := FormatPageNumber(4, "1"), "4"; got != want {
		t.Fatalf("arabic: got %q want %q", got, want)
	}
	if got, want := FormatPageNumber(4, "i"), "iv"; got != want {
		t.Fatalf("roman lower: got %q want %q", got, want)
	}
	if got, want := FormatPageNumber(4, "I"), "IV"; got != want {
		t.Fatalf("roman upper: got %q want %q", got, want)
	}
}

func TestManualPageCounterStepsPhysicalAndLogical(t *testing.T) {
	c := NewManualPageCounter()
	if c.Physical() != 0 || c.Logical() != 1 {
		t.Fatalf("expected fresh counter at physical=0 logical=1, got %d,%d", c.Physical(), c.Logical())
	}
	c.Step()
	if c.Physical() != 1 || c.Logical() != 2 {
		t.Fatalf("expected physical=1 logical=2 after Step, got %d,%d", c.Physical(), c.Logical())
	}
}
