package pages

import (
	"sync"

	"github.com/kanryu/flowdoc/layout"
)

type runResult struct {
	pages []LayoutedPage
	err   error
}

// parallelize lays out every run concurrently (page runs are independent:
// none reads another's output) and returns results in the original run
// order regardless of completion order.
func parallelize(engine *layout.Engine, runs []PageRun) []runResult {
	results := make([]runResult, len(runs))
	var wg sync.WaitGroup
	wg.Add(len(runs))
	for i, run := range runs {
		go func(i int, run PageRun) {
			defer wg.Done()
			pages, err := LayoutPageRun(engine, run)
			results[i] = runResult{pages: pages, err: err}
		}(i, run)
	}
	wg.Wait()
	return results
}

// LayoutDocument lays out every page run concurrently, then walks the
// results in source order, finalizing each page (so physical/logical
// numbers advance in document order despite unordered completion) and
// inserting a blank parity page before any run whose ExtendTo parity the
// number of pages already emitted does not match.
func LayoutDocument(engine *layout.Engine, runs []PageRun, info DocumentInfo) (Document, error) {
	results := parallelize(engine, runs)

	counter := NewManualPageCounter()
	var pages []Page

	for i, res := range results {
		if res.err != nil {
			return Document{}, res.err
		}

		run := runs[i]
		if run.ExtendTo != nil && !run.ExtendTo.Matches(counter.Physical()) {
			blank, err := blankPage(run.Styles)
			if err != nil {
				return Document{}, err
			}
			page, err := Finalize(engine, counter, blank)
			if err != nil {
				return Document{}, err
			}
			pages = append(pages, page)
		}

		for _, lp := range res.pages {
			page, err := Finalize(engine, counter, lp)
			if err != nil {
				return Document{}, err
			}
			pages = append(pages, page)
		}
	}

	return Document{Pages: pages, Info: info}, nil
}

func blankPage(styles *layout.StyleChain) (LayoutedPage, error) {
	cfg := resolveConfig(styles)
	area := layout.Size{
		Width:  cfg.Size.Width - cfg.Margin.Left - cfg.Margin.Right,
		Height: cfg.Size.Height - cfg.Margin.Top - cfg.Margin.Bottom,
	}
	return LayoutedPage{
		Inner:   layout.NewHardFrame(area),
		Config:  cfg,
		Styles:  styles,
		Locator: layout.Locator{}.Split(),
	}, nil
}
