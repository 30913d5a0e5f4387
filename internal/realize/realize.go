// Package realize is a minimal stand-in for the realization layer the core
// layout engine consumes as realize_root/realize_flow: it walks a small,
// already-in-memory content.Document (no parser, no evaluator, no style
// cascade beyond the StyleChain already attached to each page) and produces
// the []pages.PageRun / flow.Flow values layout/pages and layout/flow expect.
package realize

import (
	"fmt"

	"github.com/kanryu/flowdoc/internal/content"
	"github.com/kanryu/flowdoc/layout"
	"github.com/kanryu/flowdoc/layout/flow"
	"github.com/kanryu/flowdoc/layout/inline"
	"github.com/kanryu/flowdoc/layout/pages"
)

// RealizeRoot turns a content.Document into the ordered page runs and
// document-info record layout/pages.LayoutDocument consumes. Each page in
// the document becomes exactly one PageRun (this adapter does not implement
// the original's run-splitting by shared style fingerprint; see
// layout/pages/doc.go).
func RealizeRoot(doc *content.Document) ([]pages.PageRun, pages.DocumentInfo, error) {
	split := layout.Locator{}.Split()

	runs := make([]pages.PageRun, len(doc.Pages))
	for i, page := range doc.Pages {
		f, err := RealizeFlow(page)
		if err != nil {
			return nil, pages.DocumentInfo{}, fmt.Errorf("realize page %d: %w", i, err)
		}

		var extendTo *pages.Parity
		if page.ClearTo != nil {
			p := pages.Parity(*page.ClearTo)
			extendTo = &p
		}

		runs[i] = pages.PageRun{
			Flow:     flow.Runner{Flow: f, Inline: inline.Layouter{}},
			Styles:   page.Styles,
			Locator:  split.Next(i),
			ExtendTo: extendTo,
		}
	}

	return runs, pages.DocumentInfo{Title: doc.Title}, nil
}

// RealizeFlow turns one page's body into a realized Flow, the input
// layout/flow.Layouter consumes.
func RealizeFlow(page content.Page) (*flow.Flow, error) {
	children := make([]flow.Child, 0, len(page.Body))
	for i, node := range page.Body {
		child, err := realizeNode(node)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		children = append(children, child)
	}
	return &flow.Flow{Children: children, Styles: page.Styles}, nil
}

func realizeNode(node content.Node) (flow.Child, error) {
	switch n := node.(type) {
	case content.Par:
		fontSize := n.FontSize
		if fontSize == 0 {
			fontSize = 11
		}
		return flow.ParChild{
			Content:    inline.Text{Body: n.Text, FontSize: fontSize, LineGap: n.LineGap},
			Align:      n.Align,
			Leading:    n.Leading,
			CostOrphan: n.CostOrphan,
			CostWidow:  n.CostWidow,
		}, nil

	case content.Block:
		return flow.BlockChild{
			Layouter: n.Layouter,
			Align:    n.Align,
			Sticky:   n.Sticky,
			Rootable: n.Rootable,
		}, nil

	case content.Spacing:
		return flow.SpacingChild{Rel: n.Rel, Fr: n.Fr, Weak: n.Weak}, nil

	case content.Colbreak:
		return flow.ColbreakChild{}, nil

	case content.Place:
		return flow.PlaceChild{
			Layouter:  n.Layouter,
			XAlign:    n.XAlign,
			YAlign:    n.YAlign,
			Delta:     n.Delta,
			Float:     n.Float,
			Clearance: n.Clearance,
		}, nil

	case content.Flush:
		return flow.FlushChild{}, nil

	default:
		return nil, fmt.Errorf("unexpected content node %T", node)
	}
}
