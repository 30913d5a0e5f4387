// Package main provides the CLI entry point for flowdoc.
//
// Usage:
//
//	flowdoc sample        # lay out the built-in sample document and print a summary
//	flowdoc help
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kanryu/flowdoc/internal/content"
	"github.com/kanryu/flowdoc/internal/realize"
	"github.com/kanryu/flowdoc/layout"
	"github.com/kanryu/flowdoc/layout/pages"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "sample", "s":
		if err := runSample(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`flowdoc - a toy document flow/pagination layout engine

Usage:
  flowdoc sample
  flowdoc help
  flowdoc version

Commands:
  sample, s     Lay out the built-in sample document and print a page summary
  help          Show this help message
  version       Show version information`)
}

func printVersion() {
	fmt.Println("flowdoc version 0.1.0")
}

func runSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc := sampleDocument()
	runs, info, err := realize.RealizeRoot(doc)
	if err != nil {
		return fmt.Errorf("realize: %w", err)
	}

	engine := &layout.Engine{Sink: layout.NewSink()}
	result, err := pages.LayoutDocument(engine, runs, info)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	fmt.Printf("document %q: %d page(s)\n", info.Title, len(result.Pages))
	for i, p := range result.Pages {
		size := p.Frame.Size()
		fmt.Printf("  page %d (logical %d): %.1fpt x %.1fpt\n", i+1, p.Number, float64(size.Width), float64(size.Height))
	}
	for _, msg := range engine.Sink.Drain() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	return nil
}

// sampleDocument builds a minimal two-paragraph document exercising the
// default A4 page config and plain paragraph flow.
func sampleDocument() *content.Document {
	styles := layout.NewStyleChain(map[string]any{
		"page.numbering": "1",
	})
	return &content.Document{
		Title: "Sample",
		Pages: []content.Page{
			{
				Styles: styles,
				Body: []content.Node{
					content.Par{Text: "Hello, flowdoc.", FontSize: 11, Leading: 6.5},
					content.Spacing{Rel: relPtr(layout.RelAbs(12)), Weak: true},
					content.Par{Text: "This is a second paragraph laid out by the toy CLI.", FontSize: 11, Leading: 6.5},
				},
			},
		},
	}
}

func relPtr(r layout.Relative) *layout.Relative { return &r }
